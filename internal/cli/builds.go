package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "List saved builds, newest first",
		Args:  cobra.NoArgs,
		Run:   runBuilds,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().Bool("ids-only", false, "Only output build IDs")

	RootCmd.AddCommand(cmd)
}

func runBuilds(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	builds, err := s.ListBuilds(cmd.Context(), limit)
	if err != nil {
		exitErr("list builds", err)
	}

	if idsOnly {
		for _, b := range builds {
			fmt.Fprintln(cmd.OutOrStdout(), b.ID)
		}
		return
	}

	printResult(cmd, builds)
}
