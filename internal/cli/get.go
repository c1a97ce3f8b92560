package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/viet-steno/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get CHORD",
		Short: "Show the word a saved build binds to a chord",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	cmd.Flags().StringP("build", "b", "", "Build ID (default: latest)")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	buildID, _ := cmd.Flags().GetString("build")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.Lookup(cmd.Context(), store.LookupParams{BuildID: buildID, Chord: args[0]})
	if err != nil {
		exitErr("get", err)
	}
	printResult(cmd, e)
}
