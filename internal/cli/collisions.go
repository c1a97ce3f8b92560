package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "collisions BASE_CHORD",
		Short: "List the words of a saved build that share a base chord",
		Args:  cobra.ExactArgs(1),
		Run:   runCollisions,
	}

	cmd.Flags().StringP("build", "b", "", "Build ID (default: latest)")

	RootCmd.AddCommand(cmd)
}

func runCollisions(cmd *cobra.Command, args []string) {
	buildID, _ := cmd.Flags().GetString("build")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.Collisions(cmd.Context(), buildID, args[0])
	if err != nil {
		exitErr("collisions", err)
	}
	printResult(cmd, entries)
}
