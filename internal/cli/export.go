package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [BUILD_ID]",
		Short: "Write a saved build as a Plover dictionary",
		Long:  "Write a saved build as a Plover dictionary. Exports the latest build when BUILD_ID is omitted.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Write the dictionary to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")
	var id string
	if len(args) == 1 {
		id = args[0]
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	m, err := s.Export(cmd.Context(), id)
	if err != nil {
		exitErr("export", err)
	}
	writeDictionary(cmd, out, m)
}
