package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/viet-steno/internal/dictionary"
)

func init() {
	cmd := &cobra.Command{
		Use:   "strokes",
		Short: "Write the single-stroke syllable dictionary",
		Long:  "Write every syllable stroke, its # capitalised form and the punctuation strokes as a Plover dictionary.",
		Args:  cobra.NoArgs,
		Run:   runStrokes,
	}

	cmd.Flags().StringP("out", "o", "", "Write the dictionary to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runStrokes(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")
	writeDictionary(cmd, out, dictionary.StrokeDictionary(loadCache()))
}
