package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "encode WORD",
		Short: "Show the base chord of a two-syllable word",
		Long:  "Show the base chord of a two-syllable word with the strokes and outlines it is packed from. Variants are assigned only by build.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runEncode,
	}

	RootCmd.AddCommand(cmd)
}

func runEncode(cmd *cobra.Command, args []string) {
	word := strings.Join(args, " ")

	e, err := newBuilder(loadCache()).EncodeWord(word)
	if err != nil {
		exitErr("encode", err)
	}
	printResult(cmd, e)
}
