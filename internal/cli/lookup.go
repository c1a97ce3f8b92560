package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	lookup := &cobra.Command{
		Use:   "lookup STROKE",
		Short: "Translate a stroke, including # capitals, digits and punctuation",
		Args:  cobra.ExactArgs(1),
		Run:   runLookup,
	}
	reverse := &cobra.Command{
		Use:   "reverse SYLLABLE",
		Short: "Find the shortest stroke that writes a syllable",
		Args:  cobra.ExactArgs(1),
		Run:   runReverse,
	}

	RootCmd.AddCommand(lookup, reverse)
}

type translation struct {
	Stroke   string `json:"stroke" yaml:"stroke"`
	Syllable string `json:"syllable" yaml:"syllable"`
}

func runLookup(cmd *cobra.Command, args []string) {
	c := loadCache()
	out, ok := c.Lookup(args[0])
	if !ok {
		exitErr("lookup", fmt.Errorf("no syllable for stroke %q", args[0]))
	}
	printResult(cmd, translation{Stroke: args[0], Syllable: out})
}

func runReverse(cmd *cobra.Command, args []string) {
	c := loadCache()
	stroke, ok := c.Reverse(args[0])
	if !ok {
		exitErr("reverse", fmt.Errorf("no stroke for syllable %q", args[0]))
	}
	printResult(cmd, translation{Stroke: stroke, Syllable: args[0]})
}
