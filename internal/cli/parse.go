package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/viet-steno/internal/syllable"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parse STROKE",
		Short: "Split a stroke into key groups and spell it",
		Args:  cobra.ExactArgs(1),
		Run:   runParse,
	}

	RootCmd.AddCommand(cmd)
}

type parseResult struct {
	Stroke   string          `json:"stroke" yaml:"stroke"`
	Parsed   syllable.Parsed `json:"parsed" yaml:"parsed"`
	Syllable string          `json:"syllable" yaml:"syllable"`
}

func runParse(cmd *cobra.Command, args []string) {
	p, ok := syllable.Parse(args[0])
	if !ok {
		exitErr("parse", fmt.Errorf("malformed stroke %q", args[0]))
	}
	syl, err := syllable.Assemble(p)
	if err != nil {
		exitErr("assemble", err)
	}
	printResult(cmd, parseResult{Stroke: args[0], Parsed: p, Syllable: syl})
}
