package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/viet-steno/internal/dictionary"
	"github.com/rcliao/viet-steno/internal/store"
	"github.com/rcliao/viet-steno/internal/wordlist"
)

func init() {
	cmd := &cobra.Command{
		Use:   "build [FILE]",
		Short: "Build a two-syllable chord dictionary from a word list",
		Long: "Read one word per line from FILE (stdin when absent), encode every " +
			"lowercase two-syllable word as one chord and write the dictionary. " +
			"Words sharing a chord get suffix variants in sorted order.",
		Args: cobra.MaximumNArgs(1),
		Run:  runBuild,
	}

	cmd.Flags().StringP("out", "o", "", "Write the dictionary to a file instead of stdout")
	cmd.Flags().Bool("save", false, "Persist the build to the database")
	cmd.Flags().Int("max-line", wordlist.DefaultMaxLineBytes, "Longest accepted word-list line in bytes")

	RootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")
	save, _ := cmd.Flags().GetBool("save")
	maxLine, _ := cmd.Flags().GetInt("max-line")

	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open word list", err)
		}
		defer f.Close()
		r, source = f, args[0]
	}

	lines, err := wordlist.Read(r, wordlist.Options{MaxLineBytes: maxLine})
	if err != nil {
		exitErr("read word list", err)
	}

	d, err := newBuilder(loadCache()).Build(cmd.Context(), wordlist.Words(lines))
	if err != nil {
		exitErr("build", err)
	}

	lineOf := wordlist.LineNumbers(lines)
	for _, w := range d.Rejected {
		logger.Warn("word rejected", "source", source, "line", lineOf[w], "word", w)
	}

	if save {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		b, err := s.SaveBuild(cmd.Context(), store.SaveParams{
			Source:   source,
			Words:    d.Words,
			Rejected: len(d.Rejected),
			Dropped:  len(d.Dropped),
			Entries:  d.Entries,
		})
		if err != nil {
			exitErr("save build", err)
		}
		logger.Info("build saved", "id", b.ID, "entries", b.Entries)
	}

	writeDictionary(cmd, out, d.Map())
}

// writeDictionary writes m to path, or stdout when path is empty.
func writeDictionary(cmd *cobra.Command, path string, m map[string]string) {
	w := cmd.OutOrStdout()
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			exitErr("create output", err)
		}
		defer f.Close()
		w = f
	}
	if err := dictionary.Write(w, m, cfg.Build.Format); err != nil {
		exitErr("write dictionary", err)
	}
}
