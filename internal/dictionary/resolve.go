package dictionary

import (
	"strings"

	"github.com/rcliao/viet-steno/internal/model"
	"github.com/rcliao/viet-steno/internal/outline"
)

// Candidate is a word and the chord it reduces to before disambiguation.
type Candidate struct {
	Word string
	Base string
}

// Variants lists the chords tried, in order, for the words sharing base.
func Variants(base string) []string {
	hyphen := strings.Replace(base, outline.Divider, "-", 1)
	return []string{
		base,
		base + "D",
		base + "DZ",
		base + "Z",
		hyphen + "D",
		hyphen + "DZ",
		hyphen + "Z",
	}
}

// MaxVariants is how many words can share one base chord.
const MaxVariants = 7

// Resolve assigns the nth candidate of each base chord its nth variant.
// Candidates past the last variant are returned as dropped.
func Resolve(cands []Candidate) (entries []model.Entry, dropped []string) {
	seen := make(map[string]int)
	for _, c := range cands {
		n := seen[c.Base]
		seen[c.Base] = n + 1
		if n >= MaxVariants {
			dropped = append(dropped, c.Word)
			continue
		}
		entries = append(entries, model.Entry{
			Chord:     Variants(c.Base)[n],
			Word:      c.Word,
			BaseChord: c.Base,
			Variant:   n,
		})
	}
	return entries, dropped
}
