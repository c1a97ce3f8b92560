// Package dictionary turns a Vietnamese word list into a chord dictionary.
//
// Each two-syllable word is written as one chord: the left bank encodes the
// first syllable and the right bank the second. Words that reduce to the same
// chord are told apart by a fixed list of suffix variants.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/rcliao/viet-steno/internal/cache"
	"github.com/rcliao/viet-steno/internal/model"
	"github.com/rcliao/viet-steno/internal/outline"
	"github.com/rcliao/viet-steno/internal/syllable"
)

var (
	// ErrNotTwoSyllables rejects words that do not split into exactly two tokens.
	ErrNotTwoSyllables = errors.New("word is not two syllables")
	// ErrUnknownSyllable rejects words with a syllable no stroke writes.
	ErrUnknownSyllable = errors.New("no stroke for syllable")
	// ErrNotLowercase rejects words with capital letters.
	ErrNotLowercase = errors.New("word is not lowercase")
)

// isLower builds its own Caser; a Caser must not be shared between goroutines.
func isLower(s string) bool {
	return cases.Lower(language.Vietnamese).String(s) == s
}

// Builder encodes words against a syllable cache.
type Builder struct {
	cache   *cache.Cache
	logger  *slog.Logger
	workers int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for build summaries.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithWorkers bounds how many words are encoded concurrently.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// NewBuilder returns a Builder reading from c.
func NewBuilder(c *cache.Cache, opts ...Option) *Builder {
	b := &Builder{
		cache:   c,
		logger:  slog.Default(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Encoded is the chord for one word and how it was derived.
type Encoded struct {
	Word     string             `json:"word" yaml:"word"`
	Strokes  [2]string          `json:"strokes" yaml:"strokes"`
	Classes  [2]outline.Classes `json:"classes" yaml:"classes"`
	Outlines [2]outline.Outline `json:"outlines" yaml:"outlines"`
	Chord    string             `json:"chord" yaml:"chord"`
}

// EncodeWord looks up the shortest stroke of both syllables and packs them
// into one chord. Rejections wrap ErrNotTwoSyllables, ErrNotLowercase or
// ErrUnknownSyllable; any other error means a classification table is
// incomplete.
func (b *Builder) EncodeWord(word string) (Encoded, error) {
	tokens := strings.Fields(word)
	if len(tokens) != 2 {
		return Encoded{}, fmt.Errorf("%q: %w", word, ErrNotTwoSyllables)
	}
	if !isLower(word) {
		return Encoded{}, fmt.Errorf("%q: %w", word, ErrNotLowercase)
	}

	e := Encoded{Word: word}
	for i, tok := range tokens {
		stroke, ok := b.cache.Reverse(tok)
		if !ok {
			return Encoded{}, fmt.Errorf("%q: %w: %s", word, ErrUnknownSyllable, tok)
		}
		p, ok := syllable.Parse(stroke)
		if !ok {
			return Encoded{}, fmt.Errorf("%q: cached stroke %s does not parse", word, stroke)
		}
		c, err := outline.Classify(p)
		if err != nil {
			return Encoded{}, fmt.Errorf("%q: %w", word, err)
		}
		o, err := outline.Pack(c)
		if err != nil {
			return Encoded{}, fmt.Errorf("%q: %w", word, err)
		}
		e.Strokes[i] = stroke
		e.Classes[i] = c
		e.Outlines[i] = o
	}
	e.Chord = outline.Chord(e.Outlines[0], e.Outlines[1])
	return e, nil
}

// Dictionary is the result of one build.
type Dictionary struct {
	Entries  []model.Entry `json:"entries" yaml:"entries"`
	Words    int           `json:"words" yaml:"words"`       // lowercase words considered
	Rejected []string      `json:"rejected" yaml:"rejected"` // not two known syllables
	Dropped  []string      `json:"dropped" yaml:"dropped"`   // ran out of variants
}

// Map returns the chord → word table handed to the steno engine.
func (d *Dictionary) Map() map[string]string {
	m := make(map[string]string, len(d.Entries))
	for _, e := range d.Entries {
		m[e.Chord] = e.Word
	}
	return m
}

// Build encodes every lowercase entry of words and resolves collisions.
// Words are deduplicated and processed in sorted order, so the variant a word
// receives depends only on the word list, not on its order.
func (b *Builder) Build(ctx context.Context, words []string) (*Dictionary, error) {
	list := Prepare(words)

	results := make([]Encoded, len(list))
	rejected := make([]error, len(list))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, w := range list {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := b.EncodeWord(w)
			switch {
			case errors.Is(err, ErrNotTwoSyllables), errors.Is(err, ErrNotLowercase), errors.Is(err, ErrUnknownSyllable):
				rejected[i] = err
			case err != nil:
				return err
			default:
				results[i] = e
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("encode words: %w", err)
	}

	d := &Dictionary{Words: len(list)}
	cands := make([]Candidate, 0, len(list))
	for i, w := range list {
		if rejected[i] != nil {
			d.Rejected = append(d.Rejected, w)
			b.logger.Debug("word rejected", "word", w, "err", rejected[i])
			continue
		}
		cands = append(cands, Candidate{Word: w, Base: results[i].Chord})
	}

	d.Entries, d.Dropped = Resolve(cands)
	for _, w := range d.Dropped {
		b.logger.Debug("word dropped, no variant left", "word", w)
	}

	b.logger.Info("dictionary built",
		"words", d.Words,
		"entries", len(d.Entries),
		"rejected", len(d.Rejected),
		"dropped", len(d.Dropped))
	return d, nil
}

// Prepare normalises words to NFC, keeps the non-empty all-lowercase ones,
// removes duplicates and sorts them.
func Prepare(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(norm.NFC.String(w))
		if w == "" || seen[w] || !isLower(w) {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
