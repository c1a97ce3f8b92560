// Package cache holds the exhaustive stroke/syllable tables.
//
// New enumerates the whole stroke space once and returns an immutable Cache.
// It is safe for concurrent readers.
package cache

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/rcliao/viet-steno/internal/normalize"
	"github.com/rcliao/viet-steno/internal/syllable"
)

// Cache maps strokes to syllables and syllables to their shortest stroke.
type Cache struct {
	forward map[string]string
	order   []string // forward keys in enumeration order
	reverse map[string]string
}

// New builds the forward table from every candidate stroke that parses and
// assembles, then derives the reverse table in enumeration order, keeping the
// first stroke per syllable unless a strictly shorter one appears later.
func New(logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	c := &Cache{
		forward: make(map[string]string, syllable.SpaceSize()),
		order:   make([]string, 0, syllable.SpaceSize()),
		reverse: make(map[string]string),
	}

	generated := 0
	for stroke := range syllable.Space() {
		generated++
		p, ok := syllable.Parse(stroke)
		if !ok {
			continue
		}
		s, err := syllable.Assemble(p)
		if err != nil {
			return nil, fmt.Errorf("assemble %s: %w", stroke, err)
		}
		if s == "" {
			continue
		}
		if _, dup := c.forward[stroke]; !dup {
			c.order = append(c.order, stroke)
		}
		c.forward[stroke] = s
	}

	lower := cases.Lower(language.Vietnamese)
	for _, stroke := range c.order {
		key := lower.String(c.forward[stroke])
		if prev, ok := c.reverse[key]; !ok || len(stroke) < len(prev) {
			c.reverse[key] = stroke
		}
	}

	logger.Info("syllable cache built",
		"generated", generated,
		"forward", len(c.forward),
		"reverse", len(c.reverse),
		"elapsed", time.Since(start))
	return c, nil
}

// Forward returns the syllable written by stroke, without normalisation.
func (c *Cache) Forward(stroke string) (string, bool) {
	s, ok := c.forward[stroke]
	return s, ok
}

// Reverse returns the shortest stroke that writes syllable. Lookup is
// case-insensitive and accepts decomposed input.
func (c *Cache) Reverse(syl string) (string, bool) {
	if syl == "" {
		return "", false
	}
	key := cases.Lower(language.Vietnamese).String(norm.NFC.String(syl))
	stroke, ok := c.reverse[key]
	return stroke, ok
}

// Lookup translates a raw stroke: punctuation strokes return their directive,
// number-row strokes are denumeralized and capitalised, everything else goes
// straight to the forward table.
func (c *Cache) Lookup(stroke string) (string, bool) {
	if d, ok := normalize.Special(stroke); ok {
		return d, true
	}
	core, capitalize := normalize.Split(stroke)
	s, ok := c.forward[core]
	if !ok {
		return "", false
	}
	if capitalize {
		return normalize.Capitalize(s), true
	}
	return s, true
}

// All yields forward entries in enumeration order.
func (c *Cache) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, stroke := range c.order {
			if !yield(stroke, c.forward[stroke]) {
				return
			}
		}
	}
}

// Len is the size of the forward table.
func (c *Cache) Len() int { return len(c.forward) }

// ReverseLen is the number of distinct syllables.
func (c *Cache) ReverseLen() int { return len(c.reverse) }
