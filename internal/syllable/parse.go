package syllable

import "strings"

// Parsed is a stroke split into its phonological components.
type Parsed struct {
	OnGlide bool    `json:"on_glide" yaml:"on_glide"`
	Initial Initial `json:"initial" yaml:"initial"`
	Vowel   Vowel   `json:"vowel" yaml:"vowel"`
	Final   Final   `json:"final" yaml:"final"`
	Tone    Tone    `json:"tone" yaml:"tone"`
}

// Parse splits stroke into glide, initial, vowel, final and tone, in that
// order, each step consuming a prefix of what the previous one left. The
// vowel is mandatory and anything left after the final must be a tone.
// ok is false when the stroke is malformed.
func Parse(stroke string) (p Parsed, ok bool) {
	rest := stroke
	if strings.HasPrefix(rest, GlideMarker) {
		p.OnGlide = true
		rest = rest[len(GlideMarker):]
	}

	p.Initial, rest, _ = initialMatcher.prefix(rest)

	var found bool
	p.Vowel, rest, found = vowelMatcher.prefix(rest)
	if !found {
		return Parsed{}, false
	}

	p.Final, rest, _ = finalMatcher.prefix(rest)

	if rest != "" {
		p.Tone, found = toneMatcher.exact(rest)
		if !found {
			return Parsed{}, false
		}
	}
	return p, true
}

// Stroke rebuilds the stroke by concatenating the key groups of p.
func (p Parsed) Stroke() string {
	var b strings.Builder
	if p.OnGlide {
		b.WriteString(GlideMarker)
	}
	b.WriteString(initialMatcher.keys[p.Initial])
	b.WriteString(vowelMatcher.keys[p.Vowel])
	b.WriteString(finalMatcher.keys[p.Final])
	b.WriteString(toneMatcher.keys[p.Tone])
	return b.String()
}
