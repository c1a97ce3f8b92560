// Package normalize rewrites raw strokes before they are looked up.
//
// Four literal strokes are punctuation directives that never reach the
// syllable tables. Strokes typed on the number row are rewritten to their
// letter keys behind the number marker, which asks for a capitalised syllable.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NumberMarker prefixes a stroke that uses the number bar.
const NumberMarker = "#"

// Specials maps punctuation strokes to Plover formatting directives.
var Specials = map[string]string{
	"-S": "{^};",
	"-Z": "{^}'",
	"-D": "{^}[",
	"AO": "{^}-{^}",
}

// digitKeys maps number-row digits back to the key they share.
var digitKeys = map[rune]string{
	'1': "S",
	'2': "T",
	'3': "P",
	'4': "H",
	'5': "A",
	'0': "O",
	'6': "F",
	'7': "P",
	'8': "L",
	'9': "T",
}

// Special returns the directive for one of the literal punctuation strokes.
func Special(stroke string) (string, bool) {
	d, ok := Specials[stroke]
	return d, ok
}

// Denumeralize rewrites every digit of stroke to its key and prefixes the
// number marker. Strokes that already carry the marker, or have no digits,
// are returned unchanged.
func Denumeralize(stroke string) string {
	if strings.HasPrefix(stroke, NumberMarker) || !strings.ContainsAny(stroke, "0123456789") {
		return stroke
	}
	var b strings.Builder
	b.WriteString(NumberMarker)
	for _, r := range stroke {
		if k, ok := digitKeys[r]; ok {
			b.WriteString(k)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Split denumeralizes stroke and strips the number marker. capitalize
// reports whether the marker was present.
func Split(stroke string) (core string, capitalize bool) {
	s := Denumeralize(stroke)
	if rest, ok := strings.CutPrefix(s, NumberMarker); ok {
		return rest, true
	}
	return s, false
}

// Capitalize upper-cases the first letter of a syllable.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.Vietnamese, cases.NoLower).String(s)
}
