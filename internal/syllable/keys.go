// Package syllable converts single steno strokes into Vietnamese syllables.
//
// A stroke is read left to right as an optional glide marker, an initial
// consonant, a mandatory vowel, a final consonant and a tone. Parse splits the
// stroke into those components and Assemble spells the syllable back out with
// precomposed diacritics.
package syllable

import "sort"

// GlideMarker prefixes a stroke whose syllable carries an on-glide.
const GlideMarker = "S"

// Initial is an initial consonant class.
type Initial string

const (
	InitialNone Initial = ""
	InitialB    Initial = "b"
	InitialC    Initial = "c"
	InitialCh   Initial = "ch"
	InitialD    Initial = "d"
	InitialDd   Initial = "đ"
	InitialPh   Initial = "ph"
	InitialG    Initial = "g"
	InitialH    Initial = "h"
	InitialGi   Initial = "gi"
	InitialKh   Initial = "kh"
	InitialL    Initial = "l"
	InitialM    Initial = "m"
	InitialN    Initial = "n"
	InitialNh   Initial = "nh"
	InitialNg   Initial = "ng/ngh"
	InitialP    Initial = "p"
	InitialR    Initial = "r"
	InitialS    Initial = "s"
	InitialT    Initial = "t"
	InitialTh   Initial = "th"
	InitialTr   Initial = "tr"
	InitialV    Initial = "v"
	InitialX    Initial = "x"
)

// Vowel is a nucleus class. Diphthongs with two spellings carry both.
type Vowel string

const (
	VowelIe  Vowel = "iê/ia"
	VowelUo  Vowel = "ua/uô"
	VowelUoh Vowel = "ưa/ươ"
	VowelUh  Vowel = "ư"
	VowelOh  Vowel = "ơ"
	VowelOc  Vowel = "ô"
	VowelO   Vowel = "o"
	VowelEc  Vowel = "ê"
	VowelE   Vowel = "e"
	VowelI   Vowel = "i"
	VowelA   Vowel = "a"
	VowelAb  Vowel = "ă"
	VowelAc  Vowel = "â"
	VowelU   Vowel = "u"
	VowelY   Vowel = "y"
)

// Final is a final consonant class. W and J are the semivowel finals.
type Final string

const (
	FinalNone Final = ""
	FinalJ    Final = "j"
	FinalW    Final = "w"
	FinalP    Final = "p"
	FinalT    Final = "t"
	FinalC    Final = "c"
	FinalCh   Final = "ch"
	FinalNh   Final = "nh"
	FinalN    Final = "n"
	FinalM    Final = "m"
	FinalNg   Final = "ng"
)

// Tone is one of the five marked tones, or ToneNone for the level tone.
type Tone string

const (
	ToneNone  Tone = ""
	ToneSac   Tone = "sắc"
	ToneHuyen Tone = "huyền"
	ToneHoi   Tone = "hỏi"
	ToneNga   Tone = "ngã"
	ToneNang  Tone = "nặng"
)

// KeyGroup binds a run of steno keys to the component it writes.
type KeyGroup[T ~string] struct {
	Keys  string
	Value T
}

// Key tables in declaration order. Enumeration order of the stroke space
// follows these slices, so reordering them changes reverse lookup ties.
var (
	Initials = []KeyGroup[Initial]{
		{"PW", InitialB},
		{"K", InitialC},
		{"KH", InitialCh},
		{"KWR", InitialD},
		{"TK", InitialDd},
		{"TP", InitialPh},
		{"TKPW", InitialG},
		{"H", InitialH},
		{"KWH", InitialGi},
		{"KHR", InitialKh},
		{"HR", InitialL},
		{"PH", InitialM},
		{"TPH", InitialN},
		{"TPR", InitialNh},
		{"TPW", InitialNg},
		{"P", InitialP},
		{"R", InitialR},
		{"KP", InitialS},
		{"T", InitialT},
		{"TH", InitialTh},
		{"TR", InitialTr},
		{"W", InitialV},
		{"WR", InitialX},
	}

	Vowels = []KeyGroup[Vowel]{
		{"OEU", VowelIe},
		{"AEU", VowelUo},
		{"AOE", VowelUoh},
		{"AOU", VowelUh},
		{"OU", VowelOh},
		{"OE", VowelOc},
		{"O", VowelO},
		{"AU", VowelEc},
		{"E", VowelE},
		{"EU", VowelI},
		{"A", VowelA},
		{"AE", VowelAb},
		{"AO", VowelAc},
		{"U", VowelU},
		{"AOEU", VowelY},
	}

	Finals = []KeyGroup[Final]{
		{"FP", FinalJ},
		{"F", FinalW},
		{"P", FinalP},
		{"R", FinalT},
		{"BG", FinalC},
		{"RB", FinalCh},
		{"PB", FinalNh},
		{"L", FinalN},
		{"PL", FinalM},
		{"G", FinalNg},
	}

	Tones = []KeyGroup[Tone]{
		{"T", ToneSac},
		{"S", ToneHuyen},
		{"D", ToneHoi},
		{"TS", ToneNga},
		{"Z", ToneNang},
	}
)

// matcher does longest-prefix-first matching over one key table.
type matcher[T ~string] struct {
	groups []KeyGroup[T]
	keys   map[T]string
}

func newMatcher[T ~string](table []KeyGroup[T]) matcher[T] {
	sorted := make([]KeyGroup[T], len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Keys) > len(sorted[j].Keys)
	})
	keys := make(map[T]string, len(table))
	for _, g := range table {
		keys[g.Value] = g.Keys
	}
	return matcher[T]{groups: sorted, keys: keys}
}

// prefix returns the value of the longest key group that prefixes s and the
// remainder of s after it.
func (m matcher[T]) prefix(s string) (T, string, bool) {
	for _, g := range m.groups {
		if len(s) >= len(g.Keys) && s[:len(g.Keys)] == g.Keys {
			return g.Value, s[len(g.Keys):], true
		}
	}
	var zero T
	return zero, s, false
}

// exact returns the value whose keys equal s.
func (m matcher[T]) exact(s string) (T, bool) {
	for _, g := range m.groups {
		if g.Keys == s {
			return g.Value, true
		}
	}
	var zero T
	return zero, false
}

var (
	initialMatcher = newMatcher(Initials)
	vowelMatcher   = newMatcher(Vowels)
	finalMatcher   = newMatcher(Finals)
	toneMatcher    = newMatcher(Tones)
)
