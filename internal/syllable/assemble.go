package syllable

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrTableMiss reports a component combination that no spelling table covers.
// Every Parsed produced by Parse assembles, so this signals a broken table or
// a hand-built Parsed.
var ErrTableMiss = errors.New("syllable: no spelling for component")

// toneOrder indexes the rows of toneAccents.
var toneOrder = map[Tone]int{
	ToneNone:  0,
	ToneSac:   1,
	ToneHuyen: 2,
	ToneHoi:   3,
	ToneNga:   4,
	ToneNang:  5,
}

// toneAccents is the only place diacritics are placed on a vowel letter.
var toneAccents = map[string][6]string{
	"a": {"a", "á", "à", "ả", "ã", "ạ"},
	"ă": {"ă", "ắ", "ằ", "ẳ", "ẵ", "ặ"},
	"â": {"â", "ấ", "ầ", "ẩ", "ẫ", "ậ"},
	"e": {"e", "é", "è", "ẻ", "ẽ", "ẹ"},
	"ê": {"ê", "ế", "ề", "ể", "ễ", "ệ"},
	"i": {"i", "í", "ì", "ỉ", "ĩ", "ị"},
	"o": {"o", "ó", "ò", "ỏ", "õ", "ọ"},
	"ô": {"ô", "ố", "ồ", "ổ", "ỗ", "ộ"},
	"ơ": {"ơ", "ớ", "ờ", "ở", "ỡ", "ợ"},
	"u": {"u", "ú", "ù", "ủ", "ũ", "ụ"},
	"ư": {"ư", "ứ", "ừ", "ử", "ữ", "ự"},
	"y": {"y", "ý", "ỳ", "ỷ", "ỹ", "ỵ"},
}

// backVowels take the hard spellings c, g and ng.
var backVowels = map[Vowel]bool{
	VowelA: true, VowelAb: true, VowelAc: true,
	VowelO: true, VowelOc: true, VowelOh: true,
	VowelU: true, VowelUh: true,
	VowelUo: true, VowelUoh: true,
}

// roundingW lists the nuclei after which the w final is spelled "u".
var roundingW = map[Vowel]bool{
	VowelIe: true, VowelUh: true, VowelUoh: true, VowelEc: true,
	VowelU: true, VowelAb: true, VowelAc: true, VowelI: true, VowelY: true,
}

// Assemble spells p as a Vietnamese syllable with precomposed diacritics.
func Assemble(p Parsed) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	s := speller{p: p}
	initial := s.initial()
	nucleus := s.nucleus(initial)
	final := s.final()
	if s.err != nil {
		return "", s.err
	}

	switch initial {
	case "q":
		// The glide letter after q already spells the u.
		if rest, ok := strings.CutPrefix(nucleus, "u"); ok && startsWithU(rest) {
			nucleus = rest
		}
	case "gi":
		// gi + iê shares the i: giêng, not giiêng.
		if rest, ok := strings.CutPrefix(nucleus, "i"); ok && rest != "" {
			nucleus = rest
		}
	}

	return initial + nucleus + final, nil
}

func (p Parsed) validate() error {
	if p.Vowel == "" {
		return fmt.Errorf("%w: empty vowel", ErrTableMiss)
	}
	if _, ok := vowelMatcher.keys[p.Vowel]; !ok {
		return fmt.Errorf("%w: vowel %q", ErrTableMiss, p.Vowel)
	}
	if _, ok := initialMatcher.keys[p.Initial]; !ok && p.Initial != InitialNone {
		return fmt.Errorf("%w: initial %q", ErrTableMiss, p.Initial)
	}
	if _, ok := finalMatcher.keys[p.Final]; !ok && p.Final != FinalNone {
		return fmt.Errorf("%w: final %q", ErrTableMiss, p.Final)
	}
	if _, ok := toneOrder[p.Tone]; !ok {
		return fmt.Errorf("%w: tone %q", ErrTableMiss, p.Tone)
	}
	return nil
}

func startsWithU(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune("uúùủũụ", r)
}

// speller renders the three parts of one syllable. The first table miss is
// kept in err and later lookups return their input unchanged.
type speller struct {
	p   Parsed
	err error
}

// mark puts the syllable's tone on a single vowel letter.
func (s *speller) mark(letter string) string {
	forms, ok := toneAccents[letter]
	if !ok {
		if s.err == nil {
			s.err = fmt.Errorf("%w: vowel letter %q", ErrTableMiss, letter)
		}
		return letter
	}
	return forms[toneOrder[s.p.Tone]]
}

func (s *speller) initial() string {
	p := s.p
	hard := p.OnGlide || backVowels[p.Vowel]
	switch p.Initial {
	case InitialNg:
		if hard {
			return "ng"
		}
		return "ngh"
	case InitialG:
		if hard {
			return "g"
		}
		return "gh"
	case InitialGi:
		if !p.OnGlide && p.Vowel == VowelI {
			return "g"
		}
		return "gi"
	case InitialC:
		switch {
		case p.OnGlide:
			return "q"
		case backVowels[p.Vowel]:
			return "c"
		default:
			return "k"
		}
	}
	return string(p.Initial)
}

// glide returns the on-glide letter, def unless the initial is q.
func (s *speller) glide(initial, def string) string {
	if !s.p.OnGlide {
		return ""
	}
	if initial == "q" {
		return "u"
	}
	return def
}

func (s *speller) nucleus(initial string) string {
	p := s.p
	q := initial == "q"
	open := p.Final == FinalNone

	switch p.Vowel {
	case VowelIe:
		switch {
		case p.OnGlide && open:
			return "uy" + s.mark("a")
		case p.OnGlide:
			return "uy" + s.mark("ê")
		case p.Initial == InitialNone && !open:
			return "y" + s.mark("ê")
		case !open:
			return "i" + s.mark("ê")
		default:
			return s.mark("i") + "a"
		}

	case VowelUo:
		switch {
		case !open:
			return "u" + s.mark("ô")
		case q:
			return "u" + s.mark("a")
		default:
			return s.mark("u") + "a"
		}

	case VowelUoh:
		if open {
			return s.mark("ư") + "a"
		}
		return "ư" + s.mark("ơ")

	case VowelI:
		switch {
		case !p.OnGlide:
			return s.mark("i")
		case open && !q:
			return s.mark("u") + "y"
		default:
			return "u" + s.mark("y")
		}

	case VowelAb:
		if p.Final == FinalW || p.Final == FinalJ {
			return s.glide(initial, "o") + s.mark("a")
		}
		return s.glide(initial, "o") + s.mark("ă")

	case VowelAc, VowelEc:
		return s.glide(initial, "u") + s.mark(string(p.Vowel))
	}

	v := string(p.Vowel)
	if !p.OnGlide {
		return s.mark(v)
	}
	g := s.glide(initial, "o")
	if open && ((g == "o" && (p.Vowel == VowelA || p.Vowel == VowelE)) || (g == "u" && p.Vowel == VowelY)) {
		return s.mark(g) + v
	}
	return g + s.mark(v)
}

func (s *speller) final() string {
	p := s.p
	switch p.Final {
	case FinalW:
		if roundingW[p.Vowel] {
			return "u"
		}
		return "o"
	case FinalJ:
		if p.Vowel == VowelAb || p.Vowel == VowelAc {
			return "y"
		}
		return "i"
	}
	return string(p.Final)
}
