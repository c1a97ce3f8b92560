package outline

import "strings"

// bit reports whether bit n of v is set.
func bit(v uint8, n uint) bool {
	return v&(1<<n) != 0
}

// key returns k when bit n of v is set.
func key(v uint8, n uint, k string) string {
	if bit(v, n) {
		return k
	}
	return ""
}

// LeftHalf renders o on the left bank, in steno order #STKPWHRAO.
func LeftHalf(o Outline) string {
	return strings.Join([]string{
		key(o.Tone, 2, "#"),
		key(o.Consonant, 4, "S"),
		key(o.Consonant, 3, "T"),
		key(o.Consonant, 2, "K"),
		key(o.Consonant, 1, "P"),
		key(o.Consonant, 0, "W"),
		key(o.Tone, 1, "H"),
		key(o.Tone, 0, "R"),
		key(o.Vowel, 1, "A"),
		key(o.Vowel, 0, "O"),
	}, "")
}

// RightHalf renders o on the right bank, in steno order EUFRPBLGTS. D and Z
// stay free for disambiguation.
func RightHalf(o Outline) string {
	return strings.Join([]string{
		key(o.Vowel, 1, "E"),
		key(o.Vowel, 0, "U"),
		key(o.Consonant, 4, "F"),
		key(o.Consonant, 3, "R"),
		key(o.Consonant, 2, "P"),
		key(o.Consonant, 1, "B"),
		key(o.Consonant, 0, "L"),
		key(o.Tone, 2, "G"),
		key(o.Tone, 1, "T"),
		key(o.Tone, 0, "S"),
	}, "")
}

// Divider separates the two halves of a chord.
const Divider = "*"

// Chord joins the left half of first and the right half of second.
func Chord(first, second Outline) string {
	return LeftHalf(first) + Divider + RightHalf(second)
}
