// Package outline packs a parsed syllable into three small codes and renders
// them as one half of a two-syllable chord.
//
// The classes are a coarse, hand-picked reduction that is good enough to
// separate most two-syllable words; they are not a phonological analysis.
// The code tables decide which physical keys are pressed and are kept as
// literal maps rather than derived.
package outline

import (
	"errors"
	"fmt"

	"github.com/rcliao/viet-steno/internal/syllable"
)

// ErrUnclassified means a syllable fell through every case of a
// classification table.
var ErrUnclassified = errors.New("outline: unclassified syllable")

// ToneClass splits sắc and nặng on stop finals into entering tones.
type ToneClass string

const (
	ToneLevel        ToneClass = "ngang"
	ToneSac          ToneClass = "sắc"
	ToneHuyen        ToneClass = "huyền"
	ToneHoi          ToneClass = "hỏi"
	ToneNga          ToneClass = "ngã"
	ToneNang         ToneClass = "nặng"
	ToneSacEntering  ToneClass = "sắc-entering"
	ToneNangEntering ToneClass = "nặng-entering"
)

// VowelClass is the four-way nucleus reduction.
type VowelClass string

const (
	VowelGlide VowelClass = "glide"
	VowelFront VowelClass = "front"
	VowelBack  VowelClass = "back"
	VowelOpen  VowelClass = "open"
	// VowelMid shares the front code; it stays a separate class so the
	// reduction can be inspected.
	VowelMid VowelClass = "mid"
)

// ConsonantClass is an initial with the two spelling-only variants folded.
type ConsonantClass string

// ConsonantQu is c under an on-glide.
const ConsonantQu ConsonantClass = "qu"

// Outline is the packed form of one syllable.
type Outline struct {
	Consonant uint8 `json:"consonant" yaml:"consonant"` // 0..31
	Tone      uint8 `json:"tone" yaml:"tone"`           // 0..7
	Vowel     uint8 `json:"vowel" yaml:"vowel"`         // 0..3
}

// Classes is the unpacked classification behind an Outline.
type Classes struct {
	Consonant ConsonantClass `json:"consonant" yaml:"consonant"`
	Tone      ToneClass      `json:"tone" yaml:"tone"`
	Vowel     VowelClass     `json:"vowel" yaml:"vowel"`
}

var consonantCodes = map[ConsonantClass]uint8{
	"":   0,
	"h":  1,
	"l":  2,
	"b":  3,
	"c":  4,
	"ch": 5,
	"d":  6,
	"g":  7,
	"ph": 8,
	"n":  9,
	"m":  10,
	"nh": 11,
	"đ":  12,
	"gi": 13,
	"kh": 14,
	"ng": 15,
	"r":  16,
	"v":  17,
	"p":  18,
	"x":  19,
	"s":  20,
	"t":  24,
	"tr": 25,
	"th": 26,
	"qu": 28,
}

var toneCodes = map[ToneClass]uint8{
	ToneLevel:        0,
	ToneHuyen:        1,
	ToneSac:          2,
	ToneHoi:          3,
	ToneNga:          4,
	ToneNang:         5,
	ToneSacEntering:  6,
	ToneNangEntering: 7,
}

var vowelCodes = map[VowelClass]uint8{
	VowelGlide: 0,
	VowelBack:  1,
	VowelOpen:  2,
	VowelFront: 3,
	VowelMid:   3,
}

var stopFinals = map[syllable.Final]bool{
	syllable.FinalP:  true,
	syllable.FinalT:  true,
	syllable.FinalCh: true,
	syllable.FinalC:  true,
}

// Tone classifies the tone of p.
func Tone(p syllable.Parsed) (ToneClass, error) {
	stop := stopFinals[p.Final]
	switch p.Tone {
	case syllable.ToneNone:
		return ToneLevel, nil
	case syllable.ToneSac:
		if stop {
			return ToneSacEntering, nil
		}
		return ToneSac, nil
	case syllable.ToneNang:
		if stop {
			return ToneNangEntering, nil
		}
		return ToneNang, nil
	case syllable.ToneHuyen:
		return ToneHuyen, nil
	case syllable.ToneHoi:
		return ToneHoi, nil
	case syllable.ToneNga:
		return ToneNga, nil
	}
	return "", fmt.Errorf("%w: tone %q", ErrUnclassified, p.Tone)
}

// Vowel classifies the nucleus of p. Glides other than qu- collapse into
// one class regardless of the vowel.
func Vowel(p syllable.Parsed) (VowelClass, error) {
	if p.OnGlide && p.Initial != syllable.InitialC {
		return VowelGlide, nil
	}
	switch p.Vowel {
	case syllable.VowelIe, syllable.VowelI, syllable.VowelY:
		return VowelFront, nil
	case syllable.VowelUo, syllable.VowelUoh, syllable.VowelUh, syllable.VowelU,
		syllable.VowelO, syllable.VowelOc, syllable.VowelOh:
		return VowelBack, nil
	case syllable.VowelA, syllable.VowelAb, syllable.VowelAc:
		return VowelOpen, nil
	case syllable.VowelE, syllable.VowelEc:
		return VowelMid, nil
	}
	return "", fmt.Errorf("%w: vowel %q", ErrUnclassified, p.Vowel)
}

// Consonant classifies the initial of p.
func Consonant(p syllable.Parsed) ConsonantClass {
	switch {
	case p.Initial == syllable.InitialNg:
		return "ng"
	case p.Initial == syllable.InitialC && p.OnGlide:
		return ConsonantQu
	}
	return ConsonantClass(p.Initial)
}

// Classify runs all three classifications.
func Classify(p syllable.Parsed) (Classes, error) {
	tone, err := Tone(p)
	if err != nil {
		return Classes{}, err
	}
	vowel, err := Vowel(p)
	if err != nil {
		return Classes{}, err
	}
	return Classes{Consonant: Consonant(p), Tone: tone, Vowel: vowel}, nil
}

// Pack maps classes to their codes.
func Pack(c Classes) (Outline, error) {
	cons, ok := consonantCodes[c.Consonant]
	if !ok {
		return Outline{}, fmt.Errorf("%w: consonant %q has no code", ErrUnclassified, c.Consonant)
	}
	tone, ok := toneCodes[c.Tone]
	if !ok {
		return Outline{}, fmt.Errorf("%w: tone %q has no code", ErrUnclassified, c.Tone)
	}
	vowel, ok := vowelCodes[c.Vowel]
	if !ok {
		return Outline{}, fmt.Errorf("%w: vowel %q has no code", ErrUnclassified, c.Vowel)
	}
	return Outline{Consonant: cons, Tone: tone, Vowel: vowel}, nil
}

// Encode classifies and packs p.
func Encode(p syllable.Parsed) (Outline, error) {
	c, err := Classify(p)
	if err != nil {
		return Outline{}, err
	}
	return Pack(c)
}
