package outline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/viet-steno/internal/syllable"
)

func mustParse(t *testing.T, stroke string) syllable.Parsed {
	t.Helper()
	p, ok := syllable.Parse(stroke)
	require.True(t, ok, stroke)
	return p
}

func TestTone(t *testing.T) {
	tests := []struct {
		final syllable.Final
		tone  syllable.Tone
		want  ToneClass
	}{
		{syllable.FinalNone, syllable.ToneNone, ToneLevel},
		{syllable.FinalT, syllable.ToneNone, ToneLevel},
		{syllable.FinalN, syllable.ToneSac, ToneSac},
		{syllable.FinalT, syllable.ToneSac, ToneSacEntering},
		{syllable.FinalP, syllable.ToneSac, ToneSacEntering},
		{syllable.FinalCh, syllable.ToneNang, ToneNangEntering},
		{syllable.FinalC, syllable.ToneNang, ToneNangEntering},
		{syllable.FinalNg, syllable.ToneNang, ToneNang},
		{syllable.FinalC, syllable.ToneHuyen, ToneHuyen},
		{syllable.FinalNone, syllable.ToneHoi, ToneHoi},
		{syllable.FinalNone, syllable.ToneNga, ToneNga},
	}
	for _, tt := range tests {
		got, err := Tone(syllable.Parsed{Vowel: syllable.VowelA, Final: tt.final, Tone: tt.tone})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s/%s", tt.final, tt.tone)
	}
}

func TestVowel(t *testing.T) {
	tests := []struct {
		stroke string
		want   VowelClass
	}{
		{"SHA", VowelGlide},
		{"SA", VowelGlide},
		{"SKA", VowelOpen},
		{"SKEUT", VowelFront},
		{"KHOEU", VowelFront},
		{"AOEU", VowelFront},
		{"THAOEG", VowelBack},
		{"KHROED", VowelBack},
		{"TKAEF", VowelOpen},
		{"TKAOF", VowelOpen},
		{"TPWE", VowelMid},
		{"HAU", VowelMid},
	}
	for _, tt := range tests {
		got, err := Vowel(mustParse(t, tt.stroke))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.stroke)
	}
}

func TestConsonant(t *testing.T) {
	assert.Equal(t, ConsonantClass("ng"), Consonant(mustParse(t, "TPWE")))
	assert.Equal(t, ConsonantQu, Consonant(mustParse(t, "SKA")))
	assert.Equal(t, ConsonantClass("c"), Consonant(mustParse(t, "KA")))
	assert.Equal(t, ConsonantClass("h"), Consonant(mustParse(t, "SHA")))
	assert.Equal(t, ConsonantClass(""), Consonant(mustParse(t, "A")))
}

func TestEncode(t *testing.T) {
	dau, err := Encode(mustParse(t, "TKAEF"))
	require.NoError(t, err)
	assert.Equal(t, Outline{Consonant: 12, Tone: 0, Vowel: 2}, dau)
	assert.Equal(t, "TKA", LeftHalf(dau))

	kho, err := Encode(mustParse(t, "KHROED"))
	require.NoError(t, err)
	assert.Equal(t, Outline{Consonant: 14, Tone: 3, Vowel: 1}, kho)
	assert.Equal(t, "URPBTS", RightHalf(kho))

	assert.Equal(t, "TKA*URPBTS", Chord(dau, kho))
}

func TestRender_KeyOrder(t *testing.T) {
	full := Outline{Consonant: 31, Tone: 7, Vowel: 3}
	assert.Equal(t, "#STKPWHRAO", LeftHalf(full))
	assert.Equal(t, "EUFRPBLGTS", RightHalf(full))
	assert.Equal(t, "", LeftHalf(Outline{}))
	assert.Equal(t, "", RightHalf(Outline{}))
	assert.Equal(t, "*", Chord(Outline{}, Outline{}))
}

func TestCodeTables(t *testing.T) {
	seen := map[uint8]ConsonantClass{}
	for c, code := range consonantCodes {
		assert.LessOrEqual(t, code, uint8(31))
		if prev, dup := seen[code]; dup {
			t.Errorf("consonants %q and %q share code %d", prev, c, code)
		}
		seen[code] = c
	}
	tones := map[uint8]bool{}
	for _, code := range toneCodes {
		assert.LessOrEqual(t, code, uint8(7))
		tones[code] = true
	}
	assert.Len(t, tones, 8)
	for _, code := range vowelCodes {
		assert.LessOrEqual(t, code, uint8(3))
	}
}

func TestEncode_Total(t *testing.T) {
	for stroke, p := range syllable.Space() {
		tone, err := Tone(p)
		require.NoError(t, err, stroke)

		entering := tone == ToneSacEntering || tone == ToneNangEntering
		wantEntering := stopFinals[p.Final] && (p.Tone == syllable.ToneSac || p.Tone == syllable.ToneNang)
		require.Equal(t, wantEntering, entering, stroke)

		_, err = Encode(p)
		require.NoError(t, err, stroke)
	}
}

func TestUnclassified(t *testing.T) {
	_, err := Tone(syllable.Parsed{Vowel: syllable.VowelA, Tone: "level"})
	assert.True(t, errors.Is(err, ErrUnclassified))

	_, err = Vowel(syllable.Parsed{Vowel: "x"})
	assert.True(t, errors.Is(err, ErrUnclassified))

	_, err = Encode(syllable.Parsed{Initial: "q", Vowel: syllable.VowelA})
	assert.True(t, errors.Is(err, ErrUnclassified))
}
