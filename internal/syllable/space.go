package syllable

import "iter"

// Space yields every candidate stroke of the combinatorial key space together
// with the components it was built from. Order is glide, initial, vowel,
// final, tone, each following its table's declaration order with the empty
// choice first. The degenerate "" and GlideMarker strokes are skipped.
func Space() iter.Seq2[string, Parsed] {
	return func(yield func(string, Parsed) bool) {
		for _, onGlide := range []bool{false, true} {
			glide := ""
			if onGlide {
				glide = GlideMarker
			}
			for _, in := range withNone(Initials) {
				for _, v := range Vowels {
					for _, fi := range withNone(Finals) {
						for _, t := range withNone(Tones) {
							stroke := glide + in.Keys + v.Keys + fi.Keys + t.Keys
							if stroke == "" || stroke == GlideMarker {
								continue
							}
							p := Parsed{
								OnGlide: onGlide,
								Initial: in.Value,
								Vowel:   v.Value,
								Final:   fi.Value,
								Tone:    t.Value,
							}
							if !yield(stroke, p) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// SpaceSize is the number of candidates before degenerate strokes are skipped.
func SpaceSize() int {
	return 2 * (len(Initials) + 1) * len(Vowels) * (len(Finals) + 1) * (len(Tones) + 1)
}

func withNone[T ~string](table []KeyGroup[T]) []KeyGroup[T] {
	out := make([]KeyGroup[T], 0, len(table)+1)
	out = append(out, KeyGroup[T]{})
	return append(out, table...)
}
