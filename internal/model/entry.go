// Package model defines the dictionary records shared by the builder and the store.
package model

import "time"

// Entry is one chord of a built dictionary.
type Entry struct {
	Chord     string `json:"chord" yaml:"chord"`
	Word      string `json:"word" yaml:"word"`
	BaseChord string `json:"base_chord" yaml:"base_chord"`
	Variant   int    `json:"variant" yaml:"variant"` // index into the disambiguation variants
}

// Build is a persisted dictionary build.
type Build struct {
	ID        string    `json:"id" yaml:"id"`
	Source    string    `json:"source,omitempty" yaml:"source,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Words     int       `json:"words" yaml:"words"`
	Entries   int       `json:"entries" yaml:"entries"`
	Rejected  int       `json:"rejected" yaml:"rejected"`
	Dropped   int       `json:"dropped" yaml:"dropped"`
}

// ValidFormats are the dictionary export formats.
var ValidFormats = map[string]bool{
	"json": true,
	"yaml": true,
}
