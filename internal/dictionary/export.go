package dictionary

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/viet-steno/internal/cache"
	"github.com/rcliao/viet-steno/internal/normalize"
)

// StrokeDictionary is the single-stroke Plover dictionary: every stroke of
// the cache, its number-bar form capitalised, and the punctuation strokes.
func StrokeDictionary(c *cache.Cache) map[string]string {
	m := make(map[string]string, 2*c.Len()+len(normalize.Specials))
	for stroke, s := range c.All() {
		m[stroke] = s
		m[normalize.NumberMarker+stroke] = normalize.Capitalize(s)
	}
	for stroke, d := range normalize.Specials {
		m[stroke] = d
	}
	return m
}

// Write encodes m as a Plover JSON dictionary or a plover-yaml-dictionary
// file. Keys come out sorted in both formats.
func Write(w io.Writer, m map[string]string, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown dictionary format %q (use json or yaml)", format)
}
