// Package wordlist reads word lists, one entry per line.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	DefaultMaxLineBytes = 1024
	commentPrefix       = "#"
)

// Options configures reading.
type Options struct {
	MaxLineBytes int
}

// DefaultOptions returns default reading options.
func DefaultOptions() Options {
	return Options{MaxLineBytes: DefaultMaxLineBytes}
}

// Line is one entry and where it came from.
type Line struct {
	Text string
	Line int
}

// Read returns the non-blank lines of r, trimmed and NFC-normalised. Lines
// starting with # are comments. Case is kept. A non-positive MaxLineBytes
// means DefaultMaxLineBytes.
func Read(r io.Reader, opts Options) ([]Line, error) {
	if opts.MaxLineBytes <= 0 {
		opts = DefaultOptions()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, opts.MaxLineBytes)), opts.MaxLineBytes)

	var lines []Line
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(norm.NFC.String(sc.Text()))
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, commentPrefix) {
			continue
		}
		lines = append(lines, Line{Text: text, Line: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", n+1, err)
	}
	return lines, nil
}

// LineNumbers maps each text to the first line it appears on.
func LineNumbers(lines []Line) map[string]int {
	out := make(map[string]int, len(lines))
	for _, l := range lines {
		if _, ok := out[l.Text]; !ok {
			out[l.Text] = l.Line
		}
	}
	return out
}

// Words returns the text of each line.
func Words(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
