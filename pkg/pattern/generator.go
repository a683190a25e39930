// Package pattern generates the decorative background: rows of random glyphs with
// highlighted words embedded, and the looping marquee tracks that scroll them.
package pattern

import (
	"math/rand/v2"
	"strings"
)

// Alphabet is the set of filler glyphs
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	DefaultLength   = 60
	DefaultRows     = 40
	DefaultMinGap   = 3
	DefaultAttempts = 20
)

// DefaultWords is the highlight vocabulary used when none is configured
var DefaultWords = []string{
	"UBS", "PYTHON", "JAVA", "SQL", "SQLITE", "C++", "REACT", "REACT NATIVE",
	"HTML", "CSS", "JAVASCRIPT", "LANGCHAIN", "LLAMAINDEX", "CHARACTERCOMPASS", "WARWICK",
}

// Cell is one glyph of a row
type Cell struct {
	Char      rune
	Highlight bool
}

// Row is an immutable sequence of cells
type Row []Cell

// String renders the row as plain text
func (r Row) String() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteRune(c.Char)
	}
	return b.String()
}

// Span is a half-open range [Start, End) of a row occupied by a highlighted word
type Span struct {
	Start, End int
}

// conflicts reports whether two spans come closer than gap cells
func (s Span) conflicts(other Span, gap int) bool {
	return s.Start < other.End+gap && other.Start < s.End+gap
}

// Generator produces background rows
type Generator struct {
	Words    []string
	Length   int
	MinGap   int
	Attempts int
	Rand     *rand.Rand
}

// NewGenerator creates a generator with the default layout parameters
func NewGenerator(words []string, rng *rand.Rand) *Generator {
	if len(words) == 0 {
		words = DefaultWords
	}
	return &Generator{
		Words:    words,
		Length:   DefaultLength,
		MinGap:   DefaultMinGap,
		Attempts: DefaultAttempts,
		Rand:     rng,
	}
}

// Row generates one row and returns the spans of the words that were placed
func (g *Generator) Row() (Row, []Span) {
	length := max(g.Length, 0)
	alphabet := []rune(Alphabet)

	row := make(Row, length)
	for i := range row {
		row[i] = Cell{Char: alphabet[g.Rand.IntN(len(alphabet))]}
	}

	if len(g.Words) == 0 {
		return row, nil
	}

	var used []Span
	numWords := g.Rand.IntN(2) + 1
	for w := 0; w < numWords; w++ {
		word := []rune(g.Words[g.Rand.IntN(len(g.Words))])
		if len(word) == 0 || len(word) > length {
			continue
		}

		for attempt := 0; attempt < g.Attempts; attempt++ {
			start := g.Rand.IntN(length - len(word) + 1)
			span := Span{Start: start, End: start + len(word)}

			overlaps := false
			for _, u := range used {
				if span.conflicts(u, g.MinGap) {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}

			for i, ch := range word {
				row[start+i] = Cell{Char: ch, Highlight: true}
			}
			used = append(used, span)
			break
		}
	}

	return row, used
}

// Rows generates n rows
func (g *Generator) Rows(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		row, _ := g.Row()
		rows = append(rows, row)
	}
	return rows
}

// Run is a stretch of consecutive cells with the same highlight state
type Run struct {
	Start     int
	Text      string
	Highlight bool
}

// Runs groups the row into runs so renderers can draw whole strings per colour
func (r Row) Runs() []Run {
	var runs []Run
	var b strings.Builder
	start := 0
	for i, c := range r {
		if i > 0 && c.Highlight != r[i-1].Highlight {
			runs = append(runs, Run{Start: start, Text: b.String(), Highlight: r[i-1].Highlight})
			b.Reset()
			start = i
		}
		b.WriteRune(c.Char)
	}
	if len(r) > 0 {
		runs = append(runs, Run{Start: start, Text: b.String(), Highlight: r[len(r)-1].Highlight})
	}
	return runs
}
