package motion

import (
	"strings"
	"time"
)

// Typewriter reveals Text one rune at a time, one rune per Interval
type Typewriter struct {
	Text     string
	Interval time.Duration
	runes    []rune
}

// NewTypewriter creates a typewriter for text
func NewTypewriter(text string, interval time.Duration) *Typewriter {
	return &Typewriter{Text: text, Interval: interval, runes: []rune(text)}
}

// Duration is the time needed to reveal the whole text
func (t *Typewriter) Duration() time.Duration {
	return time.Duration(len(t.runes)) * t.Interval
}

// Count returns the number of runes visible after elapsed
func (t *Typewriter) Count(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	if t.Interval <= 0 {
		return len(t.runes)
	}
	n := int(elapsed / t.Interval)
	if n > len(t.runes) {
		n = len(t.runes)
	}
	return n
}

// Visible returns the revealed prefix after elapsed
func (t *Typewriter) Visible(elapsed time.Duration) string {
	return string(t.runes[:t.Count(elapsed)])
}

// Done reports whether the whole text is visible
func (t *Typewriter) Done(elapsed time.Duration) bool {
	return t.Count(elapsed) == len(t.runes)
}

// Stage is one step of a Sequence: a typewriter followed by an optional pause
type Stage struct {
	Writer *Typewriter
	Pause  time.Duration
}

// Sequence chains stages so each starts once the previous one has finished and paused
type Sequence struct {
	Stages []Stage
}

// Visible returns the revealed text of every stage after elapsed
func (s Sequence) Visible(elapsed time.Duration) []string {
	out := make([]string, len(s.Stages))
	start := time.Duration(0)
	for i, stage := range s.Stages {
		out[i] = stage.Writer.Visible(elapsed - start)
		start += stage.Writer.Duration() + stage.Pause
	}
	return out
}

// Done reports whether every stage, including its pause, has completed
func (s Sequence) Done(elapsed time.Duration) bool {
	total := time.Duration(0)
	for _, stage := range s.Stages {
		total += stage.Writer.Duration() + stage.Pause
	}
	return elapsed >= total
}

// Span marks a highlighted run of runes in a text, [Start, End)
type Span struct {
	Start, End int
}

// HighlightSpans finds the first occurrence of every phrase in text and returns rune spans
// sorted by position. Phrases that do not occur are skipped.
func HighlightSpans(text string, phrases []string) []Span {
	var spans []Span
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		idx := strings.Index(text, phrase)
		if idx < 0 {
			continue
		}
		start := len([]rune(text[:idx]))
		spans = append(spans, Span{Start: start, End: start + len([]rune(phrase))})
	}
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].Start < spans[j-1].Start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
	return spans
}
