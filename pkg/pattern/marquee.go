package pattern

import (
	"time"
)

// Track is one scrolling row. The row is conceptually duplicated end to end and
// shifted left at constant speed, wrapping once per Duration.
type Track struct {
	Row      Row
	Duration time.Duration
	Phase    time.Duration
}

// Layer is the full set of tracks that make up the background
type Layer struct {
	Tracks []Track
}

// NewLayer generates n tracks. Each track gets a duration drawn uniformly from
// [minDuration, maxDuration) and a phase drawn uniformly from [0, duration) so rows
// drift out of step with each other.
func NewLayer(g *Generator, n int, minDuration, maxDuration time.Duration) Layer {
	if maxDuration < minDuration {
		minDuration, maxDuration = maxDuration, minDuration
	}
	if minDuration <= 0 {
		minDuration = time.Second
	}

	tracks := make([]Track, 0, n)
	for i := 0; i < n; i++ {
		row, _ := g.Row()
		duration := minDuration
		if spread := maxDuration - minDuration; spread > 0 {
			duration += time.Duration(g.Rand.Int64N(int64(spread)))
		}
		tracks = append(tracks, Track{
			Row:      row,
			Duration: duration,
			Phase:    time.Duration(g.Rand.Int64N(int64(duration))),
		})
	}
	return Layer{Tracks: tracks}
}

// Progress returns the loop fraction in [0, 1) reached after elapsed
func (t Track) Progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 {
		return 0
	}
	pos := (elapsed + t.Phase) % t.Duration
	if pos < 0 {
		pos += t.Duration
	}
	return float64(pos) / float64(t.Duration)
}

// Offset returns the index of the first visible cell after elapsed
func (t Track) Offset(elapsed time.Duration) int {
	n := len(t.Row)
	if n == 0 {
		return 0
	}
	off := int(t.Progress(elapsed) * float64(n))
	if off >= n {
		off = n - 1
	}
	return off
}

// Window returns width cells of the looping row starting at the current offset
func (t Track) Window(elapsed time.Duration, width int) Row {
	n := len(t.Row)
	if n == 0 || width <= 0 {
		return nil
	}
	start := t.Offset(elapsed)
	out := make(Row, width)
	for i := range out {
		out[i] = t.Row[(start+i)%n]
	}
	return out
}

// Scroll returns the first visible cell after elapsed and how far, as a fraction of one
// cell, the row has already moved past it. Renderers that draw at sub-cell precision use it
// to scroll smoothly.
func (t Track) Scroll(elapsed time.Duration) (int, float64) {
	n := len(t.Row)
	if n == 0 {
		return 0, 0
	}
	pos := t.Progress(elapsed) * float64(n)
	off := int(pos)
	if off >= n {
		return n - 1, 0
	}
	return off, pos - float64(off)
}
