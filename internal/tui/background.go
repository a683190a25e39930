package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/philipparndt/gofolio/pkg/pattern"
)

// BackgroundPage shows the scrolling marquee on its own
type BackgroundPage struct {
	Layer pattern.Layer
}

// Draw implements Page
func (p *BackgroundPage) Draw(s tcell.Screen, elapsed time.Duration) {
	fill(s)
	drawMarquee(s, p.Layer, elapsed)
}

// HandleEvent implements Page
func (p *BackgroundPage) HandleEvent(ev tcell.Event) bool {
	if key, ok := ev.(*tcell.EventKey); ok && isQuit(key) {
		return false
	}
	return true
}

// drawMarquee writes one track per screen row, repeating the tracks when the screen is taller
func drawMarquee(s tcell.Screen, layer pattern.Layer, elapsed time.Duration) {
	if len(layer.Tracks) == 0 {
		return
	}
	w, h := s.Size()
	plain := baseStyle().Foreground(blend(glyph, background, glyphAlpha))
	highlight := baseStyle().Foreground(blend(accent, background, accentAlpha))

	for y := 0; y < h; y++ {
		track := layer.Tracks[y%len(layer.Tracks)]
		for x, cell := range track.Window(elapsed, w) {
			style := plain
			if cell.Highlight {
				style = highlight
			}
			s.SetContent(x, y, cell.Char, nil, style)
		}
	}
}
