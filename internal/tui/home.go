package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/motion"
	"github.com/philipparndt/gofolio/pkg/pattern"
)

// HomePage types out the profile over the marquee
type HomePage struct {
	home  scene.Home
	layer pattern.Layer
	// restart is set on reload so the reveal starts again from the next frame
	restart bool
	offset  time.Duration
}

// NewHomePage creates the home page for c
func NewHomePage(c *content.Content, layer pattern.Layer) *HomePage {
	return &HomePage{home: scene.NewHome(c.Profile), layer: layer}
}

// Reload implements Reloadable
func (p *HomePage) Reload(c *content.Content) {
	p.home = scene.NewHome(c.Profile)
	p.restart = true
}

// Draw implements Page
func (p *HomePage) Draw(s tcell.Screen, elapsed time.Duration) {
	if p.restart {
		p.offset, p.restart = elapsed, false
	}
	t := elapsed - p.offset

	fill(s)
	drawMarquee(s, p.layer, elapsed)

	w, h := s.Size()
	width := min(w-4, 72)
	x := (w - width) / 2
	y := max(h/4, 1)

	title := p.home.Title(t)
	cursor := drawSpans(s, x, y, title, p.home.TitleSpans(), baseStyle().Bold(true))
	if !p.home.TitleDone(t) {
		s.SetContent(cursor, y, '|', nil, baseStyle().Foreground(tcellColor(accent)))
	}

	// the bio is wrapped on the full text so lines do not jump while typing
	bio := []rune(p.home.Bio(t))
	spans := p.home.BioSpans()
	row := y + 2
	start := 0
	for _, l := range wrap(p.home.Profile.Bio, width) {
		n := len([]rune(l))
		end := min(start+n, len(bio))
		if end > start {
			drawSpans(s, x, row, string(bio[start:end]), shift(spans, start), baseStyle())
		}
		start += n
		// wrap drops the separator at each break
		if start < len(bio) && (bio[start] == ' ' || bio[start] == '\n') {
			start++
		}
		row++
	}

	if p.home.ContactVisible(t) {
		row++
		for _, link := range p.home.Profile.Links {
			next := drawText(s, x, row, link.Label+" ", baseStyle().Foreground(tcellColor(accent)))
			drawText(s, next, row, link.URL, baseStyle().Foreground(tcellColor(muted)).Underline(true))
			row++
		}
	}
}

// HandleEvent implements Page
func (p *HomePage) HandleEvent(ev tcell.Event) bool {
	if key, ok := ev.(*tcell.EventKey); ok && isQuit(key) {
		return false
	}
	return true
}

// drawSpans writes str with the runes inside spans in the accent colour and returns the next column
func drawSpans(s tcell.Screen, x, y int, str string, spans []motion.Span, style tcell.Style) int {
	hl := style.Foreground(tcellColor(accent))
	for i, r := range []rune(str) {
		st := style
		for _, sp := range spans {
			if i >= sp.Start && i < sp.End {
				st = hl
				break
			}
		}
		x = drawText(s, x, y, string(r), st)
	}
	return x
}

// shift moves spans left by n runes
func shift(spans []motion.Span, n int) []motion.Span {
	out := make([]motion.Span, len(spans))
	for i, sp := range spans {
		out[i] = motion.Span{Start: sp.Start - n, End: sp.End - n}
	}
	return out
}
