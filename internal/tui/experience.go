package tui

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/pattern"
	"github.com/philipparndt/gofolio/pkg/viewer"
)

// A terminal cell counts as this many viewport units, so the layout breakpoint
// still separates wide terminals from narrow ones
const (
	cellWidth  = 8
	cellHeight = 16
)

const hint = "←/→ browse · drag to spin · q quit"

// ExperiencePage is the terminal carousel. Items are rasterised at two pixels per
// cell and printed with half blocks over the marquee.
type ExperiencePage struct {
	cfg     config.Config
	content *content.Content
	opts    []carousel.Option
	sound   Sound

	engine      *carousel.Engine
	layer       pattern.Layer
	unsubscribe func()
	frame       *viewer.Frame
	cols, rows  int
	pressed     bool
}

// NewExperiencePage mounts a carousel for c. opts are passed to every engine it mounts.
func NewExperiencePage(cfg config.Config, c *content.Content, sound Sound, opts ...carousel.Option) *ExperiencePage {
	if sound == nil {
		sound = Mute{}
	}
	p := &ExperiencePage{cfg: cfg, opts: opts, sound: sound}
	p.mount(c)
	return p
}

func (p *ExperiencePage) mount(c *content.Content) {
	p.content = c
	viewport := carousel.Viewport{Width: float64(max(p.cols, 1) * cellWidth), Height: float64(max(p.rows, 1) * cellHeight)}
	p.engine = scene.Mount(p.cfg, c, viewport, p.opts...)
	p.layer = scene.Background(p.cfg, c)
	p.unsubscribe = p.engine.Subscribe(carousel.ObserverFunc(func(int) { p.sound.Tick() }))
}

// Engine returns the mounted engine
func (p *ExperiencePage) Engine() *carousel.Engine {
	return p.engine
}

// Reload implements Reloadable by remounting the carousel
func (p *ExperiencePage) Reload(c *content.Content) {
	p.unsubscribe()
	p.engine.Close()
	p.pressed = false
	p.mount(c)
	p.cols, p.rows = 0, 0
}

// Close implements Closer
func (p *ExperiencePage) Close() {
	p.engine.Close()
	p.sound.Close()
}

func (p *ExperiencePage) resize(cols, rows int) {
	if cols == p.cols && rows == p.rows {
		return
	}
	p.cols, p.rows = cols, rows
	p.engine.Resize(carousel.Viewport{Width: float64(cols * cellWidth), Height: float64(rows * cellHeight)})
	p.frame = viewer.NewFrame(cols, rows*2)
}

// Draw implements Page
func (p *ExperiencePage) Draw(s tcell.Screen, elapsed time.Duration) {
	cols, rows := s.Size()
	p.resize(cols, rows)
	p.engine.Tick()

	fill(s)
	drawMarquee(s, p.layer, elapsed)
	p.drawItems(s)
	if !p.engine.Transitioning() {
		p.drawInfo(s)
	}
	drawText(s, 1, rows-1, hint, baseStyle().Foreground(tcellColor(muted)))
}

func (p *ExperiencePage) drawItems(s tcell.Screen) {
	if p.frame == nil {
		return
	}
	p.frame.Clear(color.RGBA{})
	scene.Draw(p.frame, p.engine)

	img := p.frame.Image()
	for y := 0; y < p.rows; y++ {
		for x := 0; x < p.cols; x++ {
			top, bottom := img.RGBAAt(x, 2*y), img.RGBAAt(x, 2*y+1)
			if top.A == 0 && bottom.A == 0 {
				continue
			}
			style := baseStyle().Foreground(pixelColor(top)).Background(pixelColor(bottom))
			s.SetContent(x, y, '▀', nil, style)
		}
	}
}

// pixelColor undoes the frame's blend over transparent black and composites onto the page background
func pixelColor(c color.RGBA) tcell.Color {
	switch c.A {
	case 0:
		return tcellColor(background)
	case 0xFF:
		return tcellColor(c)
	}
	a := float64(c.A) / 0xFF
	un := func(v uint8) uint8 { return uint8(min(0xFF, float64(v)/a+0.5)) }
	return blend(color.RGBA{R: un(c.R), G: un(c.G), B: un(c.B), A: 0xFF}, background, a)
}

// infoRect is the panel area: right of the drag region on wide layouts, below the touch band otherwise
func (p *ExperiencePage) infoRect() (x, y, width int) {
	l := p.engine.Layout()
	if l.Wide {
		x = int(l.DragRegion*float64(p.cols)) + 2
		return x, 2, p.cols - x - 2
	}
	return 2, int(l.TouchBand*float64(p.rows)) + 1, p.cols - 4
}

type line struct {
	text  string
	style tcell.Style
}

func (p *ExperiencePage) drawInfo(s tcell.Screen) {
	index := p.engine.ActiveIndex()
	if index < 0 || index >= len(p.content.Experience) {
		return
	}
	e := p.content.Experience[index]
	x, y, width := p.infoRect()
	if width < 8 {
		return
	}

	col, err := e.RGBA()
	if err != nil {
		col = text
	}
	lines := []line{
		{e.Title, baseStyle().Foreground(tcellColor(col)).Bold(true)},
		{e.Role, baseStyle()},
		{e.Date, baseStyle().Foreground(tcellColor(muted))},
		{"", baseStyle()},
	}
	for _, l := range wrap(e.Description, width) {
		lines = append(lines, line{l, baseStyle()})
	}
	if e.URL != "" {
		lines = append(lines, line{"", baseStyle()}, line{e.URL, baseStyle().Foreground(tcellColor(accent)).Underline(true)})
	}

	for i, l := range lines {
		row := y + i
		if row >= p.rows-1 {
			break
		}
		for cx := x - 1; cx < x+width+1 && cx < p.cols; cx++ {
			s.SetContent(cx, row, ' ', nil, baseStyle())
		}
		drawText(s, x, row, l.text, l.style)
	}
}

// HandleEvent implements Page
func (p *ExperiencePage) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		switch {
		case ev.Key() == tcell.KeyLeft || ev.Key() == tcell.KeyRune && ev.Rune() == 'h':
			p.engine.Prev()
		case ev.Key() == tcell.KeyRight || ev.Key() == tcell.KeyRune && ev.Rune() == 'l':
			p.engine.Next()
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := (float64(cx)+0.5)*cellWidth, (float64(cy)+0.5)*cellHeight
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !p.pressed:
			p.pressed = true
			p.engine.PointerDown(x, y)
		case !down && p.pressed:
			p.pressed = false
			p.engine.PointerMove(x, y)
			p.engine.PointerUp()
		default:
			p.engine.PointerMove(x, y)
		}

	case *tcell.EventResize:
		p.resize(ev.Size())
	}
	return true
}
