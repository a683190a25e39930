// Package tui renders the portfolio pages in a terminal with tcell.
package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/philipparndt/gofolio/pkg/content"
)

// Page is one full-screen view
type Page interface {
	// Draw renders the page as it looks after elapsed
	Draw(s tcell.Screen, elapsed time.Duration)
	// HandleEvent reacts to input and reports whether the program should keep running
	HandleEvent(ev tcell.Event) bool
}

// Reloadable pages accept new content while running
type Reloadable interface {
	Reload(c *content.Content)
}

// Closer pages release resources when the loop exits
type Closer interface {
	Close()
}

// Loop drives a page at a fixed frame rate
type Loop struct {
	Screen  tcell.Screen
	Page    Page
	FPS     int
	Updates <-chan *content.Content

	events   chan tcell.Event
	quit     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop drawing page on screen at 60 frames per second
func NewLoop(screen tcell.Screen, page Page) *Loop {
	return &Loop{
		Screen: screen,
		Page:   page,
		FPS:    60,
		quit:   make(chan struct{}),
	}
}

// NewScreen creates and initialises a terminal screen with mouse support
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// Run processes events and draws frames until the page asks to quit or Stop is called
func (l *Loop) Run() {
	fps := l.FPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	l.events = make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case l.events <- ev:
			case <-l.quit:
				return
			}
		}
	}()

	if c, ok := l.Page.(Closer); ok {
		defer c.Close()
	}

	started := time.Now()
	for {
		select {
		case <-l.quit:
			return

		case ev := <-l.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				l.Screen.Sync()
			}
			if !l.Page.HandleEvent(ev) {
				return
			}

		case c, ok := <-l.Updates:
			if !ok {
				l.Updates = nil
				continue
			}
			if r, ok := l.Page.(Reloadable); ok {
				r.Reload(c)
			}

		case <-ticker.C:
			l.Screen.Clear()
			l.Page.Draw(l.Screen, time.Since(started))
			l.Screen.Show()
		}
	}
}

// Stop ends Run from another goroutine
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
}

// isQuit matches Escape, Ctrl-C and q
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
