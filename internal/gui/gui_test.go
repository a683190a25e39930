package gui

import (
	"math"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
)

type discard struct{}

func (discard) Printf(string, ...any) {}

func newTestApp(t *testing.T) (*App, *carousel.FakeClock) {
	t.Helper()
	a := test.NewTempApp(t)

	var cfg config.Config
	cfg.Resolve(config.Flags{NoWatch: true, Seed: 7, Assets: t.TempDir()})
	cfg.Background.Rows = 4

	clock := carousel.NewFakeClock(time.Unix(0, 0))
	app := New(a, cfg, content.Default(), carousel.WithClock(clock), carousel.WithLogger(discard{}))
	t.Cleanup(app.Close)
	return app, clock
}

func ticks(app *App, n int) {
	for i := 0; i < n; i++ {
		app.Carousel().Tick()
	}
}

func TestInfoPanelStartsOnFirstEntry(t *testing.T) {
	app, _ := newTestApp(t)
	c := content.Default()

	assert.Equal(t, c.Experience[0].Title, app.Info().Title.Text)
	assert.Equal(t, c.Experience[0].Role, app.Info().Role.Text)
	assert.True(t, app.Info().Visible())
}

func TestNextUpdatesInfoAndHidesDuringTransition(t *testing.T) {
	app, clock := newTestApp(t)
	c := content.Default()

	app.Carousel().Next()
	ticks(app, 200)

	assert.Equal(t, 1, app.Carousel().Engine().ActiveIndex())
	assert.Equal(t, c.Experience[1].Title, app.Info().Title.Text)
	assert.False(t, app.Info().Visible())

	clock.Advance(carousel.DefaultConfig().TransitionDelay)
	ticks(app, 1)
	assert.True(t, app.Info().Visible())
}

func TestKeyboardNavigation(t *testing.T) {
	app, _ := newTestApp(t)
	engine := app.Carousel().Engine()
	step := engine.StepAngle()

	app.typedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.InDelta(t, -step, engine.TargetRotation(), 1e-9)

	app.typedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	app.typedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.InDelta(t, step, engine.TargetRotation(), 1e-9)
}

func TestMouseDragRotatesAndSnaps(t *testing.T) {
	app, _ := newTestApp(t)
	w := app.Carousel()
	w.Resize(fyne.NewSize(1280, 720))
	engine := w.Engine()

	w.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 300)}})
	require.True(t, engine.Dragging())

	w.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(300-128, 300)}})
	assert.InDelta(t, 0.2*math.Pi, engine.TargetRotation(), 1e-6)

	w.MouseUp(&desktop.MouseEvent{})
	assert.False(t, engine.Dragging())
	assert.InDelta(t, 0, engine.TargetRotation(), 1e-9)
}

func TestTouchDragStartsWithoutMouseDown(t *testing.T) {
	app, _ := newTestApp(t)
	w := app.Carousel()
	w.Resize(fyne.NewSize(1280, 720))
	engine := w.Engine()

	w.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(290, 300)},
		Dragged:    fyne.NewDelta(-10, 0),
	})
	require.True(t, engine.Dragging())
	assert.InDelta(t, 10.0/1280*2*math.Pi, engine.TargetRotation(), 1e-6)

	w.DragEnd()
	assert.False(t, engine.Dragging())
}

func TestDragOutsideRegionIgnored(t *testing.T) {
	app, _ := newTestApp(t)
	w := app.Carousel()
	w.Resize(fyne.NewSize(1280, 720))

	w.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(1200, 300)}})
	assert.False(t, w.Engine().Dragging())
}

func TestDragIntoRegionDoesNotStartDrag(t *testing.T) {
	app, _ := newTestApp(t)
	w := app.Carousel()
	w.Resize(fyne.NewSize(1280, 720))
	engine := w.Engine()

	w.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(1200, 300)}})
	for x := float32(1180); x >= 600; x -= 20 {
		w.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, 300)},
			Dragged:    fyne.NewDelta(-20, 0),
		})
	}
	assert.False(t, engine.Dragging())
	assert.Zero(t, engine.TargetRotation())

	w.DragEnd()
	w.MouseUp(&desktop.MouseEvent{})

	// the next gesture starts fresh
	w.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 300)}})
	assert.True(t, engine.Dragging())
	w.MouseUp(&desktop.MouseEvent{})
}

func TestTouchDragStartingOutsideRegionIgnored(t *testing.T) {
	app, _ := newTestApp(t)
	w := app.Carousel()
	w.Resize(fyne.NewSize(1280, 720))
	engine := w.Engine()

	for x := float32(1000); x >= 400; x -= 50 {
		w.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, 300)},
			Dragged:    fyne.NewDelta(-50, 0),
		})
	}
	assert.False(t, engine.Dragging())
	assert.Zero(t, engine.TargetRotation())
	w.DragEnd()
}

func TestReloadRemountsEngine(t *testing.T) {
	app, _ := newTestApp(t)
	old := app.Carousel().Engine()

	c := content.Default()
	c.Experience = c.Experience[:2]
	c.Experience[0].Title = "Reloaded"
	app.Reload(c)

	assert.True(t, old.Closed())
	assert.NotSame(t, old, app.Carousel().Engine())
	assert.Equal(t, 2, app.Carousel().Engine().Len())
	assert.Equal(t, "Reloaded", app.Info().Title.Text)
}

func TestProjectsFilter(t *testing.T) {
	test.NewTempApp(t)
	c := content.Default()
	v := NewProjectsView(c.Projects)

	assert.Equal(t, allTags, v.filter.Selected)
	assert.Len(t, v.Shown(), len(c.Projects))

	tag := c.Projects[0].Tags[0]
	v.filter.SetSelected(tag)
	assert.Equal(t, c.Projects.WithTag(tag), v.Shown())
	assert.Len(t, v.list.Objects, len(v.Shown()))
}

func TestHomeViewReveal(t *testing.T) {
	test.NewTempApp(t)
	v := NewHomeView(content.Default().Profile)

	v.Update(0)
	assert.Empty(t, v.title.Segments)
	assert.False(t, v.links.Visible())

	v.Update(time.Minute)
	assert.NotEmpty(t, v.title.Segments)
	assert.True(t, v.links.Visible())
}
