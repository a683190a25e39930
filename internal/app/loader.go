package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/content"
)

// mount creates a fresh engine and background for the current content
func (app *App) mount() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	app.Interaction.width, app.Interaction.height = w, h
	app.Interaction.pointerDown = false
	app.Interaction.touching = false

	app.Carousel.engine = scene.Mount(app.Config, app.Content, carousel.Viewport{Width: float64(w), Height: float64(h)})
	app.Info.index = 0
	app.Info.alpha = 0
	app.Carousel.unsubscribe = app.Carousel.engine.Subscribe(carousel.ObserverFunc(func(index int) {
		app.Info.index = index
	}))

	app.Background.layer = scene.Background(app.Config, app.Content)
	app.Background.started = time.Now()

	app.layoutButtons()
}

// unmount closes the engine and releases the item models
func (app *App) unmount() {
	if app.Carousel.unsubscribe != nil {
		app.Carousel.unsubscribe()
		app.Carousel.unsubscribe = nil
	}
	if app.Carousel.engine != nil {
		app.Carousel.engine.Close()
	}
	app.unloadItemModels()
}

// setupFileWatcher starts watching the content file and the assets it references
func (app *App) setupFileWatcher() error {
	r, err := scene.WatchContent(app.Config, app.Content)
	if err != nil {
		return err
	}
	app.FileWatch.reloader = r
	return nil
}

// pollReload remounts the carousel when the watcher delivered new content (must be called on main thread)
func (app *App) pollReload() {
	select {
	case c, ok := <-app.FileWatch.reloader.Updates():
		if ok && c != nil {
			app.reload(c)
		}
	default:
	}
}

func (app *App) reload(c *content.Content) {
	app.unmount()
	app.Content = c
	app.mount()
	fmt.Println("Content reloaded")
}
