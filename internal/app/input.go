package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofolio/pkg/carousel"
)

// handleInput feeds keyboard, mouse and touch input into the carousel
func (app *App) handleInput() {
	e := app.Carousel.engine

	if rl.IsWindowResized() {
		app.resize()
	}

	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		e.Prev()
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		e.Next()
	}

	// Touch takes precedence; raylib also reports the first touch as the mouse on some platforms
	if rl.GetTouchPointCount() > 0 {
		pos := rl.GetTouchPosition(0)
		if !app.Interaction.touching {
			app.Interaction.touching = true
			app.pointerDown(pos)
		} else {
			e.PointerMove(float64(pos.X), float64(pos.Y))
		}
		return
	}
	if app.Interaction.touching {
		app.Interaction.touching = false
		app.pointerUp()
		return
	}

	pos := rl.GetMousePosition()
	e.PointerMove(float64(pos.X), float64(pos.Y))

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.pointerDown(pos)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.pointerUp()
	}
}

// pointerDown gives the navigation buttons priority over the drag region
func (app *App) pointerDown(pos rl.Vector2) {
	e := app.Carousel.engine
	switch {
	case rl.CheckCollisionPointRec(pos, app.UI.prevButton):
		e.Prev()
	case rl.CheckCollisionPointRec(pos, app.UI.nextButton):
		e.Next()
	default:
		app.Interaction.pointerDown = e.PointerDown(float64(pos.X), float64(pos.Y))
	}
}

func (app *App) pointerUp() {
	if !app.Interaction.pointerDown {
		return
	}
	app.Interaction.pointerDown = false
	app.Carousel.engine.PointerUp()
}

// resize propagates the window size to the engine and the button layout
func (app *App) resize() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == app.Interaction.width && h == app.Interaction.height {
		return
	}
	app.Interaction.width, app.Interaction.height = w, h
	app.Carousel.engine.Resize(carousel.Viewport{Width: float64(w), Height: float64(h)})
	app.layoutButtons()
}
