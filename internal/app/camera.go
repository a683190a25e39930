package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibCamera mirrors the engine camera
func (app *App) raylibCamera() rl.Camera3D {
	c := app.Carousel.engine.Camera()
	return rl.Camera3D{
		Position:   vec3(c.Position),
		Target:     vec3(c.Target),
		Up:         vec3(c.Up),
		Fovy:       float32(c.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}
