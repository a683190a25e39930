// Package app is the raylib front end: the Experience carousel drawn in 3D over the marquee background.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
)

// Run opens the window and blocks until it is closed
func Run(cfg config.Config, c *content.Content) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(rl.KeyEscape)

	app := &App{
		Config:  cfg,
		Content: c,
	}
	app.UI.font = rl.GetFontDefault()
	app.mount()

	// Set up file watching
	if err := app.setupFileWatcher(); err != nil {
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		fmt.Println("Auto-reload will not be available")
	} else {
		defer app.FileWatch.reloader.Close()
	}

	// Main loop
	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.pollReload()

		// Update
		app.handleInput()
		app.Carousel.engine.Tick()
		app.syncItemModels() // uploads must happen on the main thread

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(0x1E, 0x1E, 0x1E, 255))

		app.drawBackground()

		camera := app.raylibCamera()
		rl.BeginMode3D(camera)
		app.drawItems(camera)
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	// Cleanup
	app.unmount()
	rl.CloseWindow()
}
