package app

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofolio/pkg/motion"
	"github.com/philipparndt/gofolio/version"
)

const (
	buttonSize = float32(44)
	infoFade   = 0.15
)

// layoutButtons places the prev/next buttons centred under the carousel
func (app *App) layoutButtons() {
	w, h := float32(app.Interaction.width), float32(app.Interaction.height)
	cx := w / 2
	if app.Carousel.engine.Layout().Wide {
		cx = float32(app.Carousel.engine.Layout().DragRegion) / 2
	}
	y := h - buttonSize - 50
	app.UI.prevButton = rl.Rectangle{X: cx - buttonSize - 10, Y: y, Width: buttonSize, Height: buttonSize}
	app.UI.nextButton = rl.Rectangle{X: cx + 10, Y: y, Width: buttonSize, Height: buttonSize}
}

// infoRect returns the panel area: right of the drag region when wide, below the touch band otherwise
func (app *App) infoRect() rl.Rectangle {
	w, h := float32(app.Interaction.width), float32(app.Interaction.height)
	l := app.Carousel.engine.Layout()
	if l.Wide {
		x := float32(l.DragRegion) + 20
		return rl.Rectangle{X: x, Y: 60, Width: w - x - 40, Height: h - 120}
	}
	y := float32(l.TouchBand) + 10
	return rl.Rectangle{X: 20, Y: y, Width: w - 40, Height: h - y - 20}
}

// drawUI draws the info panel, the navigation buttons and the status line
func (app *App) drawUI() {
	fontSize12 := float32(12)
	fontSize14 := float32(14)

	app.drawInfo()
	app.drawButton(app.UI.prevButton, "<")
	app.drawButton(app.UI.nextButton, ">")

	hint := "Drag or use Left/Right to browse"
	hintWidth := rl.MeasureTextEx(app.UI.font, hint, fontSize14, 1).X
	hintX := app.UI.prevButton.X + buttonSize + 10 - hintWidth/2
	rl.DrawTextEx(app.UI.font, hint, rl.Vector2{X: hintX, Y: app.UI.prevButton.Y + buttonSize + 12}, fontSize14, 1, rl.Gray)

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

func (app *App) drawButton(r rl.Rectangle, label string) {
	bg := rl.NewColor(255, 255, 255, 20)
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), r) {
		bg = rl.NewColor(255, 255, 255, 50)
	}
	rl.DrawRectangleRounded(r, 0.5, 8, bg)
	rl.DrawRectangleRoundedLines(r, 0.5, 8, rl.NewColor(255, 255, 255, 80))
	size := rl.MeasureTextEx(app.UI.font, label, 20, 1)
	rl.DrawTextEx(app.UI.font, label, rl.Vector2{X: r.X + (r.Width-size.X)/2, Y: r.Y + (r.Height-size.Y)/2}, 20, 1, rl.RayWhite)
}

// drawInfo shows the active experience, faded out while the carousel moves between items
func (app *App) drawInfo() {
	target := 1.0
	if app.Carousel.engine.Transitioning() {
		target = 0
	}
	app.Info.alpha = float32(motion.Approach(float64(app.Info.alpha), target, infoFade))
	if app.Info.alpha < 0.01 {
		return
	}

	index := app.Info.index
	if index < 0 || index >= len(app.Content.Experience) {
		return
	}
	e := app.Content.Experience[index]
	r := app.infoRect()
	if r.Width < 80 {
		return
	}

	accent := rl.RayWhite
	if col, err := e.RGBA(); err == nil {
		accent = rl.NewColor(col.R, col.G, col.B, 255)
	}
	fade := func(c rl.Color) rl.Color { return rl.Fade(c, app.Info.alpha) }

	y := r.Y
	rl.DrawTextEx(app.UI.font, e.Title, rl.Vector2{X: r.X, Y: y}, 32, 2, fade(accent))
	y += 44
	rl.DrawTextEx(app.UI.font, e.Role, rl.Vector2{X: r.X, Y: y}, 20, 1, fade(rl.RayWhite))
	y += 28
	rl.DrawTextEx(app.UI.font, e.Date, rl.Vector2{X: r.X, Y: y}, 16, 1, fade(rl.Gray))
	y += 36

	for _, line := range app.wrapText(e.Description, 18, r.Width) {
		if y > r.Y+r.Height-24 {
			break
		}
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: r.X, Y: y}, 18, 1, fade(rl.LightGray))
		y += 24
	}
	if e.URL != "" && y <= r.Y+r.Height-24 {
		rl.DrawTextEx(app.UI.font, e.URL, rl.Vector2{X: r.X, Y: y + 12}, 16, 1, fade(accent))
	}
}

// wrapText breaks str into lines no wider than width at the given font size
func (app *App) wrapText(str string, fontSize, width float32) []string {
	var lines []string
	for _, para := range strings.Split(str, "\n") {
		var line string
		for _, word := range strings.Fields(para) {
			next := word
			if line != "" {
				next = line + " " + word
			}
			if line != "" && rl.MeasureTextEx(app.UI.font, next, fontSize, 1).X > width {
				lines = append(lines, line)
				next = word
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}
