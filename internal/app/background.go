package app

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	marqueeFontSize   = 22
	marqueeCellWidth  = 20
	marqueeLineHeight = 40
	marqueeAngle      = -45
	marqueeOpacity    = 0.12 * 255
)

var (
	marqueeGlyph  = rl.NewColor(0x4B, 0x55, 0x63, 0xFF)
	marqueeAccent = rl.NewColor(0xE8, 0xB4, 0xA0, 0xFF)
)

// drawBackground draws the marquee rows on a square 1.5 times the larger screen side,
// rotated about the screen centre
func (app *App) drawBackground() {
	tracks := app.Background.layer.Tracks
	if len(tracks) == 0 {
		return
	}

	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	side := 1.5 * float32(math.Max(float64(w), float64(h)))
	elapsed := time.Since(app.Background.started)

	glyph := rl.Fade(marqueeGlyph, 0.3*marqueeOpacity/255)
	accent := rl.Fade(marqueeAccent, 0.6*marqueeOpacity/255)

	rl.PushMatrix()
	rl.Translatef(w/2, h/2, 0)
	rl.Rotatef(marqueeAngle, 0, 0, 1)
	rl.Translatef(-side/2, -side/2, 0)

	for i, track := range tracks {
		y := float32(i * marqueeLineHeight)
		if y > side {
			break
		}
		n := len(track.Row)
		if n == 0 {
			continue
		}
		off, frac := track.Scroll(elapsed)
		rowWidth := float32(n * marqueeCellWidth)
		x := -(float32(off) + float32(frac)) * marqueeCellWidth

		// the row is drawn end to end until the square is covered
		for ; x < side; x += rowWidth {
			for _, run := range track.Row.Runs() {
				col := glyph
				if run.Highlight {
					col = accent
				}
				pos := rl.Vector2{X: x + float32(run.Start*marqueeCellWidth), Y: y}
				if pos.X > side || pos.X+float32(len(run.Text)*marqueeCellWidth) < 0 {
					continue
				}
				rl.DrawTextEx(app.UI.font, run.Text, pos, marqueeFontSize, marqueeCellWidth-marqueeFontSize*0.6, col)
			}
		}
	}

	rl.PopMatrix()
}
