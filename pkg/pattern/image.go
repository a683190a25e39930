package pattern

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageOptions controls how a layer is rasterised
type ImageOptions struct {
	Width      int
	Height     int
	Background color.RGBA
	Glyph      color.NRGBA
	Accent     color.NRGBA
	CellWidth  int
	LineHeight int
}

// DefaultImageOptions matches the on-screen palette: dim grey glyphs with peach highlights
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Width:      1200,
		Height:     800,
		Background: color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF},
		Glyph:      color.NRGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0x4D},
		Accent:     color.NRGBA{R: 0xE8, G: 0xB4, B: 0xA0, A: 0x99},
		CellWidth:  14,
		LineHeight: 20,
	}
}

// RenderImage draws the layer as it appears after elapsed
func RenderImage(layer Layer, elapsed time.Duration, opts ImageOptions) *image.RGBA {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 14
	}
	if opts.LineHeight <= 0 {
		opts.LineHeight = 20
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	glyph := image.NewUniform(opts.Glyph)
	accent := image.NewUniform(opts.Accent)
	columns := opts.Width/opts.CellWidth + 1

	for i, track := range layer.Tracks {
		baseline := (i+1)*opts.LineHeight - (opts.LineHeight-face.Ascent)/2
		if baseline-face.Ascent > opts.Height {
			break
		}
		for col, cell := range track.Window(elapsed, columns) {
			src := glyph
			if cell.Highlight {
				src = accent
			}
			d := font.Drawer{
				Dst:  img,
				Src:  src,
				Face: face,
				Dot:  fixed.P(col*opts.CellWidth, baseline),
			}
			d.DrawString(string(cell.Char))
		}
	}

	return img
}
