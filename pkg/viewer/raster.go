package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Frame is an RGBA image with a depth buffer for software rendering
type Frame struct {
	img    *image.RGBA
	zbuf   []float64
	width  int
	height int
}

// ScreenPoint is a projected vertex: pixel position plus view depth
type ScreenPoint struct {
	X, Y, Z float64
}

// NewFrame allocates a frame of at least 1x1 pixels
func NewFrame(width, height int) *Frame {
	width, height = max(width, 1), max(height, 1)
	f := &Frame{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:   make([]float64, width*height),
		width:  width,
		height: height,
	}
	f.Clear(color.RGBA{})
	return f
}

// Image returns the rendered pixels
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Size returns the frame dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Clear fills the frame with bg and resets the depth buffer
func (f *Frame) Clear(bg color.RGBA) {
	for i := 0; i < len(f.img.Pix); i += 4 {
		f.img.Pix[i], f.img.Pix[i+1], f.img.Pix[i+2], f.img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	for i := range f.zbuf {
		f.zbuf[i] = math.Inf(1)
	}
}

// Backdrop copies src into the frame, anchored at the top left, and resets the depth buffer
func (f *Frame) Backdrop(src image.Image) {
	draw.Draw(f.img, f.img.Bounds(), src, src.Bounds().Min, draw.Src)
	for i := range f.zbuf {
		f.zbuf[i] = math.Inf(1)
	}
}

// blend draws col over the pixel at (x, y) with the given opacity
func (f *Frame) blend(x, y int, col color.RGBA, alpha float64) {
	i := f.img.PixOffset(x, y)
	p := f.img.Pix[i : i+4 : i+4]
	if alpha >= 1 {
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, 0xFF
		return
	}
	mix := func(dst, src uint8) uint8 {
		return uint8(math.Round(float64(src)*alpha + float64(dst)*(1-alpha)))
	}
	p[0], p[1], p[2] = mix(p[0], col.R), mix(p[1], col.G), mix(p[2], col.B)
	p[3] = mix(p[3], 0xFF)
}

// FillTriangle fills a triangle with depth testing; closer (smaller Z) wins
func (f *Frame) FillTriangle(a, b, c ScreenPoint, col color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}

	// Sort vertices by Y coordinate (top to bottom)
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	yStart := int(math.Max(0, math.Ceil(a.Y)))
	yEnd := int(math.Min(float64(f.height-1), math.Floor(c.Y)))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// long edge a-c against the short edge on this side of b
		xl, zl := edgeAt(a, c, fy)
		var xr, zr float64
		if fy < b.Y {
			xr, zr = edgeAt(a, b, fy)
		} else {
			xr, zr = edgeAt(b, c, fy)
		}
		if xl > xr {
			xl, xr, zl, zr = xr, xl, zr, zl
		}

		xStart := int(math.Max(0, math.Ceil(xl)))
		xEnd := int(math.Min(float64(f.width-1), math.Floor(xr)))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xr != xl {
				t = (float64(x) - xl) / (xr - xl)
			}
			z := zl + t*(zr-zl)

			idx := y*f.width + x
			if z < f.zbuf[idx] {
				if alpha >= 1 {
					f.zbuf[idx] = z
				}
				f.blend(x, y, col, alpha)
			}
		}
	}
}

func edgeAt(p, q ScreenPoint, y float64) (float64, float64) {
	if q.Y == p.Y {
		return p.X, p.Z
	}
	t := (y - p.Y) / (q.Y - p.Y)
	return p.X + t*(q.X-p.X), p.Z + t*(q.Z-p.Z)
}

