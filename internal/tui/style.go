package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette of the dark theme
var (
	background = color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	glyph      = color.RGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0xFF}
	accent     = color.RGBA{R: 0xE8, G: 0xB4, B: 0xA0, A: 0xFF}
	text       = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	muted      = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
)

// Marquee glyph opacities over the background
const (
	glyphAlpha  = 0.3
	accentAlpha = 0.6
)

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend mixes fg over bg at alpha in RGB space
func blend(fg, bg color.RGBA, alpha float64) tcell.Color {
	f, _ := colorful.MakeColor(fg)
	b, _ := colorful.MakeColor(bg)
	r, g, bl := b.BlendRgb(f, alpha).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// baseStyle is plain text on the page background
func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(tcellColor(background)).Foreground(tcellColor(text))
}

// fill paints the whole screen with the page background
func fill(s tcell.Screen) {
	s.Fill(' ', baseStyle())
}

// drawText writes str at (x, y), clipped to the screen width, and returns the next column
func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range str {
		if x >= w {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// wrap splits str into lines of at most width runes, breaking at spaces where possible
func wrap(str string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range splitLines(str) {
		runes := []rune(para)
		for len(runes) > width {
			cut := width
			for i := width; i > 0; i-- {
				if runes[i] == ' ' {
					cut = i
					break
				}
			}
			lines = append(lines, string(runes[:cut]))
			runes = runes[cut:]
			for len(runes) > 0 && runes[0] == ' ' {
				runes = runes[1:]
			}
		}
		lines = append(lines, string(runes))
	}
	return lines
}

func splitLines(str string) []string {
	var out []string
	start := 0
	for i, r := range str {
		if r == '\n' {
			out = append(out, str[start:i])
			start = i + 1
		}
	}
	return append(out, str[start:])
}
