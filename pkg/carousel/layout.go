package carousel

import (
	"math"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

const (
	wideRadiusX   = 3.5
	wideRadiusZ   = 3.0
	wideOffsetX   = -2.5
	narrowSlide   = 8.0
	narrowCameraY = -2.2
	frontBand     = 0.5
	modelLift     = 0.5
)

// Viewport is the drawable area in pixels
type Viewport struct {
	Width, Height float64
}

// Clamp returns the viewport with both sides at least 1
func (v Viewport) Clamp() Viewport {
	return Viewport{Width: math.Max(1, v.Width), Height: math.Max(1, v.Height)}
}

// Layout holds the constants derived from the viewport size
type Layout struct {
	Viewport   Viewport
	Wide       bool
	CameraY    float64
	OffsetX    float64
	DragRegion float64 // wide: maximum x of a drag start in pixels
	TouchBand  float64 // narrow: maximum y of a drag start in pixels
}

// LayoutFor derives the layout for a viewport. It is a pure function of its inputs.
func LayoutFor(v Viewport, cfg Config) Layout {
	v = v.Clamp()
	l := Layout{
		Viewport:   v,
		Wide:       v.Width >= cfg.Breakpoint,
		DragRegion: v.Width * cfg.DragRegion,
		TouchBand:  v.Height * cfg.TouchBand,
	}
	if l.Wide {
		l.OffsetX = wideOffsetX
	} else {
		l.CameraY = narrowCameraY
	}
	return l
}

// InDragRegion reports whether a pointer-down at (x, y) may start a drag
func (l Layout) InDragRegion(x, y float64) bool {
	if l.Wide {
		return x < l.DragRegion
	}
	return y < l.TouchBand
}

// Entrance is the eased state of an item's entrance animation
type Entrance struct {
	Progress float64 // eased, in [0, 1]
	OffsetY  float64
	Spin     float64 // radians about Y, shrinking to zero
	Scale    float64
}

// EntranceAt computes the entrance of an eased progress value
func EntranceAt(eased float64) Entrance {
	rest := 1 - eased
	return Entrance{
		Progress: eased,
		OffsetY:  -6 * rest,
		Spin:     1.5 * math.Pi * rest,
		Scale:    0.2 + 0.8*eased,
	}
}

// Placement is the steady-state transform of an item at a given effective angle
type Placement struct {
	Position   geometry.Vector3
	Scale      float64
	ModelScale float64
	Opacity    float64
	// Front ranks how close the item is to the front; the highest wins
	Front float64
}

// Place computes the placement of an item whose effective angle is angle
func (l Layout) Place(angle float64, e Entrance) Placement {
	if l.Wide {
		return l.placeWide(angle, e)
	}
	return l.placeNarrow(angle, e)
}

func (l Layout) placeWide(angle float64, e Entrance) Placement {
	x := l.OffsetX + math.Sin(angle)*wideRadiusX
	z := math.Cos(angle) * wideRadiusZ
	depth := (z + wideRadiusZ) / (2 * wideRadiusZ)

	return Placement{
		Position:   geometry.NewVector3(x, e.OffsetY, z),
		Scale:      (1 + 0.05*z) * e.Scale,
		ModelScale: 1.5 + 0.5*depth,
		Opacity:    math.Max(0.15, depth*depth) * e.Progress,
		Front:      z,
	}
}

func (l Layout) placeNarrow(angle float64, e Entrance) Placement {
	n := math.Remainder(angle, 2*math.Pi)
	dist := math.Abs(n) / math.Pi
	z := -2.0
	if math.Abs(n) < frontBand {
		z = 0
	}

	return Placement{
		Position:   geometry.NewVector3(n*narrowSlide/math.Pi, e.OffsetY, z),
		Scale:      0.8 * (1 - 0.3*dist) * e.Scale,
		ModelScale: (1.5 + 0.5*(1-dist)) * e.Progress,
		Opacity:    math.Max(0, 1-1.5*dist) * e.Progress,
		Front:      -math.Abs(n),
	}
}
