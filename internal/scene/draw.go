package scene

import (
	"image"
	"slices"
	"sync"
	"time"

	"github.com/philipparndt/gofolio/pkg/asset"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/geometry"
	"github.com/philipparndt/gofolio/pkg/pattern"
	"github.com/philipparndt/gofolio/pkg/viewer"
)

// Placeholder knot tessellation
const (
	KnotSegments = 100
	KnotSides    = 16
	KnotP        = 2
	KnotQ        = 3
)

var knot = sync.OnceValue(func() []geometry.Triangle {
	return geometry.TorusKnot(carousel.PlaceholderRadius, carousel.PlaceholderTube, KnotSegments, KnotSides, KnotP, KnotQ)
})

// Knot returns the placeholder mesh shared by every item
func Knot() []geometry.Triangle {
	return knot()
}

// Mesh returns the triangles drawn for it in model space: the knot while the placeholder
// is shown, the asset mesh once loaded, or its bounds for assets without a mesh
func Mesh(it *carousel.Item) []geometry.Triangle {
	if it.Placeholder() {
		return knot()
	}
	a := it.Asset()
	if m, ok := a.(*asset.Model); ok && m.Mesh != nil {
		return m.Mesh.Triangles
	}
	return geometry.Box(a.Bounds())
}

// Draw renders the carousel items into f, farthest first, and returns the triangle count
func Draw(f *viewer.Frame, e *carousel.Engine) int {
	w, h := f.Size()
	cam := *e.Camera()
	cam.Resize(float64(w), float64(h))

	items := slices.Clone(e.Items())
	slices.SortStableFunc(items, func(a, b *carousel.Item) int {
		da := a.Visual.ModelPosition.Distance(cam.Position)
		db := b.Visual.ModelPosition.Distance(cam.Position)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})

	drawn := 0
	for _, it := range items {
		if it.Visual.Opacity <= 0 || it.Visual.Scale <= 0 {
			continue
		}
		drawn += viewer.DrawMesh(f, &cam, Mesh(it), it.ModelTransform(), it.Entry.Color, it.Visual.Opacity)
	}
	return drawn
}

// Compose draws the marquee background at elapsed and the carousel on top
func Compose(e *carousel.Engine, layer pattern.Layer, elapsed time.Duration, width, height int) image.Image {
	opts := pattern.DefaultImageOptions()
	opts.Width, opts.Height = width, height

	f := viewer.NewFrame(width, height)
	f.Backdrop(pattern.RenderImage(layer, elapsed, opts))
	Draw(f, e)
	return f.Image()
}
