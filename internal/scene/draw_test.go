package scene

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/geometry"
	"github.com/philipparndt/gofolio/pkg/pattern"
	"github.com/philipparndt/gofolio/pkg/viewer"
)

type boxAsset struct{ b geometry.BoundingBox }

func (a boxAsset) Bounds() geometry.BoundingBox { return a.b }

func settledEngine(t *testing.T, loader carousel.Loader) (*carousel.Engine, *carousel.FakeClock) {
	t.Helper()
	clock := carousel.NewFakeClock(time.Unix(0, 0))
	entries := []carousel.Entry{
		{AssetRef: "a", Color: color.RGBA{R: 200, A: 255}},
		{Color: color.RGBA{G: 200, A: 255}},
		{Color: color.RGBA{B: 200, A: 255}},
	}
	opts := []carousel.Option{carousel.WithClock(clock), carousel.WithLogger(discard{})}
	if loader != nil {
		opts = append(opts, carousel.WithLoader(loader))
	}
	e := carousel.New(entries, opts...)
	t.Cleanup(e.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	select {
	case <-e.AssetsSettled():
	case <-ctx.Done():
		t.Fatal("loads did not settle")
	}

	// well past every staggered entrance
	for i := 0; i < 10; i++ {
		clock.Advance(500 * time.Millisecond)
		e.Update(clock.Now())
	}
	return e, clock
}

func TestMeshPlaceholderIsKnot(t *testing.T) {
	e, _ := settledEngine(t, nil)
	assert.Len(t, Mesh(e.Item(1)), KnotSegments*KnotSides*2)
}

func TestMeshFallsBackToBounds(t *testing.T) {
	b := geometry.BoundingBox{Min: geometry.NewVector3(0, 0, 0), Max: geometry.NewVector3(2, 1, 1)}
	loader := carousel.LoaderFunc(func(context.Context, string) (carousel.Asset, error) {
		return boxAsset{b}, nil
	})
	e, _ := settledEngine(t, loader)

	require.False(t, e.Item(0).Placeholder())
	assert.Len(t, Mesh(e.Item(0)), 12)
}

func TestDrawRendersItems(t *testing.T) {
	e, _ := settledEngine(t, nil)

	f := viewer.NewFrame(320, 180)
	drawn := Draw(f, e)
	assert.Positive(t, drawn)

	// the frame starts transparent black
	img := f.Image()
	changed := false
	for y := 0; y < 180 && !changed; y++ {
		for x := 0; x < 320; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{}) {
				changed = true
				break
			}
		}
	}
	assert.True(t, changed)
}

func TestComposeMatchesRequestedSize(t *testing.T) {
	e, _ := settledEngine(t, nil)
	layer := pattern.Layer{}

	img := Compose(e, layer, time.Second, 200, 100)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}
