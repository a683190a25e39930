package carousel

import (
	"context"
	"image/color"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

// Entry is the display payload the engine needs for one item
type Entry struct {
	AssetRef string
	Color    color.RGBA
}

// Asset is a loaded visual resource
type Asset interface {
	Bounds() geometry.BoundingBox
}

// Loader fetches the asset behind a reference. It is called from a worker goroutine.
type Loader interface {
	Load(ctx context.Context, ref string) (Asset, error)
}

// LoaderFunc adapts a function to the Loader interface
type LoaderFunc func(ctx context.Context, ref string) (Asset, error)

// Load calls f(ctx, ref)
func (f LoaderFunc) Load(ctx context.Context, ref string) (Asset, error) {
	return f(ctx, ref)
}

// AssetState tracks an item's asset load
type AssetState int

const (
	// AssetNone means the item has no asset reference and always shows its placeholder
	AssetNone AssetState = iota
	AssetPending
	AssetReady
	AssetFailed
)

func (s AssetState) String() string {
	switch s {
	case AssetNone:
		return "none"
	case AssetPending:
		return "pending"
	case AssetReady:
		return "ready"
	case AssetFailed:
		return "failed"
	}
	return "unknown"
}

// VisualState is the per-frame transform of an item, owned by the engine
type VisualState struct {
	Position      geometry.Vector3 // group position
	ModelPosition geometry.Vector3 // where the model sits inside the group, in world space
	Scale         float64
	ModelScale    float64
	Opacity       float64
	Orientation   geometry.Quaternion
	Spin          float64 // entrance spin about Y, zero once the entrance is over
	Entrance      float64 // eased entrance progress
}

// Item is one carousel entry
type Item struct {
	Index     int
	BaseAngle float64
	Entry     Entry
	Visual    VisualState

	state     AssetState
	asset     Asset
	fitScale  float64
	fitOffset geometry.Vector3
}

// AssetState returns the load state
func (it *Item) AssetState() AssetState {
	return it.state
}

// Asset returns the loaded asset, or nil while the placeholder is shown
func (it *Item) Asset() Asset {
	return it.asset
}

// Placeholder reports whether the item is drawn with its placeholder visual
func (it *Item) Placeholder() bool {
	return it.state != AssetReady
}

// Fit returns the scale and centring offset that bring the loaded asset to the target size
func (it *Item) Fit() (float64, geometry.Vector3) {
	return it.fitScale, it.fitOffset
}

// setAsset swaps the placeholder for a loaded asset; it only succeeds once
func (it *Item) setAsset(a Asset, targetSize float64) bool {
	if it.state != AssetPending {
		return false
	}
	it.state = AssetReady
	it.asset = a
	it.fitScale, it.fitOffset = a.Bounds().Fit(targetSize)
	return true
}

func (it *Item) fail() bool {
	if it.state != AssetPending {
		return false
	}
	it.state = AssetFailed
	return true
}

// Placeholder torus knot dimensions in model units
const (
	PlaceholderRadius = 0.35
	PlaceholderTube   = 0.12
)

// ModelTransform maps model-local coordinates to world space. For a loaded asset
// the fit scale and centring offset are folded in, so the asset's own vertices can be used.
func (it *Item) ModelTransform() geometry.Transform {
	v := it.Visual
	rot := geometry.QuaternionFromAxisAngle(geometry.NewVector3(0, 1, 0), v.Spin).Mul(v.Orientation)
	s := v.ModelScale * v.Scale

	if it.state != AssetReady {
		return geometry.Transform{Translation: v.ModelPosition, Rotation: rot, Scale: s}
	}
	return geometry.Transform{
		Translation: v.ModelPosition.Add(rot.Rotate(it.fitOffset.Mul(s))),
		Rotation:    rot,
		Scale:       it.fitScale * s,
	}
}
