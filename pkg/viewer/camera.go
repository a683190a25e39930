package viewer

import (
	"math"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

// Camera represents a perspective camera looking at the carousel
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in radians
	Width    float64
	Height   float64
}

// NewCarouselCamera places the camera at (0, y, distance) looking straight down -Z
func NewCarouselCamera(y, distance float64) *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, y, distance),
		Target:   geometry.NewVector3(0, y, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Width:    1,
		Height:   1,
	}
}

// Resize sets the viewport size used for projection; sizes below 1 are clamped
func (c *Camera) Resize(width, height float64) {
	c.Width = math.Max(1, width)
	c.Height = math.Max(1, height)
}

// Aspect returns width / height of the viewport
func (c *Camera) Aspect() float64 {
	return c.Width / c.Height
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to 2D screen coordinates, returning the view depth as third value
func (c *Camera) Project(point geometry.Vector3) (float64, float64, float64) {
	forward, right, up := c.basis()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*c.Aspect()))*(c.Width/2) + (c.Width / 2)
	screenY := (-y/(z*fovScale))*(c.Height/2) + (c.Height / 2)

	return screenX, screenY, z
}

// Unproject converts 2D screen coordinates back to a 3D ray
func (c *Camera) Unproject(screenX, screenY float64) geometry.Ray {
	// Convert screen coordinates to normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / c.Width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / c.Height)

	fovScale := math.Tan(c.FOV / 2)
	forward, right, up := c.basis()

	// Calculate direction in world space
	dir := forward.Add(right.Mul(ndcX * fovScale * c.Aspect())).Add(up.Mul(ndcY * fovScale))

	return geometry.Ray{Origin: c.Position, Direction: dir.Normalize()}
}
