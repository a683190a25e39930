package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

func TestProjectCenter(t *testing.T) {
	c := NewCarouselCamera(0, 12)
	c.Resize(800, 600)

	x, y, depth := c.Project(geometry.NewVector3(0, 0, 0))
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("Project(origin) = (%v, %v), want (400, 300)", x, y)
	}
	if math.Abs(depth-12) > 1e-9 {
		t.Errorf("depth = %v, want 12", depth)
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	c := NewCarouselCamera(-2.2, 12)
	c.Resize(1280, 720)

	points := []geometry.Vector3{
		geometry.NewVector3(1, 2, 0),
		geometry.NewVector3(-3, -1, 2),
		geometry.NewVector3(0.5, -2.2, -3),
	}

	for _, p := range points {
		sx, sy, _ := c.Project(p)
		ray := c.Unproject(sx, sy)
		hit, ok := ray.IntersectPlaneZ(p.Z)
		if !ok {
			t.Fatalf("ray through %v is parallel to its plane", p)
		}
		if hit.Distance(p) > 1e-6 {
			t.Errorf("round trip of %v = %v", p, hit)
		}
	}
}

func TestResizeClamps(t *testing.T) {
	c := NewCarouselCamera(0, 12)
	c.Resize(0, -5)

	if c.Width != 1 || c.Height != 1 {
		t.Errorf("Resize(0, -5) gave %vx%v, want 1x1", c.Width, c.Height)
	}
}

