package viewer

import (
	"image/color"
	"math"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

// light is the direction towards the key light, matching a light at (5, 5, 5)
var light = geometry.NewVector3(1, 1, 1).Normalize()

// DrawMesh projects and fills triangles placed by xf, flat shaded by their facing towards the light
func DrawMesh(f *Frame, cam *Camera, tris []geometry.Triangle, xf geometry.Transform, base color.RGBA, alpha float64) int {
	if alpha <= 0 {
		return 0
	}

	drawn := 0
	for _, tri := range tris {
		v1, v2, v3 := xf.Apply(tri.V1), xf.Apply(tri.V2), xf.Apply(tri.V3)

		normal := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
		if normal.Dot(cam.Position.Sub(v1)) <= 0 {
			continue // back face
		}

		a, b, c := project(cam, v1), project(cam, v2), project(cam, v3)
		if a.Z <= 0.01 || b.Z <= 0.01 || c.Z <= 0.01 {
			continue
		}

		f.FillTriangle(a, b, c, Shade(base, normal), alpha)
		drawn++
	}
	return drawn
}

func project(cam *Camera, p geometry.Vector3) ScreenPoint {
	x, y, z := cam.Project(p)
	return ScreenPoint{X: x, Y: y, Z: z}
}

// Shade darkens base by the angle between the face normal and the light, keeping an ambient floor
func Shade(base color.RGBA, normal geometry.Vector3) color.RGBA {
	k := 0.35 + 0.65*math.Max(0, normal.Dot(light))
	return color.RGBA{
		R: uint8(math.Round(float64(base.R) * k)),
		G: uint8(math.Round(float64(base.G) * k)),
		B: uint8(math.Round(float64(base.B) * k)),
		A: 0xFF,
	}
}
