package geometry

import "math"

// Ray is a half line starting at Origin
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneZ returns the point where the ray's line crosses the plane z = const.
// It reports false when the ray runs parallel to the plane.
func (r Ray) IntersectPlaneZ(z float64) (Vector3, bool) {
	if math.Abs(r.Direction.Z) < 1e-9 {
		return Vector3{}, false
	}
	t := (z - r.Origin.Z) / r.Direction.Z
	return r.At(t), true
}
