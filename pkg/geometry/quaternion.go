package geometry

import "math"

// Quaternion represents a rotation (x, y, z, w)
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the rotation that leaves vectors unchanged
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle builds a rotation of angle radians about axis
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	axis = axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: math.Cos(angle / 2)}
}

// QuaternionFromEuler converts Euler XYZ angles (radians) to a quaternion
func QuaternionFromEuler(rx, ry, rz float64) Quaternion {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quaternion{
		X: sx*cy*cz + cx*sy*sz,
		Y: cx*sy*cz - sx*cy*sz,
		Z: cx*cy*sz + sx*sy*cz,
		W: cx*cy*cz - sx*sy*sz,
	}
}

// LookRotation returns the rotation that points the local +Z axis along forward.
// The second result is false when forward is degenerate.
func LookRotation(forward, up Vector3) (Quaternion, bool) {
	z := forward.Normalize()
	if z.Length() == 0 {
		return IdentityQuaternion(), false
	}
	x := up.Cross(z)
	if x.Length() < 1e-9 {
		// up is parallel to forward, nudge it
		up = up.Add(Vector3{Z: 1e-4})
		x = up.Cross(z)
		if x.Length() < 1e-9 {
			up = up.Add(Vector3{X: 1e-4})
			x = up.Cross(z)
		}
	}
	x = x.Normalize()
	y := z.Cross(x)

	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	var q Quaternion
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1.0)
		q = Quaternion{W: 0.25 / s, X: (m21 - m12) * s, Y: (m02 - m20) * s, Z: (m10 - m01) * s}
	case m00 > m11 && m00 > m22:
		s := 2.0 * math.Sqrt(1.0+m00-m11-m22)
		q = Quaternion{W: (m21 - m12) / s, X: 0.25 * s, Y: (m01 + m10) / s, Z: (m02 + m20) / s}
	case m11 > m22:
		s := 2.0 * math.Sqrt(1.0+m11-m00-m22)
		q = Quaternion{W: (m02 - m20) / s, X: (m01 + m10) / s, Y: 0.25 * s, Z: (m12 + m21) / s}
	default:
		s := 2.0 * math.Sqrt(1.0+m22-m00-m11)
		q = Quaternion{W: (m10 - m01) / s, X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: 0.25 * s}
	}
	return q.Normalize(), true
}

// Mul returns the Hamilton product q*other (other is applied first)
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Dot returns the 4D dot product
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the norm of the quaternion
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns a unit quaternion, or identity for a zero quaternion
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l < 1e-12 {
		return IdentityQuaternion()
	}
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Slerp interpolates spherically from q towards other by t along the shortest arc
func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return other
	}

	cosHalf := q.Dot(other)
	if cosHalf < 0 {
		other = Quaternion{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		cosHalf = -cosHalf
	}
	if cosHalf >= 1.0 {
		return q
	}

	sqrSin := 1.0 - cosHalf*cosHalf
	if sqrSin <= 1e-12 {
		s := 1 - t
		return Quaternion{
			X: s*q.X + t*other.X,
			Y: s*q.Y + t*other.Y,
			Z: s*q.Z + t*other.Z,
			W: s*q.W + t*other.W,
		}.Normalize()
	}

	sinHalf := math.Sqrt(sqrSin)
	half := math.Atan2(sinHalf, cosHalf)
	ra := math.Sin((1-t)*half) / sinHalf
	rb := math.Sin(t*half) / sinHalf

	return Quaternion{
		X: q.X*ra + other.X*rb,
		Y: q.Y*ra + other.Y*rb,
		Z: q.Z*ra + other.Z*rb,
		W: q.W*ra + other.W*rb,
	}
}

// Rotate applies the rotation to a vector
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// AxisAngle decomposes the rotation into an axis and an angle in radians
func (q Quaternion) AxisAngle() (Vector3, float64) {
	q = q.Normalize()
	w := math.Max(-1, math.Min(1, q.W))
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < 1e-9 {
		return Vector3{X: 1}, 0
	}
	return Vector3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}, angle
}

// Angle returns the smallest rotation angle between q and other
func (q Quaternion) Angle(other Quaternion) float64 {
	d := math.Abs(q.Normalize().Dot(other.Normalize()))
	return 2 * math.Acos(math.Min(1, d))
}
