package geometry

// Transform is a uniform scale, then a rotation, then a translation
type Transform struct {
	Translation Vector3
	Rotation    Quaternion
	Scale       float64
}

// Apply maps a local point to world space
func (t Transform) Apply(v Vector3) Vector3 {
	return t.Translation.Add(t.Rotation.Rotate(v.Mul(t.Scale)))
}

// ApplyDirection rotates a direction without scaling or translating it
func (t Transform) ApplyDirection(v Vector3) Vector3 {
	return t.Rotation.Rotate(v)
}
