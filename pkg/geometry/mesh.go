package geometry

import "math"

// TorusKnot builds a (p, q) torus knot tube mesh centred on the origin.
// radius is the distance of the knot curve from the centre and tube the tube radius.
func TorusKnot(radius, tube float64, segments, sides, p, q int) []Triangle {
	segments = max(segments, 3)
	sides = max(sides, 3)

	curve := func(u float64) Vector3 {
		qu := float64(q) / float64(p) * u
		r := radius * (2 + math.Cos(qu)) * 0.5
		return NewVector3(r*math.Cos(u), r*math.Sin(u), radius*math.Sin(qu)*0.5)
	}

	rings := make([][]Vector3, segments)
	for i := 0; i < segments; i++ {
		u := float64(i) / float64(segments) * float64(p) * 2 * math.Pi
		p1 := curve(u)
		p2 := curve(u + 0.01)

		tangent := p2.Sub(p1)
		normal := p2.Add(p1)
		binormal := tangent.Cross(normal).Normalize()
		normal = binormal.Cross(tangent).Normalize()

		ring := make([]Vector3, sides)
		for j := 0; j < sides; j++ {
			v := float64(j) / float64(sides) * 2 * math.Pi
			cx := -tube * math.Cos(v)
			cy := tube * math.Sin(v)
			ring[j] = p1.Add(normal.Mul(cx)).Add(binormal.Mul(cy))
		}
		rings[i] = ring
	}

	tris := make([]Triangle, 0, segments*sides*2)
	for i := 0; i < segments; i++ {
		a, b := rings[i], rings[(i+1)%segments]
		for j := 0; j < sides; j++ {
			k := (j + 1) % sides
			t1 := Triangle{V1: a[j], V2: b[j], V3: a[k]}
			t1.Normal = t1.CalculateNormal()
			t2 := Triangle{V1: b[j], V2: b[k], V3: a[k]}
			t2.Normal = t2.CalculateNormal()
			tris = append(tris, t1, t2)
		}
	}
	return tris
}

// boxFaces lists the corner indices of each box face, counter-clockwise seen from outside.
// Corner i has x from bit 0, y from bit 1 and z from bit 2.
var boxFaces = [6][4]int{
	{1, 3, 7, 5}, {0, 4, 6, 2},
	{2, 6, 7, 3}, {0, 1, 5, 4},
	{4, 5, 7, 6}, {0, 2, 3, 1},
}

// Box builds the 12 triangles of an axis-aligned box covering b
func Box(b BoundingBox) []Triangle {
	if b.Empty() {
		return nil
	}
	var corners [8]Vector3
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		corners[i] = c
	}

	tris := make([]Triangle, 0, 12)
	for _, f := range boxFaces {
		t1 := Triangle{V1: corners[f[0]], V2: corners[f[1]], V3: corners[f[2]]}
		t1.Normal = t1.CalculateNormal()
		t2 := Triangle{V1: corners[f[0]], V2: corners[f[2]], V3: corners[f[3]]}
		t2.Normal = t2.CalculateNormal()
		tris = append(tris, t1, t2)
	}
	return tris
}
