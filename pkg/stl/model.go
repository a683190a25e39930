package stl

import (
	"math"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

// Model is a parsed STL mesh. Bounds grow with every facet added.
type Model struct {
	Name      string
	Triangles []geometry.Triangle

	bounds geometry.BoundingBox
}

// NewModel creates an empty mesh
func NewModel(name string) *Model {
	return &Model{Name: name, bounds: geometry.NewBoundingBox()}
}

// AddFacet appends a facet. Exporters often write a zero normal; it is then
// derived from the winding order.
func (m *Model) AddFacet(normal, v1, v2, v3 geometry.Vector3) {
	t := geometry.NewTriangle(normal, v1, v2, v3)
	if normal == (geometry.Vector3{}) {
		t.Normal = t.CalculateNormal()
	}
	m.Triangles = append(m.Triangles, t)
	m.bounds.Extend(v1)
	m.bounds.Extend(v2)
	m.bounds.Extend(v3)
}

// TriangleCount returns the number of facets
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the box around every vertex; empty for a mesh without facets
func (m *Model) Bounds() geometry.BoundingBox {
	return m.bounds
}

// SurfaceArea sums the facet areas
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// EdgeLengths returns the shortest, longest and mean facet edge; all zero without facets
func (m *Model) EdgeLengths() (shortest, longest, mean float64) {
	if len(m.Triangles) == 0 {
		return 0, 0, 0
	}
	shortest = math.MaxFloat64
	total := 0.0
	for _, t := range m.Triangles {
		for _, l := range [3]float64{t.V1.Distance(t.V2), t.V2.Distance(t.V3), t.V3.Distance(t.V1)} {
			shortest = math.Min(shortest, l)
			longest = math.Max(longest, l)
			total += l
		}
	}
	return shortest, longest, total / float64(3*len(m.Triangles))
}
