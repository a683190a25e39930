package asset

import (
	"fmt"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

// Stats summarises an asset for the info command
type Stats struct {
	Format        Format
	Triangles     int
	Bounds        geometry.BoundingBox
	Dimensions    geometry.Vector3
	FitScale      float64
	SurfaceArea   float64 // mesh formats only
	MinEdgeLength float64 // mesh formats only
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Summarize measures m, fitting it to targetSize the way the carousel does
func Summarize(m *Model, targetSize float64) Stats {
	s := Stats{
		Format:     m.Format,
		Triangles:  m.Triangles,
		Bounds:     m.Bounds(),
		Dimensions: m.Bounds().Size(),
	}
	s.FitScale, _ = s.Bounds.Fit(targetSize)

	if m.Mesh == nil || len(m.Mesh.Triangles) == 0 {
		return s
	}

	s.SurfaceArea = m.Mesh.SurfaceArea()
	s.MinEdgeLength, s.MaxEdgeLength, s.AvgEdgeLength = m.Mesh.EdgeLengths()

	return s
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
