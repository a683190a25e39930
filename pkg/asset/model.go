// Package asset loads the 3D logos shown by the carousel from STL, glTF/GLB
// and OpenSCAD files.
package asset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gofolio/pkg/geometry"
	"github.com/philipparndt/gofolio/pkg/stl"
)

// Format identifies a supported asset file type
type Format string

const (
	FormatSTL  Format = "stl"
	FormatGLTF Format = "gltf"
	FormatGLB  Format = "glb"
	FormatSCAD Format = "scad"
)

// FormatOf returns the format implied by the file extension
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatSTL, FormatGLTF, FormatGLB, FormatSCAD:
		return Format(ext), nil
	}
	return "", fmt.Errorf("unsupported asset format %q", filepath.Ext(path))
}

// Model is a loaded asset
type Model struct {
	Ref       string
	Path      string
	Format    Format
	Triangles int
	// Mesh is set for STL and OpenSCAD sources
	Mesh *stl.Model

	bounds geometry.BoundingBox
}

// Bounds returns the axis-aligned bounds of the geometry
func (m *Model) Bounds() geometry.BoundingBox {
	return m.bounds
}

func newMeshModel(ref, path string, format Format, mesh *stl.Model) *Model {
	return &Model{
		Ref:       ref,
		Path:      path,
		Format:    format,
		Triangles: mesh.TriangleCount(),
		Mesh:      mesh,
		bounds:    mesh.Bounds(),
	}
}
