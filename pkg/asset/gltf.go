package asset

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/philipparndt/gofolio/pkg/geometry"
)

// loadGLTF reads a .gltf or .glb document and derives bounds from the POSITION
// accessors' min/max. Node transforms are not applied.
func loadGLTF(ref, path string, format Format) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", ref, err)
	}

	bounds := geometry.NewBoundingBox()
	triangles := 0
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			idx, ok := prim.Attributes[gltf.POSITION]
			if !ok || int(idx) >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			if len(acc.Min) < 3 || len(acc.Max) < 3 {
				return nil, fmt.Errorf("%s: POSITION accessor %d has no min/max", ref, idx)
			}
			bounds.Extend(geometry.NewVector3(float64(acc.Min[0]), float64(acc.Min[1]), float64(acc.Min[2])))
			bounds.Extend(geometry.NewVector3(float64(acc.Max[0]), float64(acc.Max[1]), float64(acc.Max[2])))

			count := acc.Count
			if prim.Indices != nil && int(*prim.Indices) < len(doc.Accessors) {
				count = doc.Accessors[*prim.Indices].Count
			}
			triangles += int(count) / 3
		}
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("%s contains no mesh positions", ref)
	}

	return &Model{
		Ref:       ref,
		Path:      path,
		Format:    format,
		Triangles: triangles,
		bounds:    bounds,
	}, nil
}
