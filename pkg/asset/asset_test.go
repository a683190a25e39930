package asset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/geometry"
)

const triangleSTL = `solid tri
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 4 0 0
vertex 0 3 0
endloop
endfacet
endsolid tri
`

var _ carousel.Loader = (*FileLoader)(nil)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"logo.stl", FormatSTL, false},
		{"3DLogos/UBS3DLogo.GLB", FormatGLB, false},
		{"scene.gltf", FormatGLTF, false},
		{"shape.scad", FormatSCAD, false},
		{"image.png", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSTL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tri.stl"), []byte(triangleSTL), 0o644))

	l := NewFileLoader(dir)
	a, err := l.Load(context.Background(), "tri.stl")
	require.NoError(t, err)

	m := a.(*Model)
	assert.Equal(t, FormatSTL, m.Format)
	assert.Equal(t, 1, m.Triangles)
	assert.Equal(t, geometry.NewVector3(4, 3, 0), m.Bounds().Size())

	s := Summarize(m, 2)
	assert.InDelta(t, 0.5, s.FitScale, 1e-12)
	assert.InDelta(t, 6, s.SurfaceArea, 1e-12)
	assert.InDelta(t, 3, s.MinEdgeLength, 1e-12)
	assert.InDelta(t, 5, s.MaxEdgeLength, 1e-12)
	assert.InDelta(t, 4, s.AvgEdgeLength, 1e-12)
}

func TestLoadGLTF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.gltf")
	gltfJSON := `{
  "asset": {"version": "2.0"},
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"componentType": 5126, "count": 6, "type": "VEC3",
                 "min": [-1, -2, 0], "max": [3, 2, 0.5]}]
}`
	require.NoError(t, os.WriteFile(path, []byte(gltfJSON), 0o644))

	m, err := NewFileLoader(dir).LoadModel(context.Background(), "logo.gltf")
	require.NoError(t, err)

	assert.Equal(t, FormatGLTF, m.Format)
	assert.Equal(t, 2, m.Triangles)
	assert.Equal(t, geometry.NewVector3(4, 4, 0.5), m.Bounds().Size())
	assert.Nil(t, m.Mesh)
}

func TestLoadGLTFWithoutPositions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.gltf"), []byte(`{"asset": {"version": "2.0"}}`), 0o644))

	_, err := NewFileLoader(dir).LoadModel(context.Background(), "empty.gltf")
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	l := NewFileLoader(t.TempDir())

	_, err := l.Load(context.Background(), "missing.glb")
	assert.Error(t, err)

	_, err = l.Load(context.Background(), "logo.png")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Load(ctx, "logo.stl")
	assert.ErrorIs(t, err, context.Canceled)

	l.Renderer = nil
	_, err = l.Load(context.Background(), "shape.scad")
	assert.Error(t, err)
}

func TestDependencies(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.scad"), []byte("module m() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.scad"), []byte("use <lib.scad>\nm();\n"), 0o644))

	l := NewFileLoader(dir)
	assert.Equal(t, []string{filepath.Join(dir, "logo.scad"), filepath.Join(dir, "lib.scad")}, l.Dependencies("logo.scad"))
	assert.Equal(t, []string{filepath.Join(dir, "logo.glb")}, l.Dependencies("logo.glb"))
}

func TestEngineUsesFileLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tri.stl"), []byte(triangleSTL), 0o644))

	e := carousel.New([]carousel.Entry{{AssetRef: "tri.stl"}, {AssetRef: "missing.glb"}},
		carousel.WithLoader(NewFileLoader(dir)),
		carousel.WithLogger(discard{}))
	defer e.Close()

	<-e.AssetsSettled()
	e.Tick()

	assert.Equal(t, carousel.AssetReady, e.Item(0).AssetState())
	assert.Equal(t, carousel.AssetFailed, e.Item(1).AssetState())
	scale, _ := e.Item(0).Fit()
	assert.InDelta(t, 0.5, scale, 1e-12)
}

type discard struct{}

func (discard) Printf(string, ...any) {}
