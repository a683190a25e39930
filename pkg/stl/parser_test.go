package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cubeCorner = `solid corner
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 2 0 0
      vertex 0 2 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 2 0 0
      vertex 0 0 2
    endloop
  endfacet
endsolid corner
`

func TestParseASCII(t *testing.T) {
	model, err := Parse(strings.NewReader(cubeCorner))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if model.Name != "corner" {
		t.Errorf("Name = %q, want %q", model.Name, "corner")
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d, want 2", model.TriangleCount())
	}

	bbox := model.Bounds()
	if bbox.Min.X != 0 || bbox.Max.X != 2 || bbox.Max.Z != 2 {
		t.Errorf("unexpected bounds %+v", bbox)
	}
	if area := model.SurfaceArea(); math.Abs(area-4) > 1e-9 {
		t.Errorf("SurfaceArea = %v, want 4", area)
	}
}

func TestParseASCIIInvalidVertex(t *testing.T) {
	data := "solid bad\nfacet normal 0 0 1\nouter loop\nvertex 0 zero 0\n"
	if _, err := Parse(strings.NewReader(data)); err == nil {
		t.Error("expected error for malformed vertex")
	}
}

func writeBinary(t *testing.T, facets []binaryFacet) []byte {
	t.Helper()
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "logo")
	buf.Write(header)
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(facets))); err != nil {
		t.Fatal(err)
	}
	for _, f := range facets {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func TestParseBinary(t *testing.T) {
	data := writeBinary(t, []binaryFacet{
		{Normal: [3]float32{0, 0, 1}, V1: [3]float32{-1, -1, 0}, V2: [3]float32{1, -1, 0}, V3: [3]float32{0, 3, 0.5}},
	})

	model, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if model.Name != "logo" {
		t.Errorf("Name = %q, want %q", model.Name, "logo")
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("TriangleCount = %d, want 1", model.TriangleCount())
	}

	size := model.Bounds().Size()
	if size.X != 2 || size.Y != 4 || size.Z != 0.5 {
		t.Errorf("Size = %v, want (2, 4, 0.5)", size)
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	data := writeBinary(t, []binaryFacet{{}, {}})
	if _, err := Parse(bytes.NewReader(data[:len(data)-10])); err == nil {
		t.Error("expected error for truncated file")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(bytes.NewReader(nil)); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corner.stl")
	if err := os.WriteFile(path, []byte(cubeCorner), 0o644); err != nil {
		t.Fatal(err)
	}

	model, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if model.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", model.TriangleCount())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Error("expected error for missing file")
	}
}
