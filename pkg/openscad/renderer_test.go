package openscad

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "logo.scad"), "use <lib/shapes.scad>\n// include <ignored.scad>\ninclude <./common.scad>\nshape();\n")
	writeFile(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../common.scad>\nmodule shape() { cube(1); }\n")
	writeFile(t, filepath.Join(dir, "common.scad"), "$fn = 64;\n")

	r := NewRenderer(dir)
	deps, err := r.ResolveDependencies("logo.scad")
	if err != nil {
		t.Fatalf("ResolveDependencies failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "logo.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "common.scad"),
	}
	if len(deps) != len(want) {
		t.Fatalf("deps = %v, want %v", deps, want)
	}
	for i := range want {
		if deps[i] != want[i] {
			t.Errorf("deps[%d] = %s, want %s", i, deps[i], want[i])
		}
	}
}

func TestResolveDependenciesMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "logo.scad"), "use <missing.scad>\n")

	if _, err := NewRenderer(dir).ResolveDependencies("logo.scad"); err == nil {
		t.Error("expected error for missing dependency")
	}
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.binary = "openscad-not-installed-here"

	if r.Available() {
		t.Fatal("fake binary should not be found")
	}
	if err := r.RenderToSTL(context.Background(), "logo.scad", "logo.stl"); err == nil {
		t.Error("expected error when openscad is missing")
	}
}
