package asset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/openscad"
	"github.com/philipparndt/gofolio/pkg/stl"
)

// FileLoader resolves asset references against Root and loads them from disk
type FileLoader struct {
	Root string
	// Renderer converts .scad references; without it they fail to load
	Renderer *openscad.Renderer
}

// NewFileLoader creates a loader for assets below root
func NewFileLoader(root string) *FileLoader {
	return &FileLoader{Root: root, Renderer: openscad.NewRenderer(root)}
}

// Resolve returns the file path behind ref
func (l *FileLoader) Resolve(ref string) string {
	if filepath.IsAbs(ref) || l.Root == "" {
		return ref
	}
	return filepath.Join(l.Root, filepath.FromSlash(ref))
}

// Load implements carousel.Loader
func (l *FileLoader) Load(ctx context.Context, ref string) (carousel.Asset, error) {
	m, err := l.LoadModel(ctx, ref)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LoadModel loads the asset behind ref
func (l *FileLoader) LoadModel(ctx context.Context, ref string) (*Model, error) {
	path := l.Resolve(ref)
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case FormatSTL:
		mesh, err := stl.Load(path)
		if err != nil {
			return nil, err
		}
		return newMeshModel(ref, path, format, mesh), nil
	case FormatSCAD:
		return l.loadSCAD(ctx, ref, path)
	default:
		return loadGLTF(ref, path, format)
	}
}

func (l *FileLoader) loadSCAD(ctx context.Context, ref, path string) (*Model, error) {
	if l.Renderer == nil {
		return nil, fmt.Errorf("no OpenSCAD renderer configured for %s", ref)
	}

	tmp, err := os.CreateTemp("", "gofolio-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := l.Renderer.RenderToSTL(ctx, path, tmp.Name()); err != nil {
		return nil, err
	}

	mesh, err := stl.Load(tmp.Name())
	if err != nil {
		return nil, err
	}
	return newMeshModel(ref, path, FormatSCAD, mesh), nil
}

// Dependencies lists the files whose change should reload ref
func (l *FileLoader) Dependencies(ref string) []string {
	path := l.Resolve(ref)
	if format, err := FormatOf(path); err == nil && format == FormatSCAD && l.Renderer != nil {
		if deps, err := l.Renderer.ResolveDependencies(path); err == nil {
			return deps
		}
	}
	return []string{path}
}
