package openscad

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// Binary is the OpenSCAD executable looked up in PATH
const Binary = "openscad"

// dependencyRegex matches use <file.scad> and include <file.scad>; commented lines never match
var dependencyRegex = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer turns OpenSCAD sources into STL meshes for logo assets
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a new OpenSCAD renderer resolving relative paths against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  Binary,
	}
}

// Available reports whether the OpenSCAD executable can be found
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// RenderToSTL renders an OpenSCAD file to STL format. The process is killed when ctx is cancelled.
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if !r.Available() {
		return fmt.Errorf("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")
	}

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("render %s: %w", scadFile, ctx.Err())
		}
		if msg := strings.TrimSpace(output.String()); msg != "" {
			return fmt.Errorf("render %s: %w: %s", scadFile, err, msg)
		}
		return fmt.Errorf("render %s: %w", scadFile, err)
	}

	return nil
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// ResolveDependencies returns the absolute paths of scadFile and every file it pulls in
// through use or include statements, in discovery order
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	var deps []string
	seen := make(map[string]bool)

	queue := []string{r.abs(scadFile)}
	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]
		if seen[file] {
			continue
		}
		seen[file] = true
		deps = append(deps, file)

		refs, err := r.parseDependencies(file)
		if err != nil {
			return nil, err
		}
		queue = append(queue, refs...)
	}

	return deps, nil
}

func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	dir := filepath.Dir(scadFile)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := dependencyRegex.FindStringSubmatch(scanner.Text()); m != nil {
			deps = append(deps, r.resolveDepPath(m[1], dir))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}

	return deps, nil
}

// resolveDepPath prefers the including file's directory and falls back to the work directory
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	local := filepath.Join(currentDir, depPath)
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return local
	}
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return filepath.Join(r.workDir, depPath)
}
