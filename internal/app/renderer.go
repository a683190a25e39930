package app

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/asset"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/geometry"
	"github.com/philipparndt/gofolio/pkg/viewer"
)

// trianglesToRaylibMesh converts triangles to a Raylib mesh with lighting baked into the vertex colours
func trianglesToRaylibMesh(tris []geometry.Triangle, base color.RGBA) rl.Mesh {
	triangleCount := len(tris)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	idx := 0
	for _, triangle := range tris {
		normal := triangle.CalculateNormal()
		lit := viewer.Shade(base, normal)

		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = lit.R
			colors[idx*4+1] = lit.G
			colors[idx*4+2] = lit.B
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// buildItemModel creates the GPU model for the item's current asset state (must be called on main thread)
func buildItemModel(it *carousel.Item) (rl.Model, error) {
	if !it.Placeholder() {
		if m, ok := it.Asset().(*asset.Model); ok && m.Mesh == nil {
			// glTF sources are loaded by raylib itself
			model := rl.LoadModel(m.Path)
			if model.MeshCount == 0 {
				return rl.Model{}, fmt.Errorf("raylib could not load %s", m.Path)
			}
			return model, nil
		}
	}
	return rl.LoadModelFromMesh(trianglesToRaylibMesh(scene.Mesh(it), it.Entry.Color)), nil
}

// syncItemModels rebuilds models whose asset finished loading since the last frame
func (app *App) syncItemModels() {
	items := app.Carousel.engine.Items()
	if len(app.Carousel.models) != len(items) {
		app.unloadItemModels()
		app.Carousel.models = make([]ItemModel, len(items))
	}

	for i, it := range items {
		m := &app.Carousel.models[i]
		if m.uploaded && m.state == it.AssetState() {
			continue
		}
		model, err := buildItemModel(it)
		if err != nil {
			fmt.Printf("Warning: %v, keeping placeholder\n", err)
			if m.uploaded {
				m.state = it.AssetState()
				continue
			}
			model = rl.LoadModelFromMesh(trianglesToRaylibMesh(scene.Knot(), it.Entry.Color))
		}
		if m.uploaded {
			rl.UnloadModel(m.model)
		}
		m.model = model
		m.uploaded = true
		m.state = it.AssetState()
	}
}

func (app *App) unloadItemModels() {
	for _, m := range app.Carousel.models {
		if m.uploaded {
			rl.UnloadModel(m.model)
		}
	}
	app.Carousel.models = nil
}

// drawItems draws the items back to front so faded items blend over nearer ones correctly
func (app *App) drawItems(camera rl.Camera3D) {
	items := app.Carousel.engine.Items()
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	eye := geometry.NewVector3(float64(camera.Position.X), float64(camera.Position.Y), float64(camera.Position.Z))
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(items[b].Visual.ModelPosition.Distance(eye), items[a].Visual.ModelPosition.Distance(eye))
	})

	for _, i := range order {
		it := items[i]
		m := app.Carousel.models[i]
		if !m.uploaded || it.Visual.Opacity <= 0 {
			continue
		}

		xf := it.ModelTransform()
		axis, angle := xf.Rotation.AxisAngle()
		alpha := uint8(math.Round(255 * math.Min(1, it.Visual.Opacity)))
		rl.DrawModelEx(
			m.model,
			vec3(xf.Translation),
			vec3(axis),
			float32(angle*180/math.Pi),
			rl.Vector3{X: float32(xf.Scale), Y: float32(xf.Scale), Z: float32(xf.Scale)},
			rl.NewColor(255, 255, 255, alpha),
		)
	}
}

func vec3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
