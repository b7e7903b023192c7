// Package render draws an orbital.Scene with Ebitengine: vertices are transformed and lit on the CPU, triangles are sorted
// back to front, and the result is rasterized with ebiten.Image.DrawTriangles.
package render

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kvartborg/vector"
	"github.com/solarlune/orbital"
	"github.com/solarlune/orbital/colors"
)

// MaxTriangleCount is the maximum number of triangles drawn in a single DrawTriangles call; larger scenes are drawn in batches.
const MaxTriangleCount = 21845

// DebugInfo is a struct that holds debugging information for a Renderer's render pass. These values are reset when Renderer.Clear() is called.
type DebugInfo struct {
	FrameTime  time.Duration // Amount of CPU frame time spent transforming vertices and calling Image.DrawTriangles.
	DrawnTris  int           // Number of drawn triangles, excluding those hidden from backface culling or behind the camera
	TotalTris  int           // Total number of triangles
	DrawCalls  int           // Number of DrawTriangles calls
	DrawnParts int           // Number of drawn Models
	TotalParts int           // Total number of Models
}

type sortingTriangle struct {
	vertices [3]ebiten.Vertex
}

// Renderer draws Scenes to its ColorTexture.
type Renderer struct {
	ColorTexture    *ebiten.Image
	BackgroundColor color.Color
	AntiAlias       bool
	DebugInfo       DebugInfo

	width, height int

	whiteImage *ebiten.Image
	vertexList []ebiten.Vertex
	indexList  []uint16
	triangles  []sortingTriangle
	depths     []float64 // Average clip w of each triangle
	order      []int     // Triangle indices, far to near

	// Scratch buffers for transformed vertices, reused across Models and frames.
	clipVerts    []vector.Vector
	vertexColors []orbital.Color // Lit vertex colors, already in sRGB
}

// NewRenderer creates a new Renderer that draws to a texture of the given size.
func NewRenderer(width, height int) *Renderer {

	white := ebiten.NewImage(3, 3)
	white.Fill(colors.White().ToRGBA64())

	r := &Renderer{
		BackgroundColor: colors.Black().ToRGBA64(),
		AntiAlias:       true,
		whiteImage:      white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertexList:      make([]ebiten.Vertex, MaxTriangleCount*3),
		indexList:       make([]uint16, MaxTriangleCount*3),
	}

	r.SetSize(width, height)

	return r

}

// SetSize resizes the Renderer's output texture. Sizes below 1 pixel are raised to 1.
func (r *Renderer) SetSize(width, height int) {

	width = max(width, 1)
	height = max(height, 1)

	if r.ColorTexture != nil && width == r.width && height == r.height {
		return
	}

	if r.ColorTexture != nil {
		r.ColorTexture.Deallocate()
	}

	r.width, r.height = width, height
	r.ColorTexture = ebiten.NewImage(width, height)

}

// Size returns the size of the Renderer's output texture.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Clear clears the color texture to the background color and resets the debug info.
func (r *Renderer) Clear() {
	r.ColorTexture.Fill(r.BackgroundColor)
	r.DebugInfo = DebugInfo{}
}

// Render draws the Scene as seen from the Camera to the color texture.
func (r *Renderer) Render(scene *orbital.Scene, camera *orbital.Camera) {

	start := time.Now()

	scene.BeginLighting()

	viewProjection := camera.ViewProjection()
	width, height := float64(r.width), float64(r.height)

	r.triangles = r.triangles[:0]
	r.depths = r.depths[:0]

	for _, model := range scene.Models {

		r.DebugInfo.TotalParts++

		if !model.Visible || model.Mesh == nil {
			continue
		}

		r.DebugInfo.TotalTris += len(model.Mesh.Triangles)

		if model.Collapsed() {
			continue
		}

		r.DebugInfo.DrawnParts++

		r.transformModel(scene, model, viewProjection, camera)

		culling := model.Mesh.BackfaceCulling && (model.Material == nil || !model.Material.DoubleSided)

		for _, tri := range model.Mesh.Triangles {

			clip := [3]vector.Vector{r.clipVerts[tri.Indices[0]], r.clipVerts[tri.Indices[1]], r.clipVerts[tri.Indices[2]]}

			screen, visible := camera.ProjectTriangle(clip, width, height, culling)
			if !visible {
				continue
			}

			st := sortingTriangle{}

			for i, p := range screen {
				col := r.vertexColors[tri.Indices[i]]
				st.vertices[i] = ebiten.Vertex{
					DstX:   float32(p[0]),
					DstY:   float32(p[1]),
					SrcX:   1,
					SrcY:   1,
					ColorR: col.R,
					ColorG: col.G,
					ColorB: col.B,
					ColorA: col.A,
				}
			}

			r.triangles = append(r.triangles, st)
			r.depths = append(r.depths, (clip[0][3]+clip[1][3]+clip[2][3])/3)

		}

	}

	r.order = orbital.SortFarToNear(r.depths, r.order)

	r.flush()

	r.DebugInfo.DrawnTris = len(r.triangles)
	r.DebugInfo.FrameTime = time.Since(start)

}

// transformModel fills the scratch buffers with the clip-space positions and lit colors of the Model's vertices.
func (r *Renderer) transformModel(scene *orbital.Scene, model *orbital.Model, viewProjection orbital.Matrix4, camera *orbital.Camera) {

	mesh := model.Mesh
	world := scene.WorldTransform(model)
	mvp := viewProjection.Mult(world)

	r.clipVerts = r.clipVerts[:0]
	r.vertexColors = r.vertexColors[:0]

	doubleSided := model.Material != nil && model.Material.DoubleSided

	for i, v := range mesh.Vertices {

		worldPos := world.MultVec(v)
		r.clipVerts = append(r.clipVerts, mvp.MultVecW(v))

		var normal vector.Vector
		if i < len(mesh.Normals) {
			normal = world.MultDir(mesh.Normals[i])
		} else {
			normal = vector.Vector{0, 0, 1}
		}

		if m := normal.Magnitude(); m > 0 {
			normal = normal.Scale(1 / m)
		}

		// Double-sided surfaces are lit on whichever side faces the camera.
		if doubleSided && normal.Dot(camera.Position.Sub(worldPos)) < 0 {
			normal = normal.Scale(-1)
		}

		r.vertexColors = append(r.vertexColors, scene.Shade(model.Material, worldPos, normal, camera.Position).SRGB())

	}

}

// flush draws the triangles far to near, in batches of up to MaxTriangleCount.
func (r *Renderer) flush() {

	opt := &ebiten.DrawTrianglesOptions{AntiAlias: r.AntiAlias}

	for batchStart := 0; batchStart < len(r.order); batchStart += MaxTriangleCount {

		batchEnd := min(batchStart+MaxTriangleCount, len(r.order))

		count := 0

		for _, index := range r.order[batchStart:batchEnd] {
			for _, v := range r.triangles[index].vertices {
				r.vertexList[count] = v
				r.indexList[count] = uint16(count)
				count++
			}
		}

		r.ColorTexture.DrawTriangles(r.vertexList[:count], r.indexList[:count], r.whiteImage, opt)
		r.DebugInfo.DrawCalls++

	}

}
