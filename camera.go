package orbital

import (
	"math"
	"sort"

	"github.com/kvartborg/vector"
)

// Camera represents a perspective camera looking at a target point.
type Camera struct {
	FieldOfView float64 // Vertical field of view, in degrees.
	Aspect      float64 // Width divided by height of the viewport.
	Near, Far   float64

	Position vector.Vector
	Target   vector.Vector
	Up       vector.Vector

	View       Matrix4
	Projection Matrix4
}

// NewCamera creates a new Camera at the origin, looking down -Z.
func NewCamera(fov, aspect, near, far float64) *Camera {

	cam := &Camera{
		FieldOfView: fov,
		Aspect:      aspect,
		Near:        near,
		Far:         far,
		Position:    UnitVector(0),
		Target:      vector.Vector{0, 0, -1},
		Up:          vector.Vector{0, 1, 0},
	}

	cam.UpdateView()
	cam.UpdateProjectionMatrix()

	return cam
}

// SetPosition moves the Camera, keeping it pointed at its target.
func (camera *Camera) SetPosition(x, y, z float64) {
	camera.Position = vector.Vector{x, y, z}
	camera.UpdateView()
}

// LookAt sets the Camera's rotation such that it is looking at the target 3D Vector in world space.
func (camera *Camera) LookAt(target vector.Vector) {
	camera.Target = target.Clone()
	camera.UpdateView()
}

// UpdateView recalculates the view matrix from the Camera's position, target, and up vector.
func (camera *Camera) UpdateView() {
	camera.View = LookAt(camera.Position, camera.Target, camera.Up)
}

// SetAspect sets the Camera's aspect ratio and recalculates its projection matrix.
func (camera *Camera) SetAspect(aspect float64) {
	camera.Aspect = aspect
	camera.UpdateProjectionMatrix()
}

// UpdateProjectionMatrix recalculates the projection matrix; call it after changing the field of view, aspect, or clipping planes.
func (camera *Camera) UpdateProjectionMatrix() {
	camera.Projection = Perspective(camera.FieldOfView, camera.Aspect, camera.Near, camera.Far)
}

// ViewProjection returns the combined projection * view matrix.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.Projection.Mult(camera.View)
}

// Distance returns the Camera's distance to its target.
func (camera *Camera) Distance() float64 {
	return camera.Position.Sub(camera.Target).Magnitude()
}

// ClipToScreen converts a homogeneous clip-space vector (as returned by ViewProjection().MultVecW()) to screen coordinates
// for a viewport of the given size. The third component of the result is the normalized device depth.
func (camera *Camera) ClipToScreen(clip vector.Vector, width, height float64) vector.Vector {

	w := clip[3]
	if w == 0 {
		w = math.SmallestNonzeroFloat64
	}

	return vector.Vector{
		(clip[0]/w + 1) / 2 * width,
		(1 - clip[1]/w) / 2 * height,
		clip[2] / w,
	}

}

// WorldToScreen projects a world-space point to screen coordinates for a viewport of the given size.
func (camera *Camera) WorldToScreen(point vector.Vector, width, height float64) vector.Vector {
	return camera.ClipToScreen(camera.ViewProjection().MultVecW(point), width, height)
}

// ProjectTriangle projects the clip-space vertices of a triangle to a viewport of the given size. It returns false if any
// vertex is closer than the near plane (or behind the camera), or, if cull is set, if the triangle is wound clockwise on
// screen and so faces away from the camera.
func (camera *Camera) ProjectTriangle(clip [3]vector.Vector, width, height float64, cull bool) ([3]vector.Vector, bool) {

	var screen [3]vector.Vector

	for i, c := range clip {
		if c[3] < camera.Near {
			return screen, false
		}
		screen[i] = camera.ClipToScreen(c, width, height)
	}

	if cull {
		// Counter-clockwise triangles face the camera; the screen's Y axis points down, flipping the sign.
		p0, p1, p2 := screen[0], screen[1], screen[2]
		area := (p1[0]-p0[0])*(p2[1]-p0[1]) - (p2[0]-p0[0])*(p1[1]-p0[1])
		if area >= 0 {
			return screen, false
		}
	}

	return screen, true

}

// SortFarToNear fills order with the indices of depths, farthest first, and returns it. Equal depths keep their order.
func SortFarToNear(depths []float64, order []int) []int {

	order = order[:0]
	for i := range depths {
		order = append(order, i)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return depths[order[i]] > depths[order[j]]
	})

	return order

}
