// Package orbit implements damped orbit controls for an orbital.Camera: dragging rotates the camera around its target,
// and the wheel dollies it in and out. Panning isn't supported.
package orbit

import (
	"math"

	"github.com/kvartborg/vector"
	"github.com/solarlune/orbital"
)

const epsilon = 0.000001

type spherical struct {
	Radius, Phi, Theta float64
}

// Controls orbits a Camera around a target point. Input is accumulated into a rotation delta that's applied in Update;
// with damping enabled, only a fraction of the delta is applied each Update, so the camera glides to a stop.
type Controls struct {
	Camera *orbital.Camera
	Target vector.Vector

	EnableDamping bool
	DampingFactor float64
	EnableRotate  bool
	RotateSpeed   float64
	EnableZoom    bool
	ZoomSpeed     float64

	MinDistance, MaxDistance     float64
	MinPolarAngle, MaxPolarAngle float64

	// ViewportHeight is used to turn pointer movement in pixels into rotation; a drag across the full height of the
	// viewport rotates by a full turn.
	ViewportHeight float64

	delta    spherical
	scale    float64
	dragging bool
	lastX    float64
	lastY    float64
}

// New creates new Controls for the Camera, orbiting its current target.
func New(camera *orbital.Camera) *Controls {
	return &Controls{
		Camera:         camera,
		Target:         camera.Target.Clone(),
		DampingFactor:  0.05,
		EnableRotate:   true,
		RotateSpeed:    1,
		EnableZoom:     true,
		ZoomSpeed:      1,
		MinDistance:    0,
		MaxDistance:    math.Inf(1),
		MinPolarAngle:  0,
		MaxPolarAngle:  math.Pi,
		ViewportHeight: 1,
		scale:          1,
	}
}

// Begin starts a rotation drag at the given pointer position.
func (c *Controls) Begin(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// Drag rotates the camera by the pointer's movement since the last call, if a drag is in progress.
func (c *Controls) Drag(x, y float64) {

	if !c.dragging {
		return
	}

	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	if !c.EnableRotate {
		return
	}

	height := c.ViewportHeight
	if height <= 0 {
		height = 1
	}

	c.RotateLeft(2 * math.Pi * dx / height * c.RotateSpeed)
	c.RotateUp(2 * math.Pi * dy / height * c.RotateSpeed)

}

// End finishes a rotation drag.
func (c *Controls) End() {
	c.dragging = false
}

// Dragging returns if a rotation drag is in progress.
func (c *Controls) Dragging() bool {
	return c.dragging
}

// RotateLeft queues a rotation around the target's vertical axis.
func (c *Controls) RotateLeft(angle float64) {
	c.delta.Theta -= angle
}

// RotateUp queues a rotation towards or away from the poles.
func (c *Controls) RotateUp(angle float64) {
	c.delta.Phi -= angle
}

// Dolly zooms the camera for a wheel movement; positive values (scrolling up) move the camera closer.
func (c *Controls) Dolly(wheel float64) {

	if !c.EnableZoom || wheel == 0 {
		return
	}

	step := math.Pow(0.95, c.ZoomSpeed)

	if wheel > 0 {
		c.scale *= step
	} else {
		c.scale /= step
	}

}

// Update applies queued rotation and zoom to the camera. It returns true if the camera moved.
func (c *Controls) Update() bool {

	cam := c.Camera
	offset := cam.Position.Sub(c.Target)

	radius := offset.Magnitude()
	s := spherical{Radius: radius}
	if radius > 0 {
		s.Theta = math.Atan2(offset[0], offset[2])
		s.Phi = math.Acos(math.Max(-1, math.Min(1, offset[1]/radius)))
	}

	if c.EnableDamping {
		s.Theta += c.delta.Theta * c.DampingFactor
		s.Phi += c.delta.Phi * c.DampingFactor
	} else {
		s.Theta += c.delta.Theta
		s.Phi += c.delta.Phi
	}

	s.Phi = math.Max(c.MinPolarAngle, math.Min(c.MaxPolarAngle, s.Phi))
	s.Phi = math.Max(epsilon, math.Min(math.Pi-epsilon, s.Phi))

	s.Radius *= c.scale
	s.Radius = math.Max(c.MinDistance, math.Min(c.MaxDistance, s.Radius))

	sinPhiRadius := math.Sin(s.Phi) * s.Radius

	newOffset := vector.Vector{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}

	newPosition := c.Target.Add(newOffset)
	moved := newPosition.Sub(cam.Position).Magnitude() > epsilon

	cam.Position = newPosition
	cam.LookAt(c.Target)

	if c.EnableDamping {
		c.delta.Theta *= 1 - c.DampingFactor
		c.delta.Phi *= 1 - c.DampingFactor
	} else {
		c.delta = spherical{}
	}

	c.scale = 1

	return moved

}
