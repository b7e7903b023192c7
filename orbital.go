// Package orbital is a small software scene graph for a sphere with orbiting rings and particles: meshes, materials,
// models, a point light, and a perspective camera. Drawing lives in the render package, which hands the triangles to Ebitengine.
package orbital

import (
	"errors"
	"math"

	"github.com/kvartborg/vector"
)

// ErrInvalidGeometry is returned by the primitive constructors when given a non-positive size or too few segments.
var ErrInvalidGeometry = errors.New("invalid geometry")

// MaxVertexCount is the maximum number of vertices a single Mesh can hold, as triangle indices are 16-bit.
const MaxVertexCount = math.MaxUint16

// UnitVector returns a 3D vector with all components set to value.
func UnitVector(value float64) vector.Vector {
	return vector.Vector{value, value, value}
}

// ToRadians is a helper function to easily convert degrees to radians.
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

// dot returns the dot product of two 3D vectors. vector.Vector.Dot clamps its result to [-1, 1], so it's only usable on
// unit vectors.
func dot(a, b vector.Vector) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func clamp(value, min, max float64) float64 {
	return math.Max(math.Min(value, max), min)
}
