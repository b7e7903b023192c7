package orbital

import (
	"math"

	"github.com/kvartborg/vector"
)

// Light represents an interface that is fulfilled by an object that emits light, returning the diffuse and specular
// contributions it gives a world-space point with the given normal, as seen from the eye.
type Light interface {
	begin(world Matrix4)
	Light(position, normal, eye vector.Vector, material *Material) (diffuse Color, specular Color)
	isOn() bool
}

// PointLight represents a point light of infinite point-ness.
type PointLight struct {
	Name     string
	Position vector.Vector // Position is the local position of the light within the Scene.
	// Distance represents the distance after which the light fully attenuates. If this is 0, it falls off using something
	// akin to the inverse square law.
	Distance float64
	Color    Color // Color is the color of the PointLight.
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience.
	Energy float32
	On     bool // If the light is on and contributing to the scene.

	worldPosition vector.Vector
}

// NewPointLight creates a new Point light.
func NewPointLight(name string, r, g, b, energy float32) *PointLight {
	return &PointLight{
		Name:          name,
		Position:      UnitVector(0),
		Energy:        energy,
		Color:         NewColor(r, g, b, 1),
		On:            true,
		worldPosition: UnitVector(0),
	}
}

// SetPosition sets the PointLight's local position.
func (point *PointLight) SetPosition(x, y, z float64) {
	point.Position = vector.Vector{x, y, z}
}

// WorldPosition returns the PointLight's position as of the last time its Scene began lighting.
func (point *PointLight) WorldPosition() vector.Vector {
	return point.worldPosition
}

func (point *PointLight) begin(world Matrix4) {
	point.worldPosition = world.MultVec(point.Position)
}

// Light returns the diffuse and specular light the point light contributes to the world-space position provided.
func (point *PointLight) Light(position, normal, eye vector.Vector, material *Material) (Color, Color) {

	toLight := point.worldPosition.Sub(position)
	distance := toLight.Magnitude()
	if distance == 0 {
		return Color{}, Color{}
	}
	lightVec := toLight.Scale(1 / distance)

	diffuse := math.Max(normal.Dot(lightVec), 0)
	if diffuse == 0 {
		return Color{}, Color{}
	}

	var attenuation float64

	if point.Distance == 0 {
		attenuation = 1.0 / (1.0 + (0.1 * distance * distance)) * 2
	} else {
		attenuation = clamp(1.0-math.Pow(distance/point.Distance, 4), 0, 1)
	}

	energy := float32(attenuation) * point.Energy
	lightColor := NewColor(point.Color.R*energy, point.Color.G*energy, point.Color.B*energy, 1)

	diffuseColor := NewColor(lightColor.R*float32(diffuse), lightColor.G*float32(diffuse), lightColor.B*float32(diffuse), 1)

	// Blinn-Phong highlight; fully rough surfaces don't get one.
	var specular float64
	if material != nil && material.Roughness < 1 {
		toEye := eye.Sub(position)
		if m := toEye.Magnitude(); m > 0 {
			half := lightVec.Add(toEye.Scale(1 / m))
			if hm := half.Magnitude(); hm > 0 {
				specular = math.Pow(math.Max(normal.Dot(half.Scale(1/hm)), 0), material.specularPower()) * (1 - clamp(material.Roughness, 0, 1))
			}
		}
	}

	specularColor := NewColor(lightColor.R*float32(specular), lightColor.G*float32(specular), lightColor.B*float32(specular), 1)

	return diffuseColor, specularColor

}

func (point *PointLight) isOn() bool {
	return point.On
}
