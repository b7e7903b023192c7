package orbital

import "github.com/kvartborg/vector"

// Scene is the root of the scene graph: Models and Lights added to it are drawn and lit relative to the Scene's own rotation.
// Nodes are only ever added to a Scene.
type Scene struct {
	Name   string
	Models []*Model
	Lights []Light

	// Roll is the Scene's rotation around its Z axis, in radians.
	Roll float64
}

// NewScene creates a new, empty Scene.
func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		Models: []*Model{},
		Lights: []Light{},
	}
}

// Add adds the given Models to the Scene.
func (scene *Scene) Add(models ...*Model) {
	scene.Models = append(scene.Models, models...)
}

// AddLights adds the given Lights to the Scene.
func (scene *Scene) AddLights(lights ...Light) {
	scene.Lights = append(scene.Lights, lights...)
}

// RotateZ rolls the Scene around its Z axis by the given angle in radians.
func (scene *Scene) RotateZ(angle float64) {
	scene.Roll += angle
}

// Transform returns the Scene's root transform.
func (scene *Scene) Transform() Matrix4 {
	return RotateZ(scene.Roll)
}

// WorldTransform returns the world transform of a Model in the Scene.
func (scene *Scene) WorldTransform(model *Model) Matrix4 {
	return scene.Transform().Mult(model.Transform())
}

// TriangleCount returns the total number of triangles of all visible Models in the Scene.
func (scene *Scene) TriangleCount() int {
	count := 0
	for _, model := range scene.Models {
		if model.Visible && model.Mesh != nil {
			count += len(model.Mesh.Triangles)
		}
	}
	return count
}

// BeginLighting places the Scene's Lights in world space; call it once per frame before Shade.
func (scene *Scene) BeginLighting() {
	world := scene.Transform()
	for _, light := range scene.Lights {
		light.begin(world)
	}
}

// Shade returns the linear color of a world-space point on the given Material with the given (unit) normal, as seen from eye.
func (scene *Scene) Shade(material *Material, position, normal, eye vector.Vector) Color {

	if material == nil {
		return NewColor(1, 1, 1, 1)
	}

	if material.Shadeless {
		return material.Color
	}

	var diffuse, specular Color

	for _, light := range scene.Lights {
		if !light.isOn() {
			continue
		}
		d, s := light.Light(position, normal, eye, material)
		diffuse = NewColor(diffuse.R+d.R, diffuse.G+d.G, diffuse.B+d.B, 1)
		specular = NewColor(specular.R+s.R, specular.G+s.G, specular.B+s.B, 1)
	}

	color := material.Color.Multiply(diffuse)
	color.R += specular.R
	color.G += specular.G
	color.B += specular.B
	color.A = material.Color.A

	return color

}
