package orbital

import "github.com/kvartborg/vector"

// Model represents a Mesh placed in a Scene with a Material and a local transform.
type Model struct {
	Name     string
	Mesh     *Mesh
	Material *Material
	Visible  bool

	Position vector.Vector
	Scale    vector.Vector
	Rotation Matrix4
}

// NewModel creates a new visible Model at the origin.
func NewModel(name string, mesh *Mesh, material *Material) *Model {

	return &Model{
		Name:     name,
		Mesh:     mesh,
		Material: material,
		Visible:  true,
		Position: UnitVector(0),
		Scale:    UnitVector(1),
		Rotation: NewMatrix4(),
	}

}

// Clone returns a copy of the Model; the clone shares the original's Mesh and Material.
func (model *Model) Clone() *Model {
	clone := NewModel(model.Name, model.Mesh, model.Material)
	clone.Visible = model.Visible
	clone.Position = model.Position.Clone()
	clone.Scale = model.Scale.Clone()
	clone.Rotation = model.Rotation
	return clone
}

// SetPosition sets the Model's local position.
func (model *Model) SetPosition(x, y, z float64) {
	model.Position = vector.Vector{x, y, z}
}

// SetScale sets the Model's local scale.
func (model *Model) SetScale(x, y, z float64) {
	model.Scale = vector.Vector{x, y, z}
}

// RotateX rotates the Model around its local X axis by the given angle in radians.
func (model *Model) RotateX(angle float64) {
	model.Rotation = model.Rotation.Mult(RotateX(angle))
}

// RotateZ rotates the Model around its local Z axis by the given angle in radians.
func (model *Model) RotateZ(angle float64) {
	model.Rotation = model.Rotation.Mult(RotateZ(angle))
}

// Transform returns the Model's local transform (T * R * S).
func (model *Model) Transform() Matrix4 {
	return Translate(model.Position[0], model.Position[1], model.Position[2]).
		Mult(model.Rotation).
		Mult(Scale(model.Scale[0], model.Scale[1], model.Scale[2]))
}

// Collapsed returns true if the Model is scaled to zero on any axis, in which case there's nothing to draw.
func (model *Model) Collapsed() bool {
	return model.Scale[0] == 0 || model.Scale[1] == 0 || model.Scale[2] == 0
}
