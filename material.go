package orbital

// Material describes the surface of a Model. Materials are shared between cloned Models, so changing a shared Material's
// Color changes every Model using it.
type Material struct {
	Name  string
	Color Color // The overall (linear) color of the Material.

	// Roughness ranges from 0 (mirror-like, a tight specular highlight) to 1 (fully diffuse, no highlight).
	Roughness float64

	// Shadeless Materials ignore lighting and are drawn with their flat Color.
	Shadeless bool

	// DoubleSided Materials are drawn from both sides; otherwise back faces are culled if the Mesh allows it.
	DoubleSided bool
}

// NewMaterial creates a new lit Material with the given color and a roughness of 1.
func NewMaterial(name string, color Color) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: 1,
	}
}

// NewBasicMaterial creates a new shadeless Material with the given color.
func NewBasicMaterial(name string, color Color) *Material {
	mat := NewMaterial(name, color)
	mat.Shadeless = true
	return mat
}

// Clone returns a copy of the Material.
func (material *Material) Clone() *Material {
	newMat := *material
	return &newMat
}

// specularPower returns the Blinn-Phong exponent for the Material's roughness.
func (material *Material) specularPower() float64 {
	r := clamp(material.Roughness, 0, 1)
	return 2 + (1-r)*(1-r)*126
}
