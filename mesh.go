package orbital

import (
	"fmt"
	"math"

	"github.com/kvartborg/vector"
)

// Mesh represents a collection of vertices and per-vertex normals, with triangles indexing into them. Meshes are shared
// between Models; cloning a Model doesn't clone its Mesh.
type Mesh struct {
	Name            string
	Vertices        []vector.Vector
	Normals         []vector.Vector
	Triangles       []*Triangle
	BackfaceCulling bool
}

// NewMesh returns a new, empty Mesh.
func NewMesh(name string) *Mesh {

	mesh := &Mesh{
		Name:            name,
		Vertices:        []vector.Vector{},
		Normals:         []vector.Vector{},
		Triangles:       []*Triangle{},
		BackfaceCulling: true,
	}
	return mesh

}

// Clone returns a deep copy of the Mesh.
func (mesh *Mesh) Clone() *Mesh {
	newMesh := NewMesh(mesh.Name)
	newMesh.BackfaceCulling = mesh.BackfaceCulling
	for _, v := range mesh.Vertices {
		newMesh.Vertices = append(newMesh.Vertices, v.Clone())
	}
	for _, n := range mesh.Normals {
		newMesh.Normals = append(newMesh.Normals, n.Clone())
	}
	for _, t := range mesh.Triangles {
		newTri := t.Clone()
		newTri.Mesh = newMesh
		newMesh.Triangles = append(newMesh.Triangles, newTri)
	}
	return newMesh
}

// addTriangle adds a triangle with the given (counter-clockwise) vertex indices.
func (mesh *Mesh) addTriangle(i0, i1, i2 int) {
	tri := NewTriangle(mesh)
	tri.Indices = []uint16{uint16(i0), uint16(i1), uint16(i2)}
	tri.RecalculateNormal()
	mesh.Triangles = append(mesh.Triangles, tri)
}

// Indices returns the triangle indices of the Mesh as a flat slice.
func (mesh *Mesh) Indices() []uint16 {
	indices := make([]uint16, 0, len(mesh.Triangles)*3)
	for _, tri := range mesh.Triangles {
		indices = append(indices, tri.Indices...)
	}
	return indices
}

// Dimensions returns the minimum and maximum corners of the Mesh's vertices.
func (mesh *Mesh) Dimensions() (vector.Vector, vector.Vector) {
	if len(mesh.Vertices) == 0 {
		return UnitVector(0), UnitVector(0)
	}
	min := mesh.Vertices[0].Clone()
	max := mesh.Vertices[0].Clone()
	for _, v := range mesh.Vertices {
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], v[i])
			max[i] = math.Max(max[i], v[i])
		}
	}
	return min, max
}

// NewSphere creates a UV sphere Mesh of the given radius. widthSegments is the number of segments around the equator, and
// heightSegments the number from pole to pole. Degenerate triangles at the poles are skipped.
func NewSphere(radius float64, widthSegments, heightSegments int) (*Mesh, error) {

	if radius <= 0 || widthSegments < 3 || heightSegments < 2 {
		return nil, fmt.Errorf("sphere (radius %v, %dx%d segments): %w", radius, widthSegments, heightSegments, ErrInvalidGeometry)
	}

	if (widthSegments+1)*(heightSegments+1) > MaxVertexCount {
		return nil, fmt.Errorf("sphere with %dx%d segments has too many vertices: %w", widthSegments, heightSegments, ErrInvalidGeometry)
	}

	mesh := NewMesh("Sphere")

	for y := 0; y <= heightSegments; y++ {

		v := float64(y) / float64(heightSegments)
		theta := v * math.Pi

		for x := 0; x <= widthSegments; x++ {

			u := float64(x) / float64(widthSegments)
			phi := u * math.Pi * 2

			normal := vector.Vector{
				-math.Cos(phi) * math.Sin(theta),
				math.Cos(theta),
				math.Sin(phi) * math.Sin(theta),
			}

			mesh.Vertices = append(mesh.Vertices, normal.Scale(radius))
			mesh.Normals = append(mesh.Normals, normal)

		}

	}

	stride := widthSegments + 1

	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {

			a := y*stride + x + 1
			b := y*stride + x
			c := (y+1)*stride + x
			d := (y+1)*stride + x + 1

			if y != 0 {
				mesh.addTriangle(a, b, d)
			}
			if y != heightSegments-1 {
				mesh.addTriangle(b, c, d)
			}

		}
	}

	return mesh, nil

}

// NewTorus creates a torus Mesh lying on the XY plane. radius is the distance from the center of the torus to the center of
// the tube, tube is the tube's radius, and arc is the angle of the torus's sweep in radians (math.Pi * 2 for a full ring).
func NewTorus(radius, tube float64, radialSegments, tubularSegments int, arc float64) (*Mesh, error) {

	if radius <= 0 || tube <= 0 || arc <= 0 || radialSegments < 2 || tubularSegments < 3 {
		return nil, fmt.Errorf("torus (radius %v, tube %v, %dx%d segments): %w", radius, tube, radialSegments, tubularSegments, ErrInvalidGeometry)
	}

	if (radialSegments+1)*(tubularSegments+1) > MaxVertexCount {
		return nil, fmt.Errorf("torus with %dx%d segments has too many vertices: %w", radialSegments, tubularSegments, ErrInvalidGeometry)
	}

	mesh := NewMesh("Torus")

	for j := 0; j <= radialSegments; j++ {

		v := float64(j) / float64(radialSegments) * math.Pi * 2

		for i := 0; i <= tubularSegments; i++ {

			u := float64(i) / float64(tubularSegments) * arc

			vertex := vector.Vector{
				(radius + tube*math.Cos(v)) * math.Cos(u),
				(radius + tube*math.Cos(v)) * math.Sin(u),
				tube * math.Sin(v),
			}

			center := vector.Vector{radius * math.Cos(u), radius * math.Sin(u), 0}

			mesh.Vertices = append(mesh.Vertices, vertex)
			mesh.Normals = append(mesh.Normals, vertex.Sub(center).Unit())

		}

	}

	stride := tubularSegments + 1

	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {

			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i

			mesh.addTriangle(a, b, d)
			mesh.addTriangle(b, c, d)

		}
	}

	return mesh, nil

}

// Triangle represents a single triangle of a Mesh, indexing into its vertices.
type Triangle struct {
	Indices []uint16
	Normal  vector.Vector
	Mesh    *Mesh
}

func NewTriangle(mesh *Mesh) *Triangle {
	return &Triangle{
		Indices: []uint16{},
		Mesh:    mesh,
	}
}

func (tri *Triangle) Clone() *Triangle {
	newTri := NewTriangle(tri.Mesh)
	newTri.Indices = append(newTri.Indices, tri.Indices...)
	newTri.Normal = tri.Normal.Clone()
	return newTri
}

func (tri *Triangle) RecalculateNormal() {

	tri.Normal = calculateNormal(
		tri.Mesh.Vertices[tri.Indices[0]],
		tri.Mesh.Vertices[tri.Indices[1]],
		tri.Mesh.Vertices[tri.Indices[2]],
	)

}

func (tri *Triangle) Vertices() []vector.Vector {
	verts := []vector.Vector{}
	for _, index := range tri.Indices {
		verts = append(verts, tri.Mesh.Vertices[index])
	}
	return verts
}

func calculateNormal(p1, p2, p3 vector.Vector) vector.Vector {

	v0 := p2.Sub(p1)
	v1 := p3.Sub(p2)

	cross, _ := v0.Cross(v1)
	if cross.Magnitude() == 0 {
		return vector.Vector{0, 0, 0}
	}
	return cross.Unit()

}
