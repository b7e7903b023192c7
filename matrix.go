package orbital

import (
	"math"
	"strconv"

	"github.com/kvartborg/vector"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major and multiplies column vectors
// (i.e. the translation of a transform lives in matrix[0][3], matrix[1][3], and matrix[2][3]).
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// Translate returns a Matrix4 that translates by the given amounts.
func Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][3] = x
	mat[1][3] = y
	mat[2][3] = z
	return mat
}

// Scale returns a Matrix4 that scales by the given amounts on each axis.
func Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// Rotate returns a Matrix4 that rotates counter-clockwise by angle radians around the given axis.
func Rotate(axis vector.Vector, angle float64) Matrix4 {

	mat := NewMatrix4()
	axis = axis.Unit()
	x, y, z := axis[0], axis[1], axis[2]
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*x*x + c
	mat[0][1] = m*x*y - z*s
	mat[0][2] = m*x*z + y*s

	mat[1][0] = m*x*y + z*s
	mat[1][1] = m*y*y + c
	mat[1][2] = m*y*z - x*s

	mat[2][0] = m*x*z - y*s
	mat[2][1] = m*y*z + x*s
	mat[2][2] = m*z*z + c

	return mat

}

func RotateX(angle float64) Matrix4 { return Rotate(vector.X, angle) }
func RotateY(angle float64) Matrix4 { return Rotate(vector.Y, angle) }
func RotateZ(angle float64) Matrix4 { return Rotate(vector.Z, angle) }

// Right returns the X axis of the rotation part of the Matrix4.
func (matrix Matrix4) Right() vector.Vector {
	return vector.Vector{matrix[0][0], matrix[1][0], matrix[2][0]}
}

// Up returns the Y axis of the rotation part of the Matrix4.
func (matrix Matrix4) Up() vector.Vector {
	return vector.Vector{matrix[0][1], matrix[1][1], matrix[2][1]}
}

// Forward returns the forward direction of the Matrix4; like OpenGL, forward looks down -Z.
func (matrix Matrix4) Forward() vector.Vector {
	return vector.Vector{-matrix[0][2], -matrix[1][2], -matrix[2][2]}
}

// MultVec transforms the provided 3D point by the Matrix4 (treating it as having a W of 1), returning a 3D point.
func (matrix Matrix4) MultVec(vect vector.Vector) vector.Vector {

	return vector.Vector{
		matrix[0][0]*vect[0] + matrix[0][1]*vect[1] + matrix[0][2]*vect[2] + matrix[0][3],
		matrix[1][0]*vect[0] + matrix[1][1]*vect[1] + matrix[1][2]*vect[2] + matrix[1][3],
		matrix[2][0]*vect[0] + matrix[2][1]*vect[1] + matrix[2][2]*vect[2] + matrix[2][3],
	}

}

// MultVecW transforms the provided 3D point by the Matrix4 and returns the homogeneous 4D result (for projection).
func (matrix Matrix4) MultVecW(vect vector.Vector) vector.Vector {

	return vector.Vector{
		matrix[0][0]*vect[0] + matrix[0][1]*vect[1] + matrix[0][2]*vect[2] + matrix[0][3],
		matrix[1][0]*vect[0] + matrix[1][1]*vect[1] + matrix[1][2]*vect[2] + matrix[1][3],
		matrix[2][0]*vect[0] + matrix[2][1]*vect[1] + matrix[2][2]*vect[2] + matrix[2][3],
		matrix[3][0]*vect[0] + matrix[3][1]*vect[1] + matrix[3][2]*vect[2] + matrix[3][3],
	}

}

// MultDir transforms the provided direction by the Matrix4, ignoring translation.
func (matrix Matrix4) MultDir(vect vector.Vector) vector.Vector {

	return vector.Vector{
		matrix[0][0]*vect[0] + matrix[0][1]*vect[1] + matrix[0][2]*vect[2],
		matrix[1][0]*vect[0] + matrix[1][1]*vect[1] + matrix[1][2]*vect[2],
		matrix[2][0]*vect[0] + matrix[2][1]*vect[1] + matrix[2][2]*vect[2],
	}

}

// Mult returns matrix * other; applied to a vector, other's transformation happens first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += matrix[r][k] * other[k][c]
			}
			newMat[r][c] = sum
		}
	}

	return newMat

}

// Equals returns if the Matrix4 is equal to the other, within a small tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	for r := range matrix {
		for c := range matrix[r] {
			if math.Abs(matrix[r][c]-other[r][c]) > 1e-9 {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the Matrix4 is an identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}

// LookAt returns a view Matrix4 for an eye at the given position looking at center.
func LookAt(eye, center, up vector.Vector) Matrix4 {
	z := eye.Sub(center).Unit()
	x, _ := up.Cross(z)
	x = x.Unit()
	y, _ := z.Cross(x)
	return Matrix4{
		{x[0], x[1], x[2], -dot(x, eye)},
		{y[0], y[1], y[2], -dot(y, eye)},
		{z[0], z[1], z[2], -dot(z, eye)},
		{0, 0, 0, 1},
	}
}

// Cribbed from https://github.com/fogleman/fauxgl vvvvvv

func frustum(l, r, b, t, n, f float64) Matrix4 {
	t1 := 2 * n
	t2 := r - l
	t3 := t - b
	t4 := f - n
	return Matrix4{
		{t1 / t2, 0, (r + l) / t2, 0},
		{0, t1 / t3, (t + b) / t3, 0},
		{0, 0, (-(f + n)) / t4, (-t1 * f) / t4},
		{0, 0, -1, 0},
	}
}

//Cribbed from https://github.com/fogleman/fauxgl ^^^^^^^

// Perspective returns a perspective projection Matrix4 for the given vertical field of view (in degrees), aspect ratio,
// and near and far clipping planes.
func Perspective(fovy, aspect, near, far float64) Matrix4 {
	ymax := near * math.Tan((fovy*math.Pi)/360)
	xmax := ymax * aspect
	return frustum(-xmax, xmax, -ymax, ymax, near, far)
}
