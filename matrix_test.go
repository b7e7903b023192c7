package orbital

import (
	"math"
	"testing"

	"github.com/kvartborg/vector"
)

func vectorsClose(a, b vector.Vector, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}

func TestMatrixTransformOrder(t *testing.T) {

	// Scale happens first, then the translation.
	mat := Translate(1, 2, 3).Mult(Scale(2, 2, 2))

	if got := mat.MultVec(vector.Vector{1, 1, 1}); !vectorsClose(got, vector.Vector{3, 4, 5}, 1e-9) {
		t.Fatalf("translate * scale moved (1, 1, 1) to %v, expected (3, 4, 5)", got)
	}

	if got := mat.MultDir(vector.Vector{1, 0, 0}); !vectorsClose(got, vector.Vector{2, 0, 0}, 1e-9) {
		t.Errorf("directions shouldn't be translated; got %v", got)
	}

}

func TestMatrixRotation(t *testing.T) {

	tests := []struct {
		name     string
		mat      Matrix4
		in, want vector.Vector
	}{
		{"z quarter turn", RotateZ(math.Pi / 2), vector.Vector{1, 0, 0}, vector.Vector{0, 1, 0}},
		{"x quarter turn", RotateX(math.Pi / 2), vector.Vector{0, 1, 0}, vector.Vector{0, 0, 1}},
		{"y quarter turn", RotateY(math.Pi / 2), vector.Vector{0, 0, 1}, vector.Vector{1, 0, 0}},
		{"arbitrary axis half turn", Rotate(vector.Vector{1, 1, 0}, math.Pi), vector.Vector{1, 0, 0}, vector.Vector{0, 1, 0}},
	}

	for _, test := range tests {
		if got := test.mat.MultVec(test.in); !vectorsClose(got, test.want, 1e-9) {
			t.Errorf("%s: rotated %v to %v, expected %v", test.name, test.in, got, test.want)
		}
	}

	if !RotateZ(0.3).Mult(RotateZ(-0.3)).IsIdentity() {
		t.Error("rotating back and forth should give the identity matrix")
	}

}

func TestLookAt(t *testing.T) {

	view := LookAt(vector.Vector{0, 0, 30}, UnitVector(0), vector.Vector{0, 1, 0})

	if got := view.MultVec(UnitVector(0)); !vectorsClose(got, vector.Vector{0, 0, -30}, 1e-9) {
		t.Fatalf("the target should end up straight ahead of the eye, down -Z; got %v", got)
	}

	if got := view.MultVec(vector.Vector{0, 1, 0}); got[1] <= 0 {
		t.Errorf("up should stay up in view space; got %v", got)
	}

	// Off-axis, the eye lands on the origin and the target sits its full distance away.
	eye := vector.Vector{10, 5, -20}
	view = LookAt(eye, UnitVector(0), vector.Vector{0, 1, 0})

	if got := view.MultVec(eye); !vectorsClose(got, UnitVector(0), 1e-9) {
		t.Errorf("the eye should be at the origin of view space; got %v", got)
	}

	if got := view.MultVec(UnitVector(0)); !vectorsClose(got, vector.Vector{0, 0, -eye.Magnitude()}, 1e-9) {
		t.Errorf("expected the target %v units down -Z; got %v", eye.Magnitude(), got)
	}

}

func TestPerspectiveDepthRange(t *testing.T) {

	near, far := 0.1, 100.0
	proj := Perspective(45, 16.0/9, near, far)

	nearClip := proj.MultVecW(vector.Vector{0, 0, -near})
	farClip := proj.MultVecW(vector.Vector{0, 0, -far})

	if d := nearClip[2] / nearClip[3]; math.Abs(d+1) > 1e-9 {
		t.Errorf("near plane depth = %v, expected -1", d)
	}

	if d := farClip[2] / farClip[3]; math.Abs(d-1) > 1e-9 {
		t.Errorf("far plane depth = %v, expected 1", d)
	}

	if nearClip[3] != near || farClip[3] != far {
		t.Errorf("clip w should be the view distance; got %v and %v", nearClip[3], farClip[3])
	}

}
