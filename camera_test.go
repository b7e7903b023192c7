package orbital

import (
	"testing"

	"github.com/kvartborg/vector"
)

func TestProjectTriangle(t *testing.T) {

	camera := NewCamera(45, 1, 0.1, 100)
	camera.SetPosition(0, 0, 30)
	camera.LookAt(UnitVector(0))

	vp := camera.ViewProjection()

	clip := func(points ...vector.Vector) [3]vector.Vector {
		return [3]vector.Vector{vp.MultVecW(points[0]), vp.MultVecW(points[1]), vp.MultVecW(points[2])}
	}

	a, b, c := vector.Vector{-1, -1, 0}, vector.Vector{1, -1, 0}, vector.Vector{0, 1, 0}

	tests := []struct {
		name    string
		clip    [3]vector.Vector
		cull    bool
		visible bool
	}{
		{"counter-clockwise, facing the camera", clip(a, b, c), true, true},
		{"clockwise, facing away", clip(a, c, b), true, false},
		{"clockwise without culling", clip(a, c, b), false, true},
		{"vertex behind the camera", clip(a, b, vector.Vector{0, 0, 40}), false, false},
		{"vertex closer than the near plane", clip(a, b, vector.Vector{0, 0, 29.95}), false, false},
		{"vertex just past the near plane", clip(a, b, vector.Vector{0, 1, 29.8}), false, true},
	}

	for _, test := range tests {
		if _, visible := camera.ProjectTriangle(test.clip, 100, 100, test.cull); visible != test.visible {
			t.Errorf("%s: visible = %v, expected %v", test.name, visible, test.visible)
		}
	}

	screen, _ := camera.ProjectTriangle(clip(a, b, c), 100, 100, true)
	if screen[2][1] >= 50 || screen[0][1] <= 50 {
		t.Errorf("the top vertex should be above the center of the screen and the bottom ones below it, got %v", screen)
	}

}

func TestSortFarToNear(t *testing.T) {

	order := make([]int, 0, 2)

	order = SortFarToNear([]float64{5, 20, 5, 1, 20}, order)

	expected := []int{1, 4, 0, 2, 3}

	if len(order) != len(expected) {
		t.Fatalf("expected %d indices, got %v", len(expected), order)
	}

	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("expected %v (farthest first, ties in order), got %v", expected, order)
		}
	}

	if order = SortFarToNear(nil, order); len(order) != 0 {
		t.Errorf("sorting nothing should give nothing, got %v", order)
	}

}
