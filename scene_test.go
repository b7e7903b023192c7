package orbital

import (
	"math"
	"testing"

	"github.com/kvartborg/vector"
)

func TestCameraProjection(t *testing.T) {

	camera := NewCamera(45, 800.0/600, 0.1, 100)
	camera.SetPosition(0, 0, 30)
	camera.LookAt(UnitVector(0))

	if d := camera.Distance(); d != 30 {
		t.Fatalf("expected the camera to be 30 units from its target, got %v", d)
	}

	center := camera.WorldToScreen(UnitVector(0), 800, 600)
	if !vectorsClose(center[:2], vector.Vector{400, 300}, 1e-6) {
		t.Fatalf("the target should be in the middle of the screen, got %v", center)
	}

	right := camera.WorldToScreen(vector.Vector{1, 1, 0}, 800, 600)
	if right[0] <= 400 || right[1] >= 300 {
		t.Errorf("a point up and to the right should land up and to the right of center, got %v", right)
	}

	// A wider viewport shows more horizontally, so the same point lands closer to the center.
	before := right[0] - 400
	camera.SetAspect(1600.0 / 600)
	after := camera.WorldToScreen(vector.Vector{1, 1, 0}, 800, 600)[0] - 400
	if after >= before {
		t.Errorf("widening the aspect ratio should shrink horizontal offsets (%v -> %v)", before, after)
	}

}

func TestShading(t *testing.T) {

	scene := NewScene("Shading")

	light := NewPointLight("Light", 1, 1, 1, 1)
	light.SetPosition(0, 10, 0)
	light.Distance = 100
	scene.AddLights(light)
	scene.BeginLighting()

	eye := vector.Vector{0, 0, 30}
	white := NewMaterial("White", NewColor(1, 1, 1, 1))

	lit := scene.Shade(white, UnitVector(0), vector.Vector{0, 1, 0}, eye)
	if math.Abs(float64(lit.R)-0.9999) > 1e-4 {
		t.Errorf("a surface facing the light should be almost fully lit, got %v", lit.R)
	}

	if dark := scene.Shade(white, UnitVector(0), vector.Vector{0, -1, 0}, eye); dark.R != 0 {
		t.Errorf("a surface facing away from the light should be black, got %v", dark.R)
	}

	shiny := white.Clone()
	shiny.Roughness = 0.5
	if glossy := scene.Shade(shiny, UnitVector(0), vector.Vector{0, 1, 0}, vector.Vector{0, 30, 0}); glossy.R <= lit.R {
		t.Errorf("a smooth surface seen along the light should get a highlight (%v vs %v)", glossy.R, lit.R)
	}

	flat := NewBasicMaterial("Flat", NewColor(0.2, 0.4, 0.6, 1))
	if c := scene.Shade(flat, UnitVector(0), vector.Vector{0, -1, 0}, eye); c != flat.Color {
		t.Errorf("shadeless materials should keep their color, got %v", c)
	}

	light.On = false
	if off := scene.Shade(white, UnitVector(0), vector.Vector{0, 1, 0}, eye); off.R != 0 {
		t.Errorf("a light that's off shouldn't contribute, got %v", off.R)
	}

}

func TestSceneRoll(t *testing.T) {

	scene := NewScene("Roll")

	light := NewPointLight("Light", 1, 1, 1, 1)
	light.SetPosition(0, 10, 0)
	scene.AddLights(light)

	mesh, err := NewSphere(0.3, 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	model := NewModel("Particle", mesh, nil)
	model.SetPosition(10, 0, 0)
	scene.Add(model)

	scene.RotateZ(math.Pi / 4)
	scene.RotateZ(math.Pi / 4)
	scene.BeginLighting()

	if got := light.WorldPosition(); !vectorsClose(got, vector.Vector{-10, 0, 0}, 1e-9) {
		t.Errorf("the light should roll with the scene, got %v", got)
	}

	if got := scene.WorldTransform(model).MultVec(UnitVector(0)); !vectorsClose(got, vector.Vector{0, 10, 0}, 1e-9) {
		t.Errorf("models should roll with the scene, got %v", got)
	}

	if scene.TriangleCount() != len(mesh.Triangles) {
		t.Errorf("expected %d triangles, got %d", len(mesh.Triangles), scene.TriangleCount())
	}

	model.Visible = false
	if scene.TriangleCount() != 0 {
		t.Error("hidden models shouldn't be counted")
	}

}
