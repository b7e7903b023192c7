package orbital

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func exportScene(t *testing.T) *Scene {

	t.Helper()

	sphere, err := NewSphere(3, 16, 8)
	if err != nil {
		t.Fatal(err)
	}

	torus, err := NewTorus(9.9, 0.1, 8, 32, math.Pi*2)
	if err != nil {
		t.Fatal(err)
	}

	shared := NewMaterial("Particle", NewColor(1, 1, 1, 1))

	scene := NewScene("Export")

	planet := NewModel("Sphere", sphere, NewMaterial("Sphere", NewColor(0, 1, 0.2, 1)))
	planet.SetPosition(5, 0, 0)

	ring := NewModel("Torus", torus, shared)
	ringCopy := ring.Clone()
	ringCopy.Name = "Torus.001"
	ringCopy.RotateX(1)

	hidden := NewModel("Hidden", sphere, shared)
	hidden.Visible = false

	scene.Add(planet, ring, ringCopy, hidden)

	return scene

}

func TestExportGLTFDocument(t *testing.T) {

	doc := ExportGLTFDocument(exportScene(t))

	if len(doc.Meshes) != 3 || len(doc.Nodes) != 3 || len(doc.Scenes[0].Nodes) != 3 {
		t.Fatalf("expected 3 meshes and nodes (hidden models are skipped), got %d meshes, %d nodes", len(doc.Meshes), len(doc.Nodes))
	}

	if len(doc.Materials) != 2 {
		t.Fatalf("shared materials should be written once; got %d materials", len(doc.Materials))
	}

	if doc.Nodes[1].Name != "Torus" || doc.Nodes[2].Name != "Torus.001" {
		t.Errorf("nodes should keep the models' names and order, got %q and %q", doc.Nodes[1].Name, doc.Nodes[2].Name)
	}

	// The sphere's position is baked into its vertices.
	positions, err := modeler.ReadPosition(doc, doc.Accessors[doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]], nil)
	if err != nil {
		t.Fatal(err)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, p := range positions {
		minX = math.Min(minX, float64(p[0]))
		maxX = math.Max(maxX, float64(p[0]))
	}

	if math.Abs(minX-2) > 1e-5 || math.Abs(maxX-8) > 1e-5 {
		t.Errorf("expected the sphere to span x = 2 to 8, got %v to %v", minX, maxX)
	}

}

func TestExportGLTF(t *testing.T) {

	scene := exportScene(t)
	dir := t.TempDir()

	for _, name := range []string{"scene.gltf", "scene.glb"} {

		path := filepath.Join(dir, name)

		if err := ExportGLTF(scene, path); err != nil {
			t.Fatal(err)
		}

		doc, err := gltf.Open(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		if len(doc.Meshes) != 3 {
			t.Errorf("%s: expected 3 meshes, got %d", name, len(doc.Meshes))
		}

		if doc.Materials[1].PBRMetallicRoughness.RoughnessFactor == nil || *doc.Materials[1].PBRMetallicRoughness.RoughnessFactor != 1 {
			t.Errorf("%s: expected the particle material's roughness to be written", name)
		}

	}

	if err := ExportGLTF(scene, filepath.Join(dir, "scene.obj")); err == nil {
		t.Error("expected an error for an unsupported extension")
	}

}
