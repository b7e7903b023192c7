package orbital

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLTF writes the visible Models of the Scene to a .gltf or .glb file (picked by the path's extension). Each Model is
// written as its own mesh and node with its world transform baked into the vertices, and Materials are written as PBR
// materials, so the scene can be inspected in an external viewer as it's laid out at the time of export.
func ExportGLTF(scene *Scene, path string) error {

	doc := ExportGLTFDocument(scene)

	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb":
		err = gltf.SaveBinary(doc, path)
	case ".gltf":
		err = gltf.Save(doc, path)
	default:
		return fmt.Errorf("export %s: unsupported extension, expected .gltf or .glb", path)
	}

	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	return nil

}

// ExportGLTFDocument builds the glTF document ExportGLTF writes.
func ExportGLTFDocument(scene *Scene) *gltf.Document {

	doc := gltf.NewDocument()
	doc.Asset.Generator = "orbital"

	materialIndices := map[*Material]int{}

	for _, model := range scene.Models {

		if !model.Visible || model.Mesh == nil || len(model.Mesh.Triangles) == 0 {
			continue
		}

		world := scene.WorldTransform(model)

		positions := make([][3]float32, 0, len(model.Mesh.Vertices))
		normals := make([][3]float32, 0, len(model.Mesh.Normals))

		for _, v := range model.Mesh.Vertices {
			p := world.MultVec(v)
			positions = append(positions, [3]float32{float32(p[0]), float32(p[1]), float32(p[2])})
		}

		for _, n := range model.Mesh.Normals {
			wn := world.MultDir(n)
			if m := wn.Magnitude(); m > 0 {
				wn = wn.Scale(1 / m)
			}
			normals = append(normals, [3]float32{float32(wn[0]), float32(wn[1]), float32(wn[2])})
		}

		attributes := map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
		}

		if len(normals) == len(positions) {
			attributes[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
		}

		primitive := &gltf.Primitive{
			Indices:    gltf.Index(modeler.WriteIndices(doc, model.Mesh.Indices())),
			Attributes: attributes,
		}

		if model.Material != nil {
			index, exists := materialIndices[model.Material]
			if !exists {
				index = len(doc.Materials)
				doc.Materials = append(doc.Materials, exportMaterial(model.Material))
				materialIndices[model.Material] = index
			}
			primitive.Material = gltf.Index(index)
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       model.Name,
			Primitives: []*gltf.Primitive{primitive},
		})

		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: model.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})

		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	}

	if scene.Name != "" {
		doc.Scenes[0].Name = scene.Name
	}

	return doc

}

func exportMaterial(material *Material) *gltf.Material {

	roughness := clamp(material.Roughness, 0, 1)
	metallic := 0.0

	return &gltf.Material{
		Name:        material.Name,
		DoubleSided: material.DoubleSided,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(material.Color.R), float64(material.Color.G), float64(material.Color.B), float64(material.Color.A)},
			RoughnessFactor: &roughness,
			MetallicFactor:  &metallic,
		},
	}

}
