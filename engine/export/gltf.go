package export

import (
	"errors"
	stdmath "math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

var ErrNothingToExport = errors.New("packed geometry has no draw ranges")

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

/**
 * @brief Writes a packed geometry as a glTF 2.0 scene: one mesh and one node
 * per draw range, and one material per colour.
 */
type GLTFWriter struct {
	/** @brief Write a .glb container instead of JSON with an embedded buffer. */
	Binary bool
}

func (w *GLTFWriter) ResourceType() metadata.ResourceType {
	if w.Binary {
		return metadata.ResourceTypeGLB
	}
	return metadata.ResourceTypeGLTF
}

func (w *GLTFWriter) Write(pg *metadata.PackedGeometry, path string) error {
	doc, err := NewGLTFDocument(pg)
	if err != nil {
		return err
	}
	if w.Binary {
		return gltf.SaveBinary(doc, path)
	}
	for _, b := range doc.Buffers {
		b.EmbeddedResource()
	}
	return gltf.Save(doc, path)
}

// NewGLTFDocument converts every non-empty draw range of pg into a mesh node.
func NewGLTFDocument(pg *metadata.PackedGeometry) (*gltf.Document, error) {
	if len(pg.Submeshes) == 0 {
		return nil, ErrNothingToExport
	}

	doc := gltf.NewDocument()
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
		doc.Scene = gltf.Index(0)
	}
	doc.Scenes[0].Name = pg.Name

	offsets := sceneOffsets(pg)
	materials := make(map[[4]uint8]int)

	for i, s := range pg.Submeshes {
		vertices := pg.SubmeshVertices(s)
		indices := pg.SubmeshIndices(s)
		if len(vertices) == 0 || len(indices) == 0 {
			continue
		}

		positions := make([][3]float32, len(vertices))
		normals := make([][3]float32, len(vertices))
		tangents := make([][4]float32, len(vertices))
		texcoords := make([][2]float32, len(vertices))
		for v, vert := range vertices {
			positions[v] = [3]float32{vert.Position.X, vert.Position.Y, vert.Position.Z}
			normals[v] = [3]float32{vert.Normal.X, vert.Normal.Y, vert.Normal.Z}
			tangents[v] = [4]float32{vert.TangentU.X, vert.TangentU.Y, vert.TangentU.Z, 1}
			texcoords[v] = [2]float32{vert.TexC.X, vert.TexC.Y}
		}

		attributes := gltf.PrimitiveAttributes{
			"POSITION":   modeler.WritePosition(doc, positions),
			"NORMAL":     modeler.WriteNormal(doc, normals),
			"TANGENT":    modeler.WriteTangent(doc, tangents),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, texcoords),
		}

		var indicesAccessor int
		if len(vertices) <= stdmath.MaxUint16 {
			narrow := make([]uint16, len(indices))
			for k, idx := range indices {
				narrow[k] = uint16(idx)
			}
			indicesAccessor = modeler.WriteIndices(doc, narrow)
		} else {
			indicesAccessor = modeler.WriteIndices(doc, indices)
		}

		key := [4]uint8{s.Colour.R, s.Colour.G, s.Colour.B, s.Colour.A}
		material, ok := materials[key]
		if !ok {
			material = len(doc.Materials)
			doc.Materials = append(doc.Materials, &gltf.Material{
				Name: s.Source,
				PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
					BaseColorFactor: &[4]float64{
						float64(s.Colour.R) / 255,
						float64(s.Colour.G) / 255,
						float64(s.Colour.B) / 255,
						float64(s.Colour.A) / 255,
					},
				},
			})
			materials[key] = material
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: s.Name,
			Primitives: []*gltf.Primitive{{
				Attributes: attributes,
				Indices:    gltf.Index(indicesAccessor),
				Material:   gltf.Index(material),
				Mode:       gltf.PrimitiveTriangles,
			}},
		})

		o := offsets[i]
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        s.Name,
			Mesh:        gltf.Index(len(doc.Meshes) - 1),
			Matrix:      identityMatrix,
			Rotation:    [4]float64{0, 0, 0, 1},
			Scale:       [3]float64{1, 1, 1},
			Translation: [3]float64{float64(o.X), float64(o.Y), float64(o.Z)},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	if len(doc.Meshes) == 0 {
		return nil, ErrNothingToExport
	}
	return doc, nil
}
