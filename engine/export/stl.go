package export

import (
	"github.com/hschendel/stl"
	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

// STLWriter writes every draw range into one binary STL solid, spread out
// with the same layout as the glTF scene.
type STLWriter struct{}

func (w *STLWriter) ResourceType() metadata.ResourceType {
	return metadata.ResourceTypeSTL
}

func (w *STLWriter) Write(pg *metadata.PackedGeometry, path string) error {
	solid, err := NewSTLSolid(pg)
	if err != nil {
		return err
	}
	return solid.WriteFile(path)
}

// NewSTLSolid emits one facet per triangle with the normal taken from the winding.
func NewSTLSolid(pg *metadata.PackedGeometry) (*stl.Solid, error) {
	if len(pg.Submeshes) == 0 {
		return nil, ErrNothingToExport
	}

	solid := &stl.Solid{Name: pg.Name}
	offsets := sceneOffsets(pg)
	for i, s := range pg.Submeshes {
		vertices := pg.SubmeshVertices(s)
		indices := pg.SubmeshIndices(s)
		for t := 0; t+2 < len(indices); t += 3 {
			p0 := vertices[indices[t+0]].Position.Add(offsets[i])
			p1 := vertices[indices[t+1]].Position.Add(offsets[i])
			p2 := vertices[indices[t+2]].Position.Add(offsets[i])
			n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()

			solid.Triangles = append(solid.Triangles, stl.Triangle{
				Normal:   stlVec(n),
				Vertices: [3]stl.Vec3{stlVec(p0), stlVec(p1), stlVec(p2)},
			})
		}
	}
	return solid, nil
}

func stlVec(v math.Vec3) stl.Vec3 {
	return stl.Vec3{v.X, v.Y, v.Z}
}
