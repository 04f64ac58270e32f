package math

import "github.com/spaghettifunk/geogen/engine/core"

// GeometryGenerateNormals overwrites vertex normals with the face normal of
// the last triangle referencing each vertex.
func GeometryGenerateNormals(vertices []Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		normal := edge1.Cross(edge2).Normalize()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateTangents derives per-face tangents from the UV layout.
// Triangles with a degenerate UV mapping keep their existing tangents.
func GeometryGenerateTangents(vertices []Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		deltaU1 := vertices[i1].TexC.X - vertices[i0].TexC.X
		deltaV1 := vertices[i1].TexC.Y - vertices[i0].TexC.Y

		deltaU2 := vertices[i2].TexC.X - vertices[i0].TexC.X
		deltaV2 := vertices[i2].TexC.Y - vertices[i0].TexC.Y

		dividend := (deltaU1*deltaV2 - deltaU2*deltaV1)
		if dividend == 0 {
			continue
		}
		fc := 1.0 / dividend

		tangent := Vec3{
			(fc * (deltaV2*edge1.X - deltaV1*edge2.X)),
			(fc * (deltaV2*edge1.Y - deltaV1*edge2.Y)),
			(fc * (deltaV2*edge1.Z - deltaV1*edge2.Z))}

		t := tangent.Normalize()
		vertices[i0].TangentU = t
		vertices[i1].TangentU = t
		vertices[i2].TangentU = t
	}
}

// GeometryDeduplicateVertices merges bit-identical vertices and remaps the
// index list onto the surviving ones. First occurrence order is kept.
func GeometryDeduplicateVertices(vertices []Vertex, indices []uint32) ([]Vertex, []uint32) {
	seen := make(map[Vertex]uint32, len(vertices))
	remap := make([]uint32, len(vertices))
	outVertices := make([]Vertex, 0, len(vertices))

	for v, vert := range vertices {
		if u, found := seen[vert]; found {
			remap[v] = u
			continue
		}
		u := uint32(len(outVertices))
		seen[vert] = u
		remap[v] = u
		outVertices = append(outVertices, vert)
	}

	outIndices := make([]uint32, len(indices))
	for i, idx := range indices {
		outIndices[i] = remap[idx]
	}

	removedCount := len(vertices) - len(outVertices)
	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", removedCount, len(vertices), len(outVertices))

	return outVertices, outIndices
}

// GeometryExtents returns the axis-aligned bounds of the vertices and their centre.
func GeometryExtents(vertices []Vertex) (Extents3D, Vec3) {
	if len(vertices) == 0 {
		return Extents3D{}, Vec3{}
	}
	ext := Extents3D{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		ext.Min = ext.Min.Min(v.Position)
		ext.Max = ext.Max.Max(v.Position)
	}
	center := ext.Min.Add(ext.Max).MulScalar(0.5)
	return ext, center
}

func VertexEqual(vert0 Vertex, vert1 Vertex, tolerance float32) bool {
	return vert0.Position.Compare(vert1.Position, tolerance) &&
		vert0.Normal.Compare(vert1.Normal, tolerance) &&
		vert0.TexC.Compare(vert1.TexC, tolerance) &&
		vert0.TangentU.Compare(vert1.TangentU, tolerance)
}
