package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, uint32(6), Clamp(uint32(10), 0, 6))
	assert.Equal(t, uint32(3), Clamp(uint32(3), 0, 6))
	assert.Equal(t, float32(-1), Clamp(float32(-4), -1, 1))
}

func TestVec3NormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())

	n := NewVec3(3, 0, 4).Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-6)
	assert.True(t, n.Compare(NewVec3(0.6, 0, 0.8), 1e-6))
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3Right()
	y := NewVec3Up()
	assert.Equal(t, NewVec3(0, 0, 1), x.Cross(y))
}

func TestMat4EulerY(t *testing.T) {
	r := NewMat4EulerY(K_HALF_PI)
	p := NewVec3(1, 0, 0).Transform(r)
	assert.True(t, p.Compare(NewVec3(0, 0, -1), 1e-6), "got %v", p)
}

func TestGeometryExtents(t *testing.T) {
	verts := []Vertex{
		{Position: NewVec3(-1, 2, 0)},
		{Position: NewVec3(3, -2, 1)},
		{Position: NewVec3(0, 0, -5)},
	}
	ext, center := GeometryExtents(verts)
	assert.Equal(t, NewVec3(-1, -2, -5), ext.Min)
	assert.Equal(t, NewVec3(3, 2, 1), ext.Max)
	assert.Equal(t, NewVec3(1, 0, -2), center)
}

func TestGeometryDeduplicateVertices(t *testing.T) {
	a := NewVertex(0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0)
	b := NewVertex(1, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0)
	c := NewVertex(0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 1)
	d := NewVertex(1, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1)

	// Two triangles of a quad, emitted without sharing.
	verts := []Vertex{a, c, b, b, c, d}
	indices := []uint32{0, 1, 2, 3, 4, 5}

	outVerts, outIndices := GeometryDeduplicateVertices(verts, indices)
	require.Len(t, outVerts, 4)
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, outIndices)
	for i, idx := range indices {
		assert.Equal(t, verts[idx], outVerts[outIndices[i]])
	}
}

func TestGeometryGenerateNormals(t *testing.T) {
	verts := []Vertex{
		{Position: NewVec3(0, 0, 0)},
		{Position: NewVec3(0, 0, 1)},
		{Position: NewVec3(1, 0, 0)},
	}
	GeometryGenerateNormals(verts, []uint32{0, 1, 2})
	for _, v := range verts {
		assert.True(t, v.Normal.Compare(NewVec3Up(), 1e-6), "got %v", v.Normal)
	}
}

func TestGeometryGenerateTangents(t *testing.T) {
	verts := []Vertex{
		{Position: NewVec3(0, 0, 0), TexC: NewVec2(0, 1)},
		{Position: NewVec3(0, 1, 0), TexC: NewVec2(0, 0)},
		{Position: NewVec3(1, 1, 0), TexC: NewVec2(1, 0)},
	}
	GeometryGenerateTangents(verts, []uint32{0, 1, 2})
	for _, v := range verts {
		// U grows along +x.
		assert.True(t, v.TangentU.Compare(NewVec3Right(), 1e-5), "got %v", v.TangentU)
	}

	// Degenerate UVs leave the tangent alone.
	flat := []Vertex{
		{Position: NewVec3(0, 0, 0), TangentU: NewVec3Right()},
		{Position: NewVec3(0, 1, 0), TangentU: NewVec3Right()},
		{Position: NewVec3(1, 1, 0), TangentU: NewVec3Right()},
	}
	GeometryGenerateTangents(flat, []uint32{0, 1, 2})
	assert.Equal(t, NewVec3Right(), flat[0].TangentU)
}

func TestComputeMeshStats(t *testing.T) {
	verts := []Vertex{
		{Position: NewVec3(0, 0, 0)},
		{Position: NewVec3(1, 0, 0)},
		{Position: NewVec3(0, 1, 0)},
		{Position: NewVec3(2, 0, 0)},
	}
	// The second triangle is collinear.
	stats := ComputeMeshStats(verts, []uint32{0, 1, 2, 0, 1, 3})
	assert.Equal(t, 2, stats.TriangleCount)
	assert.Equal(t, 4, stats.VertexCount)
	assert.Equal(t, 1, stats.Degenerate)
	assert.InDelta(t, 0.25, stats.AreaMean, 1e-6)
	assert.Greater(t, stats.EdgeVariation(), 0.0)

	empty := ComputeMeshStats(nil, nil)
	assert.Zero(t, empty.TriangleCount)
	assert.Zero(t, empty.EdgeVariation())
}
