package generator

import (
	"testing"

	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubdivideQuadruplesTriangles(t *testing.T) {
	inputs := map[string]MeshData{
		"box":         CreateBox(1, 1, 1, 0),
		"tetrahedron": CreateTetrahedron(1, 1, 1, 0),
		"sphere":      CreateSphere(1, 8, 6),
		"grid":        CreateGrid(4, 4, 3, 3),
	}

	for name, mesh := range inputs {
		t.Run(name, func(t *testing.T) {
			triangles := mesh.TriangleCount()
			Subdivide(&mesh)
			assert.Equal(t, 4*triangles, mesh.TriangleCount())
			assert.Equal(t, 6*triangles, mesh.VertexCount())
		})
	}
}

func TestSubdivideLayout(t *testing.T) {
	mesh := MeshData{
		Vertices: []Vertex{
			math.NewVertex(0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0),
			math.NewVertex(0, 0, 2, 0, 1, 0, 1, 0, 0, 0, 1),
			math.NewVertex(2, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0),
		},
		Indices32: []uint32{0, 1, 2},
	}
	v0, v1, v2 := mesh.Vertices[0], mesh.Vertices[1], mesh.Vertices[2]

	Subdivide(&mesh)

	require.Len(t, mesh.Vertices, 6)
	assert.Equal(t, v0, mesh.Vertices[0])
	assert.Equal(t, v1, mesh.Vertices[1])
	assert.Equal(t, v2, mesh.Vertices[2])
	assert.Equal(t, MidPoint(v0, v1), mesh.Vertices[3])
	assert.Equal(t, MidPoint(v1, v2), mesh.Vertices[4])
	assert.Equal(t, MidPoint(v0, v2), mesh.Vertices[5])
	assert.Equal(t, []uint32{0, 3, 5, 3, 4, 5, 5, 4, 2, 3, 1, 4}, mesh.Indices32)
}

func TestSubdivideKeepsWinding(t *testing.T) {
	mesh := CreateBox(2, 2, 2, 2)
	for tri := 0; tri < len(mesh.Indices32); tri += 3 {
		n, c := faceNormalAndCentroid(mesh, tri)
		assert.Greater(t, n.Dot(c), float32(0), "triangle %d faces inwards", tri/3)
	}
}

func TestSubdivisionClamp(t *testing.T) {
	assert.Equal(t, CreateBox(1, 2, 3, 6), CreateBox(1, 2, 3, 10))
	assert.Equal(t, CreateTetrahedron(1, 1, 1, 6), CreateTetrahedron(1, 1, 1, 10))
	assert.Equal(t, CreateWedge(1, 1, 1, 6), CreateWedge(1, 1, 1, 7))

	if testing.Short() {
		t.Skip("skipping level 6 geosphere in short mode")
	}
	assert.Equal(t, CreateGeosphere(0.5, 6), CreateGeosphere(0.5, 10))
}

func TestSubdivideNClamps(t *testing.T) {
	a := CreateTetrahedron(1, 1, 1, 0)
	b := a.Clone()
	SubdivideN(&a, 6)
	SubdivideN(&b, 100)
	assert.Equal(t, a, b)
	assert.Equal(t, uint32(4*4096), a.TriangleCount())
}

func TestMidPointUnitLength(t *testing.T) {
	sphere := CreateSphere(1, 16, 12)
	for i := 1; i < len(sphere.Vertices); i++ {
		a, b := sphere.Vertices[i-1], sphere.Vertices[i]
		if a.Normal.Add(b.Normal) == (math.Vec3{}) {
			continue
		}
		m := MidPoint(a, b)
		assert.InDelta(t, 1.0, m.Normal.Length(), 1e-5)
		assert.InDelta(t, 1.0, m.TangentU.Length(), 1e-5)
	}
}

func TestMidPointAverages(t *testing.T) {
	a := math.NewVertex(0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0)
	b := math.NewVertex(2, 4, -2, 0, 1, 0, 0, 0, 1, 1, 2)

	m := MidPoint(a, b)
	assert.Equal(t, math.NewVec3(1, 2, -1), m.Position)
	assert.Equal(t, math.NewVec2(0.5, 1), m.TexC)
	assert.True(t, m.Normal.Compare(math.NewVec3(0.70710677, 0.70710677, 0), 1e-6))
	assert.Equal(t, math.NewVec3(0, 0, 1), m.TangentU)
}

func TestMidPointOppositeNormals(t *testing.T) {
	a := math.NewVertex(0, 0, 0, 0, 0, -1, 1, 0, 0, 0, 0)
	b := math.NewVertex(1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0)

	m, collapsed := midPoint(a, b)
	assert.True(t, collapsed)
	assert.Equal(t, math.Vec3{}, m.Normal)
	assert.False(t, math.IsNaN(m.Normal.X))
	assert.Equal(t, math.NewVec3Right(), m.TangentU)
}

// faceNormalAndCentroid returns the unnormalized normal of the triangle
// starting at index tri, and its centroid.
func faceNormalAndCentroid(mesh MeshData, tri int) (math.Vec3, math.Vec3) {
	p0 := mesh.Vertices[mesh.Indices32[tri+0]].Position
	p1 := mesh.Vertices[mesh.Indices32[tri+1]].Position
	p2 := mesh.Vertices[mesh.Indices32[tri+2]].Position
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	c := p0.Add(p1).Add(p2).MulScalar(1.0 / 3.0)
	return n, c
}
