package systems

import (
	"context"
	"testing"

	"github.com/spaghettifunk/geogen/engine/generator"
	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

// shapeFor returns a small, valid catalogue entry for the kind.
func shapeFor(kind metadata.ShapeKind) metadata.ShapeConfig {
	return metadata.ShapeConfig{
		Name:         string(kind),
		Kind:         kind,
		Width:        1,
		Height:       1,
		Depth:        1,
		Radius:       0.5,
		BottomRadius: 0.5,
		TopRadius:    0.25,
		Slices:       8,
		Stacks:       4,
		Rows:         3,
		Columns:      4,
		Subdivisions: 1,
	}
}

func newTestGeometrySystem(t *testing.T, config GeometrySystemConfig) *GeometrySystem {
	t.Helper()
	gs, err := NewGeometrySystem(&config)
	require.NoError(t, err)
	return gs
}

func TestBuildEveryKind(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})
	for _, kind := range metadata.ShapeKinds {
		t.Run(string(kind), func(t *testing.T) {
			shape := shapeFor(kind)
			config, err := gs.Build(&shape)
			require.NoError(t, err)

			assert.Equal(t, string(kind), config.Name)
			assert.Equal(t, kind, config.Kind)
			assert.NotZero(t, config.VertexCount)
			assert.NotZero(t, config.IndexCount)
			assert.Equal(t, uint32(len(config.Vertices)), config.VertexCount)
			assert.Equal(t, uint32(len(config.Indices)), config.IndexCount)
			assert.Equal(t, uint32(1), config.Instances)

			for _, v := range config.Vertices {
				assert.GreaterOrEqual(t, v.Position.X, config.Extents.Min.X)
				assert.LessOrEqual(t, v.Position.X, config.Extents.Max.X)
			}
		})
	}
	shapes, _, _ := gs.Metrics.Totals()
	assert.Equal(t, uint64(len(metadata.ShapeKinds)), shapes)
}

func TestBuildMatchesGenerator(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})

	shape := metadata.ShapeConfig{Name: "c", Kind: metadata.ShapeKindCylinder, BottomRadius: 0.5, TopRadius: 0.3, Height: 2, Slices: 12, Stacks: 3, Colour: "Gold"}
	config, err := gs.Build(&shape)
	require.NoError(t, err)

	expected := generator.CreateCylinder(0.5, 0.3, 2, 12, 3)
	assert.Equal(t, expected.Vertices, config.Vertices)
	assert.Equal(t, expected.Indices32, config.Indices)
	assert.Equal(t, colornames.Gold, config.Colour)
	assert.True(t, config.Extents.Min.Compare(math.NewVec3(-0.5, -1, -0.5), 1e-5))
	assert.True(t, config.Extents.Max.Compare(math.NewVec3(0.5, 1, 0.5), 1e-5))
}

func TestBuildQuadParameters(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})
	shape := metadata.ShapeConfig{Kind: metadata.ShapeKindQuad, X: -1, Y: 1, Width: 2, Height: 2, Z: 0.5}
	config, err := gs.Build(&shape)
	require.NoError(t, err)

	assert.Equal(t, "quad", config.Name)
	assert.Equal(t, generator.CreateQuad(-1, 1, 2, 2, 0.5).Vertices, config.Vertices)
}

func TestBuildRejectsInvalidEntries(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})

	_, err := gs.Build(&metadata.ShapeConfig{Name: "x", Kind: "teapot"})
	assert.ErrorIs(t, err, metadata.ErrUnknownShapeKind)

	_, err = gs.Build(&metadata.ShapeConfig{Name: "x", Kind: metadata.ShapeKindBox, Colour: "not-a-colour"})
	assert.ErrorIs(t, err, metadata.ErrUnknownColour)
}

func TestBuildDeduplicates(t *testing.T) {
	shape := shapeFor(metadata.ShapeKindTetrahedron)

	plain, err := newTestGeometrySystem(t, GeometrySystemConfig{}).Build(&shape)
	require.NoError(t, err)
	merged, err := newTestGeometrySystem(t, GeometrySystemConfig{Deduplicate: true}).Build(&shape)
	require.NoError(t, err)

	// One level of subdivision: four corners and six shared edge midpoints.
	assert.Equal(t, uint32(24), plain.VertexCount)
	assert.Equal(t, uint32(10), merged.VertexCount)
	assert.Equal(t, plain.IndexCount, merged.IndexCount)
	for i := range plain.Indices {
		assert.Equal(t, plain.Vertices[plain.Indices[i]], merged.Vertices[merged.Indices[i]])
	}
}

func TestBuildRegeneratesNormals(t *testing.T) {
	shape := shapeFor(metadata.ShapeKindPyramid)
	shape.Subdivisions = 0

	config, err := newTestGeometrySystem(t, GeometrySystemConfig{GenerateNormals: true}).Build(&shape)
	require.NoError(t, err)

	// The apex is shared by all four sides, so it no longer faces front.
	apex := config.Vertices[0]
	assert.InDelta(t, 1.0, apex.Normal.Length(), 1e-5)
	assert.False(t, apex.Normal.Compare(math.NewVec3(0, 0, -1), 1e-3))
}

func TestPackOffsets(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})

	box := shapeFor(metadata.ShapeKindBox)
	box.Subdivisions = 0
	box.Count = 2
	pyramid := shapeFor(metadata.ShapeKindPyramid)
	pyramid.Subdivisions = 0

	configs, err := gs.BuildAll(context.Background(), []metadata.ShapeConfig{box, pyramid}, nil)
	require.NoError(t, err)

	pg := gs.Pack("scene", configs)
	assert.Equal(t, "scene", pg.Name)
	assert.NotEqual(t, [16]byte{}, [16]byte(pg.ID))
	assert.Equal(t, uint32(24+24+5), pg.VertexCount())
	assert.Equal(t, uint32(36+36+18), pg.IndexCount())

	require.Len(t, pg.Submeshes, 3)
	expected := []struct {
		name        string
		start, base uint32
		count       uint32
	}{
		{"box", 0, 0, 36},
		{"box2", 36, 24, 36},
		{"pyramid", 72, 48, 18},
	}
	for i, e := range expected {
		s := pg.Submeshes[i]
		assert.Equal(t, e.name, s.Name)
		assert.Equal(t, e.start, s.StartIndexLocation)
		assert.Equal(t, e.base, s.BaseVertexLocation)
		assert.Equal(t, e.count, s.IndexCount)
	}

	s, ok := pg.Submesh("box2")
	require.True(t, ok)
	assert.Equal(t, "box", s.Source)
	assert.Equal(t, configs[0].Vertices, pg.SubmeshVertices(s))
	assert.Equal(t, configs[0].Indices, pg.SubmeshIndices(s))

	_, ok = pg.Submesh("sphere")
	assert.False(t, ok)
}

func TestPackEmpty(t *testing.T) {
	pg := newTestGeometrySystem(t, GeometrySystemConfig{}).Pack("empty", nil)
	assert.Zero(t, pg.VertexCount())
	assert.Empty(t, pg.Submeshes)
}

func TestBuildAllKeepsCatalogueOrder(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})
	js, err := NewJobSystem(4, 2)
	require.NoError(t, err)
	defer js.Shutdown()

	var shapes []metadata.ShapeConfig
	for _, kind := range metadata.ShapeKinds {
		shapes = append(shapes, shapeFor(kind))
	}

	parallel, err := gs.BuildAll(context.Background(), shapes, js)
	require.NoError(t, err)
	sequential, err := gs.BuildAll(context.Background(), shapes, nil)
	require.NoError(t, err)

	require.Len(t, parallel, len(shapes))
	for i := range shapes {
		assert.Equal(t, shapes[i].Name, parallel[i].Name)
		assert.Equal(t, sequential[i].Vertices, parallel[i].Vertices)
		assert.Equal(t, sequential[i].Indices, parallel[i].Indices)
	}
}

func TestBuildAllReportsFailure(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})
	js, err := NewJobSystem(2, 0)
	require.NoError(t, err)
	defer js.Shutdown()

	shapes := []metadata.ShapeConfig{
		shapeFor(metadata.ShapeKindBox),
		{Name: "broken", Kind: "teapot"},
	}
	_, err = gs.BuildAll(context.Background(), shapes, js)
	assert.ErrorIs(t, err, metadata.ErrUnknownShapeKind)

	_, err = gs.BuildAll(context.Background(), shapes, nil)
	assert.ErrorIs(t, err, metadata.ErrUnknownShapeKind)
}

func TestBuildAllCancelled(t *testing.T) {
	gs := newTestGeometrySystem(t, GeometrySystemConfig{})
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)
	defer js.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shapes := []metadata.ShapeConfig{shapeFor(metadata.ShapeKindBox)}
	_, err = gs.BuildAll(ctx, shapes, js)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = gs.BuildAll(ctx, shapes, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
