package testbed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/geogen/engine"
	"github.com/spaghettifunk/geogen/engine/assets/loaders"
	"github.com/spaghettifunk/geogen/engine/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogueIsValid(t *testing.T) {
	c := DefaultCatalogue()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Shapes, 13)
}

func TestCatalogueFileMatchesBuiltIn(t *testing.T) {
	loaded, err := (&loaders.CatalogueLoader{}).Load("catalogue.toml")
	require.NoError(t, err)
	builtIn := DefaultCatalogue()

	assert.Equal(t, builtIn.Name, loaded.Name)
	assert.Equal(t, builtIn.Formats, loaded.Formats)
	assert.Equal(t, builtIn.Shapes, loaded.Shapes)
}

func TestDefaultCataloguePacks(t *testing.T) {
	gs, err := systems.NewGeometrySystem(&systems.GeometrySystemConfig{})
	require.NoError(t, err)

	c := DefaultCatalogue()
	configs, err := gs.BuildAll(context.Background(), c.Shapes, nil)
	require.NoError(t, err)
	pg := gs.Pack(c.Name, configs)

	// 5 boxes, 5 cylinders, 5 cones, 4 wedges and one of everything else.
	assert.Len(t, pg.Submeshes, 28)
	for _, name := range []string{"box", "box5", "cylinder5", "cone5", "wedge4", "geosphere"} {
		_, ok := pg.Submesh(name)
		assert.True(t, ok, name)
	}
	_, ok := pg.Submesh("wedge5")
	assert.False(t, ok)

	last := pg.Submeshes[len(pg.Submeshes)-1]
	assert.Equal(t, pg.IndexCount(), last.StartIndexLocation+last.IndexCount)
	assert.Equal(t, pg.VertexCount(), last.BaseVertexLocation+last.VertexCount)
}

func TestGenerateDefaultScene(t *testing.T) {
	if testing.Short() {
		t.Skip("writes the whole scene")
	}
	dir := t.TempDir()
	tg := NewTestGame(&engine.ApplicationConfig{OutputDir: dir, Formats: []string{"glb", "png"}})
	assert.Equal(t, CatalogueName, tg.ApplicationConfig.Name)

	e, err := engine.New(tg.Game)
	require.NoError(t, err)
	defer e.Shutdown()

	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))
	assert.FileExists(t, filepath.Join(dir, "shapes.glb"))
	assert.FileExists(t, filepath.Join(dir, "shapes.png"))
}
