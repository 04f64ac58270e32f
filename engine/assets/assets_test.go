package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogue = `
name = "watched"

[[shape]]
name = "box"
kind = "box"
width = 1.0
height = 1.0
depth = 1.0
`

func newTestAssetManager(t *testing.T) *AssetManager {
	t.Helper()
	am, err := NewAssetManager()
	require.NoError(t, err)
	t.Cleanup(func() { am.Shutdown() })
	return am
}

func writeCatalogue(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadCatalogue(t *testing.T) {
	am := newTestAssetManager(t)
	path := filepath.Join(t.TempDir(), "shapes.toml")
	writeCatalogue(t, path, catalogue)

	c, err := am.LoadCatalogue(path)
	require.NoError(t, err)
	assert.Equal(t, "watched", c.Name)

	info, ok := am.Asset(path)
	require.True(t, ok)
	assert.False(t, info.LastLoaded.IsZero())
	assert.False(t, info.Watched)
}

func TestLoadCatalogueUnknownExtension(t *testing.T) {
	am := newTestAssetManager(t)
	_, err := am.LoadCatalogue(filepath.Join(t.TempDir(), "shapes.yaml"))
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestWatchReportsWrites(t *testing.T) {
	am := newTestAssetManager(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.toml")
	writeCatalogue(t, path, catalogue)

	require.NoError(t, am.Watch(path))

	// Other files in the directory are ignored.
	writeCatalogue(t, filepath.Join(dir, "other.toml"), catalogue)
	writeCatalogue(t, path, catalogue+"\n# edited\n")

	select {
	case changed := <-am.Changes():
		assert.Equal(t, path, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	info, ok := am.Asset(path)
	require.True(t, ok)
	assert.True(t, info.Watched)
}

func TestShutdown(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Shutdown())
	require.NoError(t, am.Shutdown())

	assert.ErrorIs(t, am.Watch(filepath.Join(t.TempDir(), "shapes.toml")), ErrClosed)
}
