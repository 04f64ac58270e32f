package systems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	resourceType metadata.ResourceType
	payload      []byte
	calls        int
}

func (w *fakeWriter) ResourceType() metadata.ResourceType {
	return w.resourceType
}

func (w *fakeWriter) Write(_ *metadata.PackedGeometry, path string) error {
	w.calls++
	return os.WriteFile(path, w.payload, 0o644)
}

func TestResourceSystemWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	rs, err := NewResourceSystem(ResourceSystemConfig{OutputDir: dir})
	require.NoError(t, err)

	stl := &fakeWriter{resourceType: metadata.ResourceTypeSTL, payload: []byte("solid")}
	png := &fakeWriter{resourceType: metadata.ResourceTypePNG, payload: []byte("png!!!")}
	require.NoError(t, rs.RegisterWriter(stl))
	require.NoError(t, rs.RegisterWriter(png))
	assert.ErrorIs(t, rs.RegisterWriter(&fakeWriter{resourceType: metadata.ResourceTypeSTL}), ErrWriterExists)

	pg := &metadata.PackedGeometry{Name: "shapes"}
	written, err := rs.Write(pg, []metadata.ResourceType{metadata.ResourceTypeSTL, metadata.ResourceTypePNG})
	require.NoError(t, err)
	require.Len(t, written, 2)

	assert.Equal(t, "shapes.stl", written[0].Name)
	assert.Equal(t, filepath.Join(dir, "shapes.stl"), written[0].FullPath)
	assert.Equal(t, uint64(5), written[0].DataSize)
	assert.Equal(t, metadata.ResourceTypePNG, written[1].ResourceType)
	assert.Equal(t, uint64(6), written[1].DataSize)
	assert.Equal(t, 1, stl.calls)
	assert.FileExists(t, written[1].FullPath)
}

func TestResourceSystemMissingWriter(t *testing.T) {
	rs, err := NewResourceSystem(ResourceSystemConfig{OutputDir: t.TempDir()})
	require.NoError(t, err)

	_, err = rs.Write(&metadata.PackedGeometry{Name: "x"}, []metadata.ResourceType{metadata.ResourceTypeGLB})
	assert.ErrorIs(t, err, ErrNoWriter)
}

func TestResourceSystemDefaultName(t *testing.T) {
	rs, err := NewResourceSystem(ResourceSystemConfig{})
	require.NoError(t, err)
	assert.Equal(t, ".", rs.Config.OutputDir)
	assert.Equal(t, "default.glb", rs.Path(&metadata.PackedGeometry{}, metadata.ResourceTypeGLB))
}
