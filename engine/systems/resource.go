package systems

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

var (
	ErrWriterExists = errors.New("a writer for this resource type is already registered")
	ErrNoWriter     = errors.New("no writer registered for resource type")
)

/** @brief An exporter for one resource type. All registered writers use this. */
type ResourceWriter interface {
	ResourceType() metadata.ResourceType
	Write(pg *metadata.PackedGeometry, path string) error
}

/** @brief The configuration for the resource system */
type ResourceSystemConfig struct {
	/** @brief The directory every resource is written to. Created on demand. */
	OutputDir string
}

type ResourceSystem struct {
	Config            ResourceSystemConfig
	RegisteredWriters map[metadata.ResourceType]ResourceWriter
}

func NewResourceSystem(config ResourceSystemConfig) (*ResourceSystem, error) {
	if len(config.OutputDir) == 0 {
		config.OutputDir = "."
	}
	rs := &ResourceSystem{
		Config:            config,
		RegisteredWriters: make(map[metadata.ResourceType]ResourceWriter),
	}
	core.LogInfo("Resource system initialized with output path '%s'.", config.OutputDir)
	return rs, nil
}

func (rs *ResourceSystem) RegisterWriter(writer ResourceWriter) error {
	rt := writer.ResourceType()
	if _, ok := rs.RegisteredWriters[rt]; ok {
		core.LogError("resource system - writer of type %s already exists and will not be registered.", rt)
		return fmt.Errorf("%w: %s", ErrWriterExists, rt)
	}
	rs.RegisteredWriters[rt] = writer
	core.LogDebug("Writer for %s registered.", rt)
	return nil
}

// Path returns where a resource of the given type is written for pg.
func (rs *ResourceSystem) Path(pg *metadata.PackedGeometry, resourceType metadata.ResourceType) string {
	name := pg.Name
	if len(name) == 0 {
		name = metadata.DefaultGeometryName
	}
	return filepath.Join(rs.Config.OutputDir, name+resourceType.Extension())
}

/**
 * @brief Writes the packed geometry once per requested resource type.
 *
 * @param pg The packed geometry.
 * @param types The resource types to write, in order.
 * @return A description of every file written.
 */
func (rs *ResourceSystem) Write(pg *metadata.PackedGeometry, types []metadata.ResourceType) ([]metadata.Resource, error) {
	if err := os.MkdirAll(rs.Config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("resource system: %w", err)
	}

	out := make([]metadata.Resource, 0, len(types))
	for _, rt := range types {
		writer, ok := rs.RegisteredWriters[rt]
		if !ok {
			return out, fmt.Errorf("%w: %s", ErrNoWriter, rt)
		}
		path := rs.Path(pg, rt)
		if err := writer.Write(pg, path); err != nil {
			return out, fmt.Errorf("writing %s: %w", path, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return out, err
		}
		out = append(out, metadata.Resource{
			ResourceType: rt,
			Name:         filepath.Base(path),
			FullPath:     path,
			DataSize:     uint64(info.Size()),
		})
		core.LogInfo("wrote %s (%d bytes)", path, info.Size())
	}
	return out, nil
}

func (rs *ResourceSystem) Shutdown() error {
	clear(rs.RegisteredWriters)
	return nil
}
