package metadata

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/spaghettifunk/geogen/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents the configuration for a generated geometry, before it is
 * packed into a shared buffer.
 */
type GeometryConfig struct {
	/** @brief The Name of the geometry. */
	Name string
	/** @brief The shape family that produced the geometry. */
	Kind ShapeKind
	/** @brief The number of vertices. */
	VertexCount uint32
	/** @brief An array of Vertices. */
	Vertices []math.Vertex
	/** @brief The number of indices. */
	IndexCount uint32
	/** @brief An array of Indices. */
	Indices []uint32

	Center  math.Vec3
	Extents math.Extents3D

	/** @brief The colour used when the geometry is previewed. */
	Colour color.RGBA
	/** @brief The number of draw ranges to emit for this geometry. Always at least one. */
	Instances uint32
	/** @brief How long the builder took, in milliseconds. */
	ElapsedMS float64
}

/**
 * @brief A named draw range into a PackedGeometry.
 * Indices in the range are relative to BaseVertexLocation.
 */
type SubmeshGeometry struct {
	/** @brief The draw range name. Duplicates are numbered from 2. */
	Name string
	/** @brief The name of the catalogue entry this range was built from. */
	Source string
	/** @brief The number of indices in the range. */
	IndexCount uint32
	/** @brief The offset of the first index in the packed index buffer. */
	StartIndexLocation uint32
	/** @brief The number of vertices owned by the range. */
	VertexCount uint32
	/** @brief The offset added to every index of the range. */
	BaseVertexLocation uint32

	Center  math.Vec3
	Extents math.Extents3D
	Colour  color.RGBA
}

/**
 * @brief Every generated mesh concatenated into one vertex/index buffer pair.
 */
type PackedGeometry struct {
	/** @brief The identifier of this packing run. */
	ID uuid.UUID
	/** @brief The name of the catalogue the geometry was built from. */
	Name string

	Vertices  []math.Vertex
	Indices   []uint32
	Submeshes []SubmeshGeometry
}

func (pg *PackedGeometry) VertexCount() uint32 {
	return uint32(len(pg.Vertices))
}

func (pg *PackedGeometry) IndexCount() uint32 {
	return uint32(len(pg.Indices))
}

// Submesh looks up a draw range by name.
func (pg *PackedGeometry) Submesh(name string) (SubmeshGeometry, bool) {
	for _, s := range pg.Submeshes {
		if s.Name == name {
			return s, true
		}
	}
	return SubmeshGeometry{}, false
}

// SubmeshVertices returns the vertices owned by the draw range.
func (pg *PackedGeometry) SubmeshVertices(s SubmeshGeometry) []math.Vertex {
	return pg.Vertices[s.BaseVertexLocation : s.BaseVertexLocation+s.VertexCount]
}

// SubmeshIndices returns the indices of the draw range, relative to its base vertex.
func (pg *PackedGeometry) SubmeshIndices(s SubmeshGeometry) []uint32 {
	return pg.Indices[s.StartIndexLocation : s.StartIndexLocation+s.IndexCount]
}
