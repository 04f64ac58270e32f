package generator

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/math"
)

/** @brief The hard ceiling on subdivision levels applied by every builder. */
const MaxSubdivisions uint32 = 6

var ErrIndexOverflow = errors.New("mesh has more vertices than a 16-bit index can address")

type Vertex = math.Vertex

/**
 * @brief A triangle mesh produced by one builder call.
 * Indices32 holds one triangle per triple, every value < len(Vertices).
 */
type MeshData struct {
	Vertices  []Vertex
	Indices32 []uint32

	indices16 []uint16
}

func (m *MeshData) VertexCount() uint32 {
	return uint32(len(m.Vertices))
}

func (m *MeshData) IndexCount() uint32 {
	return uint32(len(m.Indices32))
}

func (m *MeshData) TriangleCount() uint32 {
	return uint32(len(m.Indices32) / 3)
}

/**
 * @brief Returns the index list narrowed to 16 bits, built on first use.
 * Values are truncated; asking for this view on a mesh with more than
 * 65535 vertices is a caller error. Use CheckedIndices16 to get an error instead.
 * The view is rebuilt when Indices32 changes length; callers that rewrite
 * Indices32 in place must call Subdivide or work on a Clone.
 */
func (m *MeshData) GetIndices16() []uint16 {
	if len(m.indices16) != len(m.Indices32) {
		m.indices16 = make([]uint16, len(m.Indices32))
		for i, idx := range m.Indices32 {
			m.indices16[i] = uint16(idx)
		}
	}
	return m.indices16
}

// CheckedIndices16 is GetIndices16 for meshes that may not fit.
func (m *MeshData) CheckedIndices16() ([]uint16, error) {
	if len(m.Vertices) > stdmath.MaxUint16 {
		return nil, fmt.Errorf("%w: %d vertices", ErrIndexOverflow, len(m.Vertices))
	}
	return m.GetIndices16(), nil
}

// FitsIndices16 reports whether every vertex is addressable by a 16-bit index.
func (m *MeshData) FitsIndices16() bool {
	return len(m.Vertices) <= stdmath.MaxUint16
}

// Clone returns a deep copy that shares no storage with m.
func (m *MeshData) Clone() MeshData {
	out := MeshData{
		Vertices:  make([]Vertex, len(m.Vertices)),
		Indices32: make([]uint32, len(m.Indices32)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Indices32, m.Indices32)
	return out
}

// reset drops the cached 16-bit view after the topology has changed.
func (m *MeshData) reset() {
	m.indices16 = nil
}

func clampSubdivisions(numSubdivisions uint32) uint32 {
	if numSubdivisions > MaxSubdivisions {
		core.LogDebug("subdivision level %d clamped to %d", numSubdivisions, MaxSubdivisions)
	}
	return math.Clamp(numSubdivisions, 0, MaxSubdivisions)
}

// ratio divides num by den, yielding 0 for a zero denominator so that
// degenerate counts produce collapsed geometry instead of NaNs.
func ratio(num, den float32) float32 {
	if den == 0 {
		return 0
	}
	return num / den
}
