package export

import (
	stdmath "math"

	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

// gridLayout places draw ranges row by row on a square grid.
type gridLayout struct {
	columns int
	rows    int
}

func newGridLayout(count int) gridLayout {
	if count <= 0 {
		return gridLayout{}
	}
	columns := int(stdmath.Ceil(stdmath.Sqrt(float64(count))))
	rows := (count + columns - 1) / columns
	return gridLayout{columns: columns, rows: rows}
}

func (g gridLayout) cell(i int) (column, row int) {
	return i % g.columns, i / g.columns
}

// boundingRadius is half the diagonal of the draw range's extents.
func boundingRadius(s metadata.SubmeshGeometry) float32 {
	return s.Extents.Max.Sub(s.Extents.Min).Length() * 0.5
}

/**
 * @brief Computes a translation per draw range that spreads them over the xz
 * plane, centred on the origin, so that no two bounding spheres overlap.
 */
func sceneOffsets(pg *metadata.PackedGeometry) []math.Vec3 {
	grid := newGridLayout(len(pg.Submeshes))

	var spacing float32
	for _, s := range pg.Submeshes {
		spacing = max(spacing, 2.5*boundingRadius(s))
	}
	if spacing == 0 {
		spacing = 1
	}

	offsets := make([]math.Vec3, len(pg.Submeshes))
	for i, s := range pg.Submeshes {
		column, row := grid.cell(i)
		cell := math.NewVec3(
			(float32(column)-0.5*float32(grid.columns-1))*spacing,
			0,
			(float32(row)-0.5*float32(grid.rows-1))*spacing,
		)
		// Move the draw range's centre onto its cell.
		offsets[i] = cell.Sub(s.Center)
	}
	return offsets
}
