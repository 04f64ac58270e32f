package math

import (
	"gonum.org/v1/gonum/stat"
)

// MeshStats summarises the triangle quality of an indexed mesh.
type MeshStats struct {
	VertexCount   int
	TriangleCount int
	// Degenerate counts triangles with (near) zero area.
	Degenerate int
	EdgeMean   float64
	EdgeStdDev float64
	AreaMean   float64
	AreaStdDev float64
}

// EdgeVariation is the coefficient of variation of the edge lengths.
// Lower means a more uniform tessellation.
func (s MeshStats) EdgeVariation() float64 {
	if s.EdgeMean == 0 {
		return 0
	}
	return s.EdgeStdDev / s.EdgeMean
}

func ComputeMeshStats(vertices []Vertex, indices []uint32) MeshStats {
	triangles := len(indices) / 3
	out := MeshStats{
		VertexCount:   len(vertices),
		TriangleCount: triangles,
	}
	if triangles == 0 {
		return out
	}

	edges := make([]float64, 0, triangles*3)
	areas := make([]float64, 0, triangles)
	for t := 0; t < triangles; t++ {
		p0 := vertices[indices[t*3+0]].Position
		p1 := vertices[indices[t*3+1]].Position
		p2 := vertices[indices[t*3+2]].Position

		edges = append(edges,
			float64(p0.Distance(p1)),
			float64(p1.Distance(p2)),
			float64(p2.Distance(p0)))

		area := 0.5 * float64(p1.Sub(p0).Cross(p2.Sub(p0)).Length())
		if area <= float64(K_FLOAT_EPSILON) {
			out.Degenerate++
		}
		areas = append(areas, area)
	}

	out.EdgeMean, out.EdgeStdDev = stat.MeanStdDev(edges, nil)
	out.AreaMean, out.AreaStdDev = stat.MeanStdDev(areas, nil)
	if triangles == 1 {
		out.AreaStdDev = 0
	}
	return out
}
