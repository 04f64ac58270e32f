package generator

import (
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/math"
)

/**
 * @brief Creates an m x n lattice of vertices in the xz plane (y = 0),
 * centered at the origin, with the texture stretched over the whole grid.
 *
 * A grid needs at least two rows and two columns. With m == 1 or n == 1 the
 * spacing divides by zero and the positions are not defined.
 *
 * @param width The extent along x.
 * @param depth The extent along z.
 * @param m The number of rows.
 * @param n The number of columns.
 * @return A mesh with m*n vertices and (m-1)*(n-1)*2 triangles.
 */
func CreateGrid(width, depth float32, m, n uint32) MeshData {
	meshData := MeshData{}
	if m == 0 || n == 0 {
		return meshData
	}
	if m == 1 || n == 1 {
		core.LogDebug("grid %dx%d divides by zero; vertex positions are undefined", m, n)
	}

	vertexCount := m * n
	faceCount := (m - 1) * (n - 1) * 2

	halfWidth := 0.5 * width
	halfDepth := 0.5 * depth

	dx := width / float32(n-1)
	dz := depth / float32(m-1)

	du := 1.0 / float32(n-1)
	dv := 1.0 / float32(m-1)

	meshData.Vertices = make([]Vertex, vertexCount)
	for i := uint32(0); i < m; i++ {
		z := halfDepth - float32(i)*dz
		for j := uint32(0); j < n; j++ {
			x := -halfWidth + float32(j)*dx

			meshData.Vertices[i*n+j] = Vertex{
				Position: math.NewVec3(x, 0.0, z),
				Normal:   math.NewVec3Up(),
				TangentU: math.NewVec3Right(),
				// Stretch texture over grid.
				TexC: math.NewVec2(float32(j)*du, float32(i)*dv),
			}
		}
	}

	// Iterate over each quad and compute indices.
	meshData.Indices32 = make([]uint32, 0, faceCount*3)
	for i := uint32(0); i < m-1; i++ {
		for j := uint32(0); j < n-1; j++ {
			meshData.Indices32 = append(meshData.Indices32,
				i*n+j,
				i*n+j+1,
				(i+1)*n+j,

				(i+1)*n+j,
				i*n+j+1,
				(i+1)*n+j+1,
			)
		}
	}

	return meshData
}

/**
 * @brief Creates a screen aligned rectangle whose top-left corner is (x, y),
 * at a fixed depth. Coordinates are usually given in NDC space.
 */
func CreateQuad(x, y, w, h, depth float32) MeshData {
	return MeshData{
		Vertices: []Vertex{
			math.NewVertex(x, y-h, depth, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 0.0, 1.0),
			math.NewVertex(x, y, depth, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 0.0, 0.0),
			math.NewVertex(x+w, y, depth, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 1.0, 0.0),
			math.NewVertex(x+w, y-h, depth, 0.0, 0.0, -1.0, 1.0, 0.0, 0.0, 1.0, 1.0),
		},
		Indices32: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}
}
