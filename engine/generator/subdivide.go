package generator

import "github.com/spaghettifunk/geogen/engine/core"

//       v1
//       *
//      / \
//     /   \
//  m0*-----*m1
//   / \   / \
//  /   \ /   \
// *-----*-----*
// v0    m2     v2

// subdivisionPattern lists the four child triangles of one parent over its
// six local vertices [v0, v1, v2, m0, m1, m2].
var subdivisionPattern = [12]uint32{
	0, 3, 5,
	3, 4, 5,
	5, 4, 2,
	3, 1, 4,
}

/**
 * @brief Splits every triangle of the mesh into four using its edge midpoints.
 * Triangles are processed independently and vertices are not shared, so the
 * result has 4T triangles and 6T vertices for an input of T triangles.
 *
 * @param meshData The mesh to refine in place.
 */
func Subdivide(meshData *MeshData) {
	inputVertices := meshData.Vertices
	inputIndices := meshData.Indices32

	numTris := uint32(len(inputIndices) / 3)
	vertices := make([]Vertex, 0, numTris*6)
	indices := make([]uint32, 0, numTris*12)

	collapsed := 0
	for i := uint32(0); i < numTris; i++ {
		v0 := inputVertices[inputIndices[i*3+0]]
		v1 := inputVertices[inputIndices[i*3+1]]
		v2 := inputVertices[inputIndices[i*3+2]]

		m0, c0 := midPoint(v0, v1)
		m1, c1 := midPoint(v1, v2)
		m2, c2 := midPoint(v0, v2)
		for _, c := range [3]bool{c0, c1, c2} {
			if c {
				collapsed++
			}
		}

		vertices = append(vertices, v0, v1, v2, m0, m1, m2)
		for _, local := range subdivisionPattern {
			indices = append(indices, i*6+local)
		}
	}

	if collapsed > 0 {
		core.LogDebug("subdivide: %d midpoints between opposite normals or tangents left a zero vector", collapsed)
	}

	meshData.Vertices = vertices
	meshData.Indices32 = indices
	meshData.reset()
}

// SubdivideN applies Subdivide the requested number of times, clamped to MaxSubdivisions.
func SubdivideN(meshData *MeshData, numSubdivisions uint32) {
	numSubdivisions = clampSubdivisions(numSubdivisions)
	for i := uint32(0); i < numSubdivisions; i++ {
		Subdivide(meshData)
	}
}
