package generator

import (
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/math"
)

/**
 * @brief Creates a UV sphere centered at the origin, built stack by stack
 * from the north pole to the south pole.
 *
 * Ring endpoints are duplicated so the texture seam has distinct UVs.
 *
 * @param radius The sphere radius.
 * @param sliceCount The number of longitudinal divisions.
 * @param stackCount The number of latitudinal divisions.
 * @return A mesh with 2 + (stackCount-1)*(sliceCount+1) vertices.
 */
func CreateSphere(radius float32, sliceCount, stackCount uint32) MeshData {
	meshData := MeshData{}

	topVertex := math.NewVertex(0.0, +radius, 0.0, 0.0, +1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0)
	bottomVertex := math.NewVertex(0.0, -radius, 0.0, 0.0, -1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0)

	meshData.Vertices = append(meshData.Vertices, topVertex)

	if stackCount < 2 {
		// Without a ring there is nothing for the pole fans to connect to.
		core.LogDebug("sphere with %d stacks has no rings; returning the poles only", stackCount)
		meshData.Vertices = append(meshData.Vertices, bottomVertex)
		return meshData
	}

	phiStep := math.K_PI / float32(stackCount)
	thetaStep := float32(0)
	if sliceCount > 0 {
		thetaStep = 2.0 * math.K_PI / float32(sliceCount)
	}

	// Compute vertices for each stack ring (do not count the poles as rings).
	for i := uint32(1); i < stackCount; i++ {
		phi := float32(i) * phiStep

		// Vertices of ring.
		for j := uint32(0); j <= sliceCount; j++ {
			theta := float32(j) * thetaStep

			v := Vertex{}

			// spherical to cartesian
			v.Position = math.NewVec3(
				radius*math.Sin(phi)*math.Cos(theta),
				radius*math.Cos(phi),
				radius*math.Sin(phi)*math.Sin(theta))

			// Partial derivative of P with respect to theta
			v.TangentU = math.NewVec3(
				-radius*math.Sin(phi)*math.Sin(theta),
				0.0,
				+radius*math.Sin(phi)*math.Cos(theta)).Normalize()

			v.Normal = v.Position.Normalize()

			v.TexC = math.NewVec2(theta/math.K_PI_2, phi/math.K_PI)

			meshData.Vertices = append(meshData.Vertices, v)
		}
	}

	meshData.Vertices = append(meshData.Vertices, bottomVertex)

	// The top stack fans out from the north pole, which is vertex 0.
	for i := uint32(1); i <= sliceCount; i++ {
		meshData.Indices32 = append(meshData.Indices32, 0, i+1, i)
	}

	// Inner stacks. Offset the indices to the index of the first vertex in the
	// first ring, which skips the top pole vertex.
	baseIndex := uint32(1)
	ringVertexCount := sliceCount + 1
	for i := uint32(0); i+2 < stackCount; i++ {
		for j := uint32(0); j < sliceCount; j++ {
			meshData.Indices32 = append(meshData.Indices32,
				baseIndex+i*ringVertexCount+j,
				baseIndex+i*ringVertexCount+j+1,
				baseIndex+(i+1)*ringVertexCount+j,

				baseIndex+(i+1)*ringVertexCount+j,
				baseIndex+i*ringVertexCount+j+1,
				baseIndex+(i+1)*ringVertexCount+j+1,
			)
		}
	}

	// The bottom stack fans into the south pole, which was added last.
	southPoleIndex := uint32(len(meshData.Vertices)) - 1
	baseIndex = southPoleIndex - ringVertexCount
	for i := uint32(0); i < sliceCount; i++ {
		meshData.Indices32 = append(meshData.Indices32, southPoleIndex, baseIndex+i, baseIndex+i+1)
	}

	return meshData
}

// Icosahedron corner coordinates, chosen so every corner lies on the unit sphere.
const (
	icosaX float32 = 0.525731
	icosaZ float32 = 0.850651
)

var icosahedronPositions = [12]math.Vec3{
	{X: -icosaX, Y: 0, Z: icosaZ}, {X: icosaX, Y: 0, Z: icosaZ},
	{X: -icosaX, Y: 0, Z: -icosaZ}, {X: icosaX, Y: 0, Z: -icosaZ},
	{X: 0, Y: icosaZ, Z: icosaX}, {X: 0, Y: icosaZ, Z: -icosaX},
	{X: 0, Y: -icosaZ, Z: icosaX}, {X: 0, Y: -icosaZ, Z: -icosaX},
	{X: icosaZ, Y: icosaX, Z: 0}, {X: -icosaZ, Y: icosaX, Z: 0},
	{X: icosaZ, Y: -icosaX, Z: 0}, {X: -icosaZ, Y: -icosaX, Z: 0},
}

var icosahedronIndices = [60]uint32{
	1, 4, 0, 4, 9, 0, 4, 5, 9, 8, 5, 4, 1, 8, 4,
	1, 10, 8, 10, 3, 8, 8, 3, 5, 3, 2, 5, 3, 7, 2,
	3, 10, 7, 10, 6, 7, 6, 11, 7, 6, 0, 11, 6, 1, 0,
	10, 1, 6, 11, 0, 9, 2, 11, 9, 5, 2, 9, 11, 2, 7,
}

/**
 * @brief Creates a sphere by subdividing an icosahedron and projecting every
 * vertex back onto the sphere. Triangles are far more uniform than CreateSphere.
 *
 * @param radius The sphere radius.
 * @param numSubdivisions The subdivision level, clamped to MaxSubdivisions.
 * @return A mesh with 20 * 4^level triangles: 12 vertices at level 0 and
 * 120 * 4^(level-1) after, since subdivision does not share vertices.
 */
func CreateGeosphere(radius float32, numSubdivisions uint32) MeshData {
	numSubdivisions = clampSubdivisions(numSubdivisions)

	meshData := MeshData{
		Vertices:  make([]Vertex, len(icosahedronPositions)),
		Indices32: append([]uint32(nil), icosahedronIndices[:]...),
	}
	// Seed the corners with their spherical attributes so that midpoints
	// interpolate real normals and tangents.
	for i, p := range icosahedronPositions {
		meshData.Vertices[i].Position = p
		projectOntoSphere(&meshData.Vertices[i], 1.0)
	}

	for i := uint32(0); i < numSubdivisions; i++ {
		Subdivide(&meshData)
	}

	for i := range meshData.Vertices {
		projectOntoSphere(&meshData.Vertices[i], radius)
	}

	return meshData
}

// projectOntoSphere moves v onto the sphere of the given radius and derives
// its normal, tangent and texture coordinate from the spherical angles.
func projectOntoSphere(v *Vertex, radius float32) {
	n := v.Position.Normalize()

	v.Position = n.MulScalar(radius)
	v.Normal = n

	// Derive texture coordinates from spherical coordinates.
	theta := math.Atan2(n.Z, n.X)

	// Put in [0, 2pi].
	if theta < 0.0 {
		theta += math.K_PI_2
	}

	phi := math.Acos(n.Y)

	v.TexC = math.NewVec2(theta/math.K_PI_2, phi/math.K_PI)

	// Partial derivative of P with respect to theta
	v.TangentU = math.NewVec3(
		-radius*math.Sin(phi)*math.Sin(theta),
		0.0,
		+radius*math.Sin(phi)*math.Cos(theta)).Normalize()

	// The derivative vanishes on the poles; use the same tangent as CreateSphere's poles.
	if v.TangentU == (math.Vec3{}) {
		v.TangentU = math.NewVec3Right()
	}
}
