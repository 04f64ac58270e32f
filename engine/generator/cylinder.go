package generator

import "github.com/spaghettifunk/geogen/engine/math"

/**
 * @brief Creates a capped cylinder centered at the origin and aligned with y.
 * The radius interpolates linearly from bottomRadius to topRadius, so unequal
 * radii give a truncated cone.
 *
 * @param bottomRadius The radius of the ring at y = -height/2.
 * @param topRadius The radius of the ring at y = +height/2.
 * @param height The extent along y.
 * @param sliceCount The number of divisions around the axis.
 * @param stackCount The number of divisions along the axis.
 * @return A mesh with (stackCount+1)*(sliceCount+1) side vertices followed by both caps.
 */
func CreateCylinder(bottomRadius, topRadius, height float32, sliceCount, stackCount uint32) MeshData {
	meshData := MeshData{}

	buildFrustumSide(bottomRadius, topRadius, height, sliceCount, stackCount, &meshData)
	buildCylinderTopCap(topRadius, height, sliceCount, &meshData)
	buildCylinderBottomCap(bottomRadius, height, sliceCount, &meshData)

	return meshData
}

/**
 * @brief Creates a cone: a cylinder whose top radius is 0, closed by a bottom cap only.
 *
 * @param bottomRadius The radius of the base.
 * @param height The extent along y, apex at +height/2.
 * @param sliceCount The number of divisions around the axis.
 * @param stackCount The number of divisions along the axis.
 */
func CreateCone(bottomRadius, height float32, sliceCount, stackCount uint32) MeshData {
	meshData := MeshData{}

	buildFrustumSide(bottomRadius, 0, height, sliceCount, stackCount, &meshData)
	buildCylinderBottomCap(bottomRadius, height, sliceCount, &meshData)

	return meshData
}

// buildFrustumSide appends the side wall rings, from the bottom ring up.
func buildFrustumSide(bottomRadius, topRadius, height float32, sliceCount, stackCount uint32, meshData *MeshData) {
	baseIndex := uint32(len(meshData.Vertices))

	stackHeight := ratio(height, float32(stackCount))

	// Amount to increment radius as we move up each stack level from bottom to top.
	radiusStep := ratio(topRadius-bottomRadius, float32(stackCount))

	ringCount := stackCount + 1
	dTheta := ratio(2.0*math.K_PI, float32(sliceCount))

	// The wall is parameterized with v running top to bottom, so the
	// bitangent dP/dv = ((r0-r1)cos t, -h, (r0-r1)sin t) follows the v texture
	// coordinate. The normal is T x B.
	dr := bottomRadius - topRadius

	for i := uint32(0); i < ringCount; i++ {
		y := -0.5*height + float32(i)*stackHeight
		r := bottomRadius + float32(i)*radiusStep

		// vertices of ring
		for j := uint32(0); j <= sliceCount; j++ {
			c := math.Cos(float32(j) * dTheta)
			s := math.Sin(float32(j) * dTheta)

			vertex := Vertex{}
			vertex.Position = math.NewVec3(r*c, y, r*s)
			vertex.TexC = math.NewVec2(
				ratio(float32(j), float32(sliceCount)),
				1.0-ratio(float32(i), float32(stackCount)))

			// This is unit length.
			vertex.TangentU = math.NewVec3(-s, 0.0, c)

			bitangent := math.NewVec3(dr*c, -height, dr*s)
			vertex.Normal = vertex.TangentU.Cross(bitangent).Normalize()

			meshData.Vertices = append(meshData.Vertices, vertex)
		}
	}

	// Add one because we duplicate the first and last vertex per ring
	// since the texture coordinates are different.
	ringVertexCount := sliceCount + 1

	for i := uint32(0); i < stackCount; i++ {
		for j := uint32(0); j < sliceCount; j++ {
			meshData.Indices32 = append(meshData.Indices32,
				baseIndex+i*ringVertexCount+j,
				baseIndex+(i+1)*ringVertexCount+j,
				baseIndex+(i+1)*ringVertexCount+j+1,

				baseIndex+i*ringVertexCount+j,
				baseIndex+(i+1)*ringVertexCount+j+1,
				baseIndex+i*ringVertexCount+j+1,
			)
		}
	}
}

// capRing appends a private ring of sliceCount+1 cap vertices plus the centre
// vertex and returns the index of the first ring vertex and of the centre.
// UVs are a planar projection scaled by the height, which keeps the cap
// texture density close to the wall's.
func capRing(radius, y, normalY, height float32, sliceCount uint32, meshData *MeshData) (uint32, uint32) {
	baseIndex := uint32(len(meshData.Vertices))
	dTheta := ratio(2.0*math.K_PI, float32(sliceCount))

	for i := uint32(0); i <= sliceCount; i++ {
		x := radius * math.Cos(float32(i)*dTheta)
		z := radius * math.Sin(float32(i)*dTheta)

		u := ratio(x, height) + 0.5
		v := ratio(z, height) + 0.5

		meshData.Vertices = append(meshData.Vertices, math.NewVertex(x, y, z, 0.0, normalY, 0.0, 1.0, 0.0, 0.0, u, v))
	}

	// Cap center vertex.
	meshData.Vertices = append(meshData.Vertices, math.NewVertex(0.0, y, 0.0, 0.0, normalY, 0.0, 1.0, 0.0, 0.0, 0.5, 0.5))

	return baseIndex, uint32(len(meshData.Vertices)) - 1
}

func buildCylinderTopCap(topRadius, height float32, sliceCount uint32, meshData *MeshData) {
	baseIndex, centerIndex := capRing(topRadius, 0.5*height, 1.0, height, sliceCount, meshData)

	for i := uint32(0); i < sliceCount; i++ {
		meshData.Indices32 = append(meshData.Indices32, centerIndex, baseIndex+i+1, baseIndex+i)
	}
}

func buildCylinderBottomCap(bottomRadius, height float32, sliceCount uint32, meshData *MeshData) {
	baseIndex, centerIndex := capRing(bottomRadius, -0.5*height, -1.0, height, sliceCount, meshData)

	for i := uint32(0); i < sliceCount; i++ {
		meshData.Indices32 = append(meshData.Indices32, centerIndex, baseIndex+i, baseIndex+i+1)
	}
}
