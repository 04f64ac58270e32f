package generator

import "github.com/spaghettifunk/geogen/engine/math"

// cuboidFace describes one face of an axis-aligned box. Corners are sign
// multipliers applied to the half extents.
type cuboidFace struct {
	normal  math.Vec3
	tangent math.Vec3
	corners [4]math.Vec3
	uvs     [4]math.Vec2
}

var (
	uvQuad = [4]math.Vec2{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	// The back and bottom faces are mirrored in U.
	uvQuadMirrored = [4]math.Vec2{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}
)

// cuboidFaces is ordered front, back, top, bottom, left, right.
var cuboidFaces = [6]cuboidFace{
	{
		normal: math.Vec3{Z: -1}, tangent: math.Vec3{X: 1},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}},
		uvs:     uvQuad,
	},
	{
		normal: math.Vec3{Z: 1}, tangent: math.Vec3{X: -1},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}},
		uvs:     uvQuadMirrored,
	},
	{
		normal: math.Vec3{Y: 1}, tangent: math.Vec3{X: 1},
		corners: [4]math.Vec3{{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}},
		uvs:     uvQuad,
	},
	{
		normal: math.Vec3{Y: -1}, tangent: math.Vec3{X: -1},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}},
		uvs:     uvQuadMirrored,
	},
	{
		normal: math.Vec3{X: -1}, tangent: math.Vec3{Z: -1},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}},
		uvs:     uvQuad,
	},
	{
		normal: math.Vec3{X: 1}, tangent: math.Vec3{Z: 1},
		corners: [4]math.Vec3{{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}},
		uvs:     uvQuad,
	},
}

const (
	faceFront = iota
	faceBack
	faceTop
	faceBottom
	faceLeft
	faceRight
)

// cuboidVertices emits the 24 face vertices of a box with the given half
// extents. shape may move a corner after it has been scaled.
func cuboidVertices(halfExtents math.Vec3, shape func(math.Vec3) math.Vec3) []Vertex {
	vertices := make([]Vertex, 0, len(cuboidFaces)*4)
	for _, f := range cuboidFaces {
		for c, corner := range f.corners {
			p := corner.Mul(halfExtents)
			if shape != nil {
				p = shape(p)
			}
			vertices = append(vertices, Vertex{
				Position: p,
				Normal:   f.normal,
				TangentU: f.tangent,
				TexC:     f.uvs[c],
			})
		}
	}
	return vertices
}

// appendQuad adds the two triangles of the face whose first vertex is base.
func appendQuad(indices []uint32, base uint32) []uint32 {
	return append(indices, base+0, base+1, base+2, base+0, base+2, base+3)
}

// appendQuadReversed is appendQuad with the opposite winding.
func appendQuadReversed(indices []uint32, base uint32) []uint32 {
	return append(indices, base+0, base+2, base+1, base+0, base+3, base+2)
}

func newCuboid(width, height, depth float32, numSubdivisions uint32, shape func(math.Vec3) math.Vec3) MeshData {
	halfExtents := math.NewVec3(0.5*width, 0.5*height, 0.5*depth)

	meshData := MeshData{
		Vertices:  cuboidVertices(halfExtents, shape),
		Indices32: make([]uint32, 0, 36),
	}
	for f := range cuboidFaces {
		meshData.Indices32 = appendQuad(meshData.Indices32, uint32(f*4))
	}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}

/**
 * @brief Creates an axis-aligned box centered at the origin.
 * Faces do not share vertices, so each face keeps its own normal and UVs.
 *
 * @param width The extent along x.
 * @param height The extent along y.
 * @param depth The extent along z.
 * @param numSubdivisions The subdivision level, clamped to MaxSubdivisions.
 * @return A mesh with 24 vertices and 36 indices before subdivision.
 */
func CreateBox(width, height, depth float32, numSubdivisions uint32) MeshData {
	return newCuboid(width, height, depth, numSubdivisions, nil)
}

/** @brief The scale applied to the top face of a tapered box. */
const taperFactor float32 = 0.9

// CreateTaperedBox is CreateBox with every top corner pulled towards the
// centre by taperFactor, giving a frustum-like silhouette.
func CreateTaperedBox(width, height, depth float32, numSubdivisions uint32) MeshData {
	return newCuboid(width, height, depth, numSubdivisions, func(p math.Vec3) math.Vec3 {
		if p.Y > 0 {
			return p.MulScalar(taperFactor)
		}
		return p
	})
}

// CreateBar builds a cuboid bar. It is a Box under a different name, used for
// long thin proportions.
func CreateBar(width, height, depth float32, numSubdivisions uint32) MeshData {
	return newCuboid(width, height, depth, numSubdivisions, nil)
}

/** @brief The scale of the inner shell of a hollow bar. */
const hollowInset float32 = 0.95

// CreateHollowBar builds an open-top cuboid shell: the outer box without its
// top face, an inner box scaled by hollowInset facing inwards, and a rim that
// joins the two top edges.
func CreateHollowBar(width, height, depth float32, numSubdivisions uint32) MeshData {
	halfExtents := math.NewVec3(0.5*width, 0.5*height, 0.5*depth)
	outer := cuboidVertices(halfExtents, nil)
	inner := cuboidVertices(halfExtents.MulScalar(hollowInset), nil)
	innerBase := uint32(len(outer))

	meshData := MeshData{
		Vertices:  append(outer, inner...),
		Indices32: make([]uint32, 0, 84),
	}

	walls := [5]int{faceFront, faceBack, faceBottom, faceLeft, faceRight}
	for _, f := range walls {
		meshData.Indices32 = appendQuad(meshData.Indices32, uint32(f*4))
	}
	for _, f := range walls {
		meshData.Indices32 = appendQuadReversed(meshData.Indices32, innerBase+uint32(f*4))
	}

	// Rim between the outer top corners and the matching inner top corners.
	outerTop := uint32(faceTop * 4)
	innerTop := innerBase + outerTop
	for c := uint32(0); c < 4; c++ {
		next := (c + 1) % 4
		meshData.Indices32 = append(meshData.Indices32,
			outerTop+c, outerTop+next, innerTop+next,
			outerTop+c, innerTop+next, innerTop+c,
		)
	}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}
