package generator

import "github.com/spaghettifunk/geogen/engine/math"

// frame is the normal and tangent pair assigned to a literal vertex.
type frame struct {
	normal  math.Vec3
	tangent math.Vec3
}

var (
	frameFront = frame{normal: math.Vec3{Z: -1}, tangent: math.Vec3{X: 1}}
	frameBack  = frame{normal: math.Vec3{Z: 1}, tangent: math.Vec3{X: -1}}
	frameUp    = frame{normal: math.Vec3{Y: 1}, tangent: math.Vec3{X: 1}}
	frameDown  = frame{normal: math.Vec3{Y: -1}, tangent: math.Vec3{X: -1}}
	frameLeft  = frame{normal: math.Vec3{X: -1}, tangent: math.Vec3{Z: -1}}
	frameRight = frame{normal: math.Vec3{X: 1}, tangent: math.Vec3{Z: 1}}
)

// literalVertex is a table entry whose position is a multiplier of the
// shape's half extents.
type literalVertex struct {
	p  math.Vec3
	f  frame
	uv math.Vec2
}

func lv(x, y, z float32, f frame, u, v float32) literalVertex {
	return literalVertex{p: math.Vec3{X: x, Y: y, Z: z}, f: f, uv: math.Vec2{X: u, Y: v}}
}

// scaleLiteral turns table entries into vertices scaled by the given extents.
func scaleLiteral(scale math.Vec3, table []literalVertex) []Vertex {
	out := make([]Vertex, len(table))
	for i, e := range table {
		out[i] = Vertex{
			Position: e.p.Mul(scale),
			Normal:   e.f.normal,
			TangentU: e.f.tangent,
			TexC:     e.uv,
		}
	}
	return out
}

func halfExtents(width, height, depth float32) math.Vec3 {
	return math.NewVec3(0.5*width, 0.5*height, 0.5*depth)
}

/**
 * @brief Creates a tetrahedron resting on the xz plane with its apex at +height/2.
 *
 * @return A mesh with 4 vertices and 4 triangles before subdivision.
 */
func CreateTetrahedron(width, height, depth float32, numSubdivisions uint32) MeshData {
	table := []literalVertex{
		lv(0.0, 1.0, -0.5, frameFront, 0.0, 1.0),
		lv(-1.0, 0.0, -1.0, frameFront, 0.0, 0.0),
		lv(0.0, 0.0, 1.0, frameFront, 1.0, 0.0),
		lv(1.0, 0.0, -1.0, frameFront, 1.0, 1.0),
	}

	meshData := MeshData{
		Vertices: scaleLiteral(halfExtents(width, height, depth), table),
		Indices32: []uint32{
			2, 1, 3,
			0, 3, 1,
			0, 1, 2,
			0, 2, 3,
		},
	}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}

/**
 * @brief Creates a square based pyramid resting on the xz plane.
 *
 * @return A mesh with 5 vertices and 6 triangles before subdivision.
 */
func CreatePyramid(width, height, depth float32, numSubdivisions uint32) MeshData {
	table := []literalVertex{
		lv(0.0, 1.0, 0.0, frameFront, 0.0, 1.0),
		lv(-1.0, 0.0, -1.0, frameFront, 0.0, 0.0),
		lv(-1.0, 0.0, 1.0, frameFront, 1.0, 0.0),
		lv(1.0, 0.0, 1.0, frameFront, 1.0, 1.0),
		lv(1.0, 0.0, -1.0, frameFront, 1.0, 1.0),
	}

	meshData := MeshData{
		Vertices: scaleLiteral(halfExtents(width, height, depth), table),
		Indices32: []uint32{
			// base
			4, 2, 1,
			4, 3, 2,
			// sides
			0, 4, 1,
			0, 1, 2,
			0, 2, 3,
			0, 3, 4,
		},
	}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}

/**
 * @brief Creates a wedge: a right triangular prism whose vertical face sits at -width/2.
 *
 * @return A mesh with 6 vertices and 8 triangles before subdivision.
 */
func CreateWedge(width, height, depth float32, numSubdivisions uint32) MeshData {
	table := []literalVertex{
		lv(-1.0, 0.0, -0.5, frameFront, 0.0, 1.0),
		lv(-1.0, 0.0, 0.5, frameFront, 0.0, 0.0),
		lv(1.0, 0.0, 0.5, frameFront, 1.0, 0.0),
		lv(1.0, 0.0, -0.5, frameFront, 1.0, 1.0),
		lv(-1.0, 1.0, -0.5, frameFront, 1.0, 1.0),
		lv(-1.0, 1.0, 0.5, frameFront, 1.0, 1.0),
	}

	meshData := MeshData{
		Vertices: scaleLiteral(halfExtents(width, height, depth), table),
		Indices32: []uint32{
			// bottom
			1, 0, 3,
			1, 3, 2,
			// upright face
			1, 5, 4,
			1, 4, 0,
			// slope
			4, 5, 2,
			4, 2, 3,
			// ends
			0, 4, 3,
			1, 2, 5,
		},
	}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}

// hexRing returns a hexagonal ring at height y: the centre followed by six
// corners. The first three corners face front, the last three face back.
func hexRing(y float32) []literalVertex {
	return []literalVertex{
		lv(0.0, y, 0.0, frameFront, 0.0, 1.0),
		lv(-0.5, y, -0.5, frameFront, 0.0, 0.0),
		lv(-0.75, y, 0.0, frameFront, 1.0, 0.0),
		lv(-0.5, y, 0.5, frameFront, 1.0, 1.0),
		lv(0.5, y, 0.5, frameBack, 1.0, 1.0),
		lv(0.75, y, 0.0, frameBack, 0.0, 1.0),
		lv(0.5, y, -0.5, frameBack, 0.0, 0.0),
	}
}

const hexSides = 6

// appendFan triangulates the ring whose corners start at first, around centre.
// reversed flips the winding for fans that face down.
func appendFan(indices []uint32, centre, first uint32, reversed bool) []uint32 {
	for i := uint32(0); i < hexSides; i++ {
		a := first + i
		b := first + (i+1)%hexSides
		if reversed {
			a, b = b, a
		}
		indices = append(indices, centre, a, b)
	}
	return indices
}

// appendBand stitches two hexagonal corner rings with two triangles per side.
func appendBand(indices []uint32, upper, lower uint32) []uint32 {
	for i := uint32(0); i < hexSides; i++ {
		next := (i + 1) % hexSides
		indices = append(indices, upper+i, lower+i, upper+next)
	}
	for i := uint32(0); i < hexSides; i++ {
		next := (i + 1) % hexSides
		indices = append(indices, lower+i, lower+next, upper+next)
	}
	return indices
}

/**
 * @brief Creates a hexagonal frustum: a flat hexagon at y = 0 over a wider
 * hexagon below it.
 *
 * @return A mesh with 14 vertices and 24 triangles before subdivision.
 */
func CreateHexagon(width, height, depth float32, numSubdivisions uint32) MeshData {
	half := halfExtents(width, height, depth)
	// The lower ring is widened by half a unit on every axis.
	wide := half.Add(math.NewVec3(0.5, 0.5, 0.5))

	vertices := scaleLiteral(half, hexRing(0.0))
	vertices = append(vertices, scaleLiteral(wide, hexRing(-0.3))...)

	const top, bottom = 0, 7
	indices := make([]uint32, 0, 72)
	indices = appendFan(indices, top, top+1, false)
	indices = appendFan(indices, bottom, bottom+1, true)
	indices = appendBand(indices, top+1, bottom+1)

	meshData := MeshData{Vertices: vertices, Indices32: indices}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}

/** @brief The scale of the candy's middle ring relative to its end rings. */
const candyBulge float32 = 1.5

/**
 * @brief Creates a candy shape: two hexagonal end caps joined through a wider
 * hexagonal ring at y = 0.
 *
 * @return A mesh with 20 vertices and 36 triangles before subdivision.
 */
func CreateCandy(width, height, depth float32, numSubdivisions uint32) MeshData {
	half := halfExtents(width, height, depth)

	vertices := scaleLiteral(half, hexRing(1.0))
	vertices = append(vertices, scaleLiteral(half, hexRing(-1.0))...)
	// The middle ring has no centre vertex.
	middle := math.NewVec3(half.X*candyBulge, 0.0, half.Z*candyBulge)
	vertices = append(vertices, scaleLiteral(middle, hexRing(0.0)[1:])...)

	const top, bottom, mid = 0, 7, 14
	indices := make([]uint32, 0, 108)
	indices = appendFan(indices, top, top+1, false)
	indices = appendFan(indices, bottom, bottom+1, true)
	indices = appendBand(indices, top+1, mid)
	indices = appendBand(indices, mid, bottom+1)

	meshData := MeshData{Vertices: vertices, Indices32: indices}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}

// diamondTable holds the eight facets of the diamond, five vertices each.
// Every facet starts at the tip (0, 0, 1).
var diamondTable = []literalVertex{
	lv(0.0, 0.0, 1.0, frameFront, 0.0, 1.0),
	lv(-0.5, 0.5, 0.0, frameFront, 0.0, 0.0),
	lv(0.5, 0.5, 0.0, frameFront, 1.0, 0.0),
	lv(-0.25, 1.0, 0.5, frameFront, 1.0, 1.0),
	lv(0.25, 1.0, 0.5, frameBack, 1.0, 1.0),

	lv(0.0, 0.0, 1.0, frameFront, 0.0, 1.0),
	lv(0.5, 0.5, 0.0, frameFront, 1.0, 0.0),
	lv(1.0, 0.5, 0.5, frameBack, 1.0, 0.0),
	lv(0.25, 1.0, 0.5, frameUp, 0.0, 1.0),
	lv(0.5, 1.0, 0.75, frameUp, 0.0, 0.0),

	lv(0.0, 0.0, 1.0, frameUp, 1.0, 0.0),
	lv(-1.0, 0.5, 0.5, frameUp, 1.0, 1.0),
	lv(-0.5, 0.5, 0.0, frameDown, 1.0, 1.0),
	lv(-0.5, 1.0, 0.75, frameDown, 0.0, 1.0),
	lv(-0.25, 1.0, 0.5, frameDown, 0.0, 0.0),

	lv(0.0, 0.0, 1.0, frameDown, 1.0, 0.0),
	lv(-0.5, 0.5, 2.0, frameLeft, 0.0, 1.0),
	lv(0.5, 0.5, 2.0, frameLeft, 0.0, 0.0),
	lv(-0.25, 1.0, 1.5, frameLeft, 1.0, 0.0),
	lv(0.25, 1.0, 1.5, frameLeft, 1.0, 1.0),

	lv(0.0, 0.0, 1.0, frameRight, 0.0, 1.0),
	lv(0.5, 0.5, 2.0, frameRight, 0.0, 0.0),
	lv(1.0, 0.5, 1.5, frameRight, 1.0, 0.0),
	lv(0.25, 1.0, 1.5, frameRight, 1.0, 1.0),
	lv(0.5, 1.0, 1.25, frameBack, 1.0, 1.0),

	lv(0.0, 0.0, 1.0, frameUp, 1.0, 0.0),
	lv(-0.5, 0.5, 2.0, frameUp, 1.0, 1.0),
	lv(-1.0, 0.5, 1.5, frameDown, 1.0, 1.0),
	lv(-0.25, 1.0, 1.5, frameBack, 1.0, 1.0),
	lv(-0.5, 1.0, 1.25, frameDown, 0.0, 0.0),

	lv(0.0, 0.0, 1.0, frameUp, 1.0, 0.0),
	lv(1.0, 0.5, 0.5, frameUp, 1.0, 1.0),
	lv(1.0, 0.5, 1.5, frameDown, 1.0, 1.0),
	lv(0.5, 1.0, 0.75, frameBack, 1.0, 1.0),
	lv(0.5, 1.0, 1.25, frameDown, 0.0, 0.0),

	lv(0.0, 0.0, 1.0, frameUp, 1.0, 0.0),
	lv(-1.0, 0.5, 0.5, frameUp, 1.0, 1.0),
	lv(-1.0, 0.5, 1.5, frameDown, 1.0, 1.0),
	lv(-0.5, 1.0, 0.75, frameBack, 1.0, 1.0),
	lv(-0.5, 1.0, 1.25, frameDown, 0.0, 0.0),
}

// diamondFacet lists the three triangles of one facet relative to its first
// vertex. Facets 4, 5 and 8 wind the other way round.
var (
	diamondFacet         = [9]uint32{0, 1, 2, 1, 3, 2, 3, 4, 2}
	diamondFacetReversed = [9]uint32{1, 0, 2, 3, 1, 2, 4, 3, 2}
)

/**
 * @brief Creates a diamond of eight kite shaped facets meeting at the tip (0, 0, depth/2).
 * The crown is left open.
 *
 * @return A mesh with 40 vertices and 24 triangles before subdivision.
 */
func CreateDiamond(width, height, depth float32, numSubdivisions uint32) MeshData {
	const facets, facetVertices = 8, 5

	meshData := MeshData{
		Vertices:  scaleLiteral(halfExtents(width, height, depth), diamondTable),
		Indices32: make([]uint32, 0, facets*len(diamondFacet)),
	}
	for f := uint32(0); f < facets; f++ {
		pattern := diamondFacet
		if f == 3 || f == 4 || f == 7 {
			pattern = diamondFacetReversed
		}
		for _, local := range pattern {
			meshData.Indices32 = append(meshData.Indices32, f*facetVertices+local)
		}
	}

	SubdivideN(&meshData, numSubdivisions)
	return meshData
}
