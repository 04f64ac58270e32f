package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

/** @brief a 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief Represents a single generated vertex.
 * Normal and tangent are unit length by construction.
 */
type Vertex struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The tangent of the vertex, along the U texture direction. */
	TangentU Vec3
	/** @brief The texture coordinate of the vertex. May lie outside [0,1]. */
	TexC Vec2
}

// NewVertex builds a vertex from its flat component list, in the order
// position, normal, tangent, texture coordinate.
func NewVertex(px, py, pz, nx, ny, nz, tx, ty, tz, u, v float32) Vertex {
	return Vertex{
		Position: Vec3{px, py, pz},
		Normal:   Vec3{nx, ny, nz},
		TangentU: Vec3{tx, ty, tz},
		TexC:     Vec2{u, v},
	}
}
