package generator

import "github.com/spaghettifunk/geogen/engine/math"

// MidPoint returns the attribute-wise midpoint of two vertices. Position and
// texture coordinate are averaged. Normal and tangent are averaged and then
// renormalized. When the two normals (or tangents) are exactly opposite the
// average is the zero vector, and so is the result.
func MidPoint(v0, v1 Vertex) Vertex {
	v, _ := midPoint(v0, v1)
	return v
}

// midPoint also reports whether an opposite pair of non-zero normals or
// tangents collapsed to the zero vector.
func midPoint(v0, v1 Vertex) (Vertex, bool) {
	normal := v0.Normal.Add(v1.Normal).MulScalar(0.5)
	tangent := v0.TangentU.Add(v1.TangentU).MulScalar(0.5)

	collapsed := (normal == math.Vec3{} && v0.Normal != math.Vec3{}) ||
		(tangent == math.Vec3{} && v0.TangentU != math.Vec3{})

	return Vertex{
		Position: v0.Position.Add(v1.Position).MulScalar(0.5),
		Normal:   normal.Normalize(),
		TangentU: tangent.Normalize(),
		TexC:     v0.TexC.Add(v1.TexC).MulScalar(0.5),
	}, collapsed
}
