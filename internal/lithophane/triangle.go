package lithophane

import "github.com/hschendel/stl"

// NewTriangle builds the triangle a, b, c with its normal taken from the
// winding: normalize((b-a) x (c-a)), negated if flipNormal is set.
//
// Collinear or coincident vertices give a zero cross product. Such triangles
// keep a zero normal rather than the NaNs Normalize would produce.
func NewTriangle(a, b, c stl.Vec3, flipNormal bool) stl.Triangle {
	n := Cross(Subtract(b, a), Subtract(c, a))
	if Length(n) != 0 {
		n = Normalize(n)
	}
	if flipNormal {
		n = Scale(n, -1)
	}

	return stl.Triangle{
		Normal:   n,
		Vertices: [3]stl.Vec3{a, b, c},
	}
}

// IsDegenerate reports whether t has zero area.
func IsDegenerate(t stl.Triangle) bool {
	return t.Normal == stl.Vec3{}
}
