package lithophane

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hschendel/stl"
)

// stl.Vec3 and mgl32.Vec3 are both [3]float32, so the conversions below are
// free.

func Subtract(a, b stl.Vec3) stl.Vec3 {
	return stl.Vec3(mgl32.Vec3(a).Sub(mgl32.Vec3(b)))
}

// Cross returns the right-handed cross product a x b.
func Cross(a, b stl.Vec3) stl.Vec3 {
	return stl.Vec3(mgl32.Vec3(a).Cross(mgl32.Vec3(b)))
}

func Scale(a stl.Vec3, s float32) stl.Vec3 {
	return stl.Vec3(mgl32.Vec3(a).Mul(s))
}

// Divide scales a by the reciprocal of s. Dividing by zero yields Inf/NaN
// components, as with plain float division.
func Divide(a stl.Vec3, s float32) stl.Vec3 {
	return Scale(a, 1/s)
}

func Length(a stl.Vec3) float32 {
	return mgl32.Vec3(a).Len()
}

// Normalize returns a divided by its length. The zero vector normalizes to
// NaNs.
func Normalize(a stl.Vec3) stl.Vec3 {
	return Divide(a, Length(a))
}

func Dot(a, b stl.Vec3) float32 {
	return mgl32.Vec3(a).Dot(mgl32.Vec3(b))
}
