package lithophane

import (
	"math"
	"testing"

	"github.com/hschendel/stl"
)

var sampleVectors = []stl.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 2, 3},
	{-4.5, 0.25, 7},
	{0.001, -0.002, 0.003},
	{100, -250, 3},
}

func near(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

func TestCrossAntisymmetric(t *testing.T) {
	for _, a := range sampleVectors {
		for _, b := range sampleVectors {
			ab := Cross(a, b)
			ba := Cross(b, a)
			for i := range ab {
				if !near(ab[i], -ba[i], 1e-3) {
					t.Errorf("Cross(%v, %v) = %v, Cross(%v, %v) = %v", a, b, ab, b, a, ba)
				}
			}
		}
	}
}

func TestCrossBasis(t *testing.T) {
	x, y, z := stl.Vec3{1, 0, 0}, stl.Vec3{0, 1, 0}, stl.Vec3{0, 0, 1}
	if got := Cross(x, y); got != z {
		t.Errorf("x cross y = %v, want %v", got, z)
	}
	if got := Cross(y, z); got != x {
		t.Errorf("y cross z = %v, want %v", got, x)
	}
	if got := Cross(z, x); got != y {
		t.Errorf("z cross x = %v, want %v", got, y)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range sampleVectors {
		if l := Length(Normalize(v)); !near(l, 1, 1e-5) {
			t.Errorf("Length(Normalize(%v)) = %f", v, l)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	n := Normalize(stl.Vec3{})
	for i, c := range n {
		if !math.IsNaN(float64(c)) {
			t.Errorf("component %d = %f, want NaN", i, c)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := stl.Vec3{1, 2, 3}
	b := stl.Vec3{4, 6, 8}

	if got, want := Subtract(b, a), (stl.Vec3{3, 4, 5}); got != want {
		t.Errorf("Subtract = %v, want %v", got, want)
	}
	if got, want := Scale(a, -2), (stl.Vec3{-2, -4, -6}); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got, want := Divide(b, 2), (stl.Vec3{2, 3, 4}); got != want {
		t.Errorf("Divide = %v, want %v", got, want)
	}
	if got := Length(stl.Vec3{3, 4, 0}); got != 5 {
		t.Errorf("Length = %f, want 5", got)
	}
	if got := Dot(a, b); got != 40 {
		t.Errorf("Dot = %f, want 40", got)
	}
}
