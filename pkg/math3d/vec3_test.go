package math3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestVec3Dot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"orthogonal", V3(1, 0, 0), V3(0, 1, 0), 0},
		{"parallel", V3(0, 0, 2), V3(0, 0, 3), 6},
		{"opposed", V3(1, 0, 0), V3(-1, 0, 0), -1},
		{"mixed", V3(1, 2, 3), V3(4, -5, 6), 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Dot(tc.b); math.Abs(got-tc.expected) > epsilon {
				t.Errorf("Dot(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if !vecNear(got, V3(0, 0, 1)) {
		t.Errorf("x cross y = %v, want (0,0,1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis", V3(0, 5, 0)},
		{"diagonal", V3(1, 1, 1)},
		{"negative", V3(0, 1, -1)},
		{"tiny", V3(0, 1e-6, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			if math.Abs(n.Len()-1) > epsilon {
				t.Errorf("Normalize(%v).Len() = %v, want 1", tc.v, n.Len())
			}
		})
	}

	t.Run("zero vector", func(t *testing.T) {
		if got := Zero3().Normalize(); got != Zero3() {
			t.Errorf("Normalize(zero) = %v, want zero", got)
		}
	})
}

func TestVec3LenSq(t *testing.T) {
	v := V3(3, 4, 12)
	if v.LenSq() != 169 {
		t.Errorf("LenSq = %v, want 169", v.LenSq())
	}
	if v.Len() != 13 {
		t.Errorf("Len = %v, want 13", v.Len())
	}
}

func TestVec3Negate(t *testing.T) {
	if got := V3(1, -2, 3).Negate(); got != V3(-1, 2, -3) {
		t.Errorf("Negate = %v, want (-1,2,-3)", got)
	}
}

func TestVec3AddSubScale(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale = %v", got)
	}
}
