package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Dot", func(t *testing.T) {
		if got := v1.Dot(v2); got != 11 {
			t.Errorf("%v.Dot(%v) = %v; want 11", v1, v2, got)
		}
	})

	t.Run("Perp", func(t *testing.T) {
		got := Vector2D{1, 0}.Perp()
		if !got.Eq(Vector2D{0, 1}) {
			t.Errorf("Perp(1,0) = %v; want (0, 1)", got)
		}
		if d := v1.Dot(v1.Perp()); d != 0 {
			t.Errorf("v.Dot(v.Perp()) = %v; want 0", d)
		}
	})
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		zero := Vector2D{0, 0}
		got := zero.Normalize()
		if !got.Eq(zero) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
	})
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}

	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Lerp(t *testing.T) {
	v1 := Vector2D{0, 0}
	v2 := Vector2D{10, 10}
	got := v1.Lerp(v2, 0.5)
	want := Vector2D{5, 5}
	if !got.Eq(want) {
		t.Errorf("Lerp(0.5) = %v; want %v", got, want)
	}
}

func TestVector_Clamp(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want Vector2D
	}{
		{"Inside", Vector2D{5, 5}, Vector2D{5, 5}},
		{"Below", Vector2D{-0.2, -3}, Vector2D{0, 0}},
		{"Above", Vector2D{10.1, 20}, Vector2D{10, 10}},
		{"Mixed", Vector2D{-1, 11}, Vector2D{0, 10}},
		{"OnEdge", Vector2D{10, 0}, Vector2D{10, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Clamp(0, 0, 10, 10); !got.Eq(tt.want) {
				t.Errorf("%v.Clamp(0,0,10,10) = %v; want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVector_IsFinite(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want bool
	}{
		{Vector2D{1, 2}, true},
		{Vector2D{-1e300, 0}, true},
		{Vector2D{math.NaN(), 0}, false},
		{Vector2D{0, math.Inf(1)}, false},
		{Vector2D{math.Inf(-1), math.NaN()}, false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	vDiff := Vector2D{1.1, 2}
	if v.Eq(vDiff) {
		t.Error("Eq mismatch failed")
	}
}
