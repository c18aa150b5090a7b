package core

import (
	"math"
	"testing"
)

func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "overlapping circles",
			a:        Circle{C: Vec{0, 0}, R: 10},
			b:        Circle{C: Vec{15, 0}, R: 10},
			expected: true,
		},
		{
			name:     "distant circles",
			a:        Circle{C: Vec{0, 0}, R: 10},
			b:        Circle{C: Vec{50, 50}, R: 10},
			expected: false,
		},
		{
			name:     "touching circles (no overlap)",
			a:        Circle{C: Vec{0, 0}, R: 10},
			b:        Circle{C: Vec{20, 0}, R: 10},
			expected: false,
		},
		{
			name:     "concentric",
			a:        Circle{C: Vec{5, 5}, R: 1},
			b:        Circle{C: Vec{5, 5}, R: 30},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() not symmetric: got %v", got)
			}
		})
	}
}

func TestCircleContains(t *testing.T) {
	c := Circle{C: Vec{10, 10}, R: 5}
	if !c.Contains(Vec{12, 12}) {
		t.Error("expected point inside circle")
	}
	if c.Contains(Vec{15, 10}) {
		t.Error("point on the edge should not be contained")
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"zero stays zero", Vec{0, 0}, Vec{0, 0}},
		{"axis", Vec{0, -4}, Vec{0, -1}},
		{"diagonal", Vec{1, 1}, Vec{1 / math.Sqrt2, 1 / math.Sqrt2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Normalize(%v) produced NaN", tc.in)
			}
		})
	}
}

func TestDist(t *testing.T) {
	if d := Dist(Vec{0, 0}, Vec{3, 4}); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-0.1, 0, 10, 0},
		{10.1, 0, 10, 10},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
