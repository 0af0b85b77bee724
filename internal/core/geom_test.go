package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxOverlaps(t *testing.T) {
	player := Box{Center: Vec{X: 100, Y: 100}, HalfW: 23, HalfH: 29}

	tests := []struct {
		name     string
		other    Box
		tolY     float64
		expected bool
	}{
		{
			name:     "same center",
			other:    Box{Center: Vec{X: 100, Y: 100}, HalfW: 22, HalfH: 18},
			expected: true,
		},
		{
			name:     "touching horizontally (no overlap)",
			other:    Box{Center: Vec{X: 145, Y: 100}, HalfW: 22, HalfH: 18},
			expected: false,
		},
		{
			name:     "just inside horizontally",
			other:    Box{Center: Vec{X: 144.9, Y: 100}, HalfW: 22, HalfH: 18},
			expected: true,
		},
		{
			name:     "vertical overlap removed by tolerance",
			other:    Box{Center: Vec{X: 100, Y: 145}, HalfW: 22, HalfH: 18},
			tolY:     6,
			expected: false,
		},
		{
			name:     "vertical overlap without tolerance",
			other:    Box{Center: Vec{X: 100, Y: 145}, HalfW: 22, HalfH: 18},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Overlaps(tc.other, tc.tolY); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Overlaps(player, tc.tolY); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	d := Dist(Vec{X: 0, Y: 0}, Vec{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
