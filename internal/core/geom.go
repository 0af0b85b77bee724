// Package core provides host-neutral types shared by the game and the platform.
// It has no external dependencies (especially no Bubble Tea) so game logic stays
// pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
// Used for hit regions on the terminal surface (buttons, overlays).
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point or displacement in logical surface units.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Box is a center-anchored axis-aligned box in logical units.
type Box struct {
	Center Vec
	HalfW  float64
	HalfH  float64
}

// Overlaps tests two boxes with separate X and Y half-extent sums.
// The Y sum is shrunk by tolY, which lets sprites touch vertically
// without registering a hit.
func (b Box) Overlaps(o Box, tolY float64) bool {
	overlapX := math.Abs(b.Center.X-o.Center.X) < b.HalfW+o.HalfW
	overlapY := math.Abs(b.Center.Y-o.Center.Y) < b.HalfH+o.HalfH-tolY
	return overlapX && overlapY
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
