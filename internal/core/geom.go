// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in world coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// SpansY reports whether y lies within the vertical extent of r, edges included.
func (r Rect) SpansY(y float64) bool {
	return y >= r.Y && y <= r.Bottom()
}

// Scale maps a world length onto a grid with cells of the given size.
// The returned span [lo, hi) always covers at least one cell.
func Scale(pos, length, cell float64) (lo, hi int) {
	lo = int(math.Floor(pos / cell))
	hi = int(math.Ceil((pos + length) / cell))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
