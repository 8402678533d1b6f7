// Package core provides fundamental types and utilities shared by the game
// and its frontends. It has no external dependencies (especially no Bubble Tea
// or Ebiten) so the simulation stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// RectF is an axis-aligned rectangle in field coordinates, where the
// playing field spans [0,1] on both axes.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CenteredRect builds a RectF from its centre point and size.
func CenteredRect(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Scale maps the rectangle onto a surface of the given size.
// Edges are rounded to the nearest cell and every non-degenerate
// rectangle keeps at least one cell in each dimension.
func (r RectF) Scale(width, height int) Rect {
	x0 := int(math.Round(r.X * float64(width)))
	y0 := int(math.Round(r.Y * float64(height)))
	x1 := int(math.Round(r.Right() * float64(width)))
	y1 := int(math.Round(r.Bottom() * float64(height)))

	w := x1 - x0
	h := y1 - y0
	if r.W > 0 && w < 1 {
		w = 1
	}
	if r.H > 0 && h < 1 {
		h = 1
	}
	return Rect{X: x0, Y: y0, W: w, H: h}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
