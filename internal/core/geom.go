// Package core provides fundamental types and utilities for the game platform.
// It contains no terminal dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
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

// Vec is a point or direction in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// Bounds is an inclusive world-space box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Clamp pulls v inside the bounds.
func (b Bounds) Clamp(v Vec) Vec {
	return Vec{
		X: ClampF(v.X, b.MinX, b.MaxX),
		Y: ClampF(v.Y, b.MinY, b.MaxY),
	}
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

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Decay multiplies value by factor once per reference tick, scaled by the
// number of reference ticks elapsed, and snaps to zero below threshold.
func Decay(value, factor, scale, threshold float64) float64 {
	if value <= 0 {
		return 0
	}
	value *= math.Pow(factor, scale)
	if value < threshold {
		return 0
	}
	return value
}

// EaseFactor converts a per-reference-tick interpolation factor into the
// factor for scale reference ticks.
func EaseFactor(k, scale float64) float64 {
	if scale == 1 {
		return k
	}
	return 1 - math.Pow(1-k, scale)
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
