// Package core provides fundamental types shared by the simulation packages.
// It has no third-party dependencies so rules stay pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. Y grows downwards, matching screen space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Rect represents an axis-aligned cell rectangle on a Screen.
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
