// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Vec is a 2D vector with float64 components.
// Used for continuous positions and velocities.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
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

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length if it is longer than one.
// Shorter vectors (including zero) are returned unchanged, so analog
// input below full deflection keeps its magnitude.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l <= 1 {
		return v
	}
	return v.Scale(1 / l)
}

// Box is an axis-aligned bounding box with float64 coordinates.
// Min is the top-left corner, Max the bottom-right corner.
type Box struct {
	Min, Max Vec
}

// BoxAround returns the square box of the given half-extent centred on c.
func BoxAround(c Vec, half float64) Box {
	return Box{
		Min: Vec{X: c.X - half, Y: c.Y - half},
		Max: Vec{X: c.X + half, Y: c.Y + half},
	}
}

// Overlaps returns true if the interiors of the two boxes intersect.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y
}

// Penetration holds the four overlap depths of one box into another.
// Each field is the distance b must travel in that direction to clear o.
type Penetration struct {
	Left, Right, Up, Down float64
}

// Penetration returns how far b would have to move in each axis direction
// to stop overlapping o. Only meaningful when the boxes overlap.
func (b Box) Penetration(o Box) Penetration {
	return Penetration{
		Left:  b.Max.X - o.Min.X,
		Right: o.Max.X - b.Min.X,
		Up:    b.Max.Y - o.Min.Y,
		Down:  o.Max.Y - b.Min.Y,
	}
}

// MinPush returns the smallest displacement that separates the boxes,
// moving along a single axis only.
func (p Penetration) MinPush() Vec {
	push := Vec{X: -p.Left}
	best := p.Left
	if p.Right < best {
		best = p.Right
		push = Vec{X: p.Right}
	}
	if p.Up < best {
		best = p.Up
		push = Vec{Y: -p.Up}
	}
	if p.Down < best {
		push = Vec{Y: p.Down}
	}
	return push
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
