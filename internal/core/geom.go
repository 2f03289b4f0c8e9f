// Package core provides fundamental types and utilities for the breakout game.
// It contains no external UI dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

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

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not overlap (cell semantics).
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// AABB is an axis-aligned bounding box in world units.
// Position is the top-left corner; the y axis points down.
type AABB struct {
	Position mgl64.Vec2
	Size     mgl64.Vec2
}

// NewAABB creates a box from its top-left corner and size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{Position: mgl64.Vec2{x, y}, Size: mgl64.Vec2{w, h}}
}

// HalfExtents returns half of the box size.
func (b AABB) HalfExtents() mgl64.Vec2 {
	return b.Size.Mul(0.5)
}

// Center returns the center point of the box.
func (b AABB) Center() mgl64.Vec2 {
	return b.Position.Add(b.HalfExtents())
}

// Max returns the bottom-right corner.
func (b AABB) Max() mgl64.Vec2 {
	return b.Position.Add(b.Size)
}

// Circle is a circle given by its center and radius.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
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

// ClampVec clamps each component of v into [lo, hi].
func ClampVec(v, lo, hi mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{ClampF(v[0], lo[0], hi[0]), ClampF(v[1], lo[1], hi[1])}
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction and is returned unchanged instead of NaN.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}
