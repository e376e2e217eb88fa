// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Box is an axis-aligned bounding box given by its center and half extents.
// All collision detection in the simulation runs on boxes.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box from a center point and full width/height.
func NewBox(center Vec2, width, height float64) Box {
	return Box{Center: center, Half: Vec2{X: width / 2, Y: height / 2}}
}

// Overlaps reports whether two boxes intersect.
// The comparison is strict: boxes that merely touch do not collide.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X) < b.Half.X+o.Half.X &&
		math.Abs(b.Center.Y-o.Center.Y) < b.Half.Y+o.Half.Y
}

// Bounds is the rectangular play area in world units. Y grows upward.
type Bounds struct {
	Left, Right float64
	Bottom, Top float64
}

// BoundsFor derives a play area centered on the origin from a world height
// and a width/height aspect ratio.
func BoundsFor(height, aspect float64) Bounds {
	halfH := height / 2
	halfW := height * aspect / 2
	return Bounds{Left: -halfW, Right: halfW, Bottom: -halfH, Top: halfH}
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}

// ClampX restricts x so a box with the given half-width stays inside.
func (b Bounds) ClampX(x, half float64) float64 {
	return ClampF(x, b.Left+half, b.Right-half)
}

// ClampY restricts y so a box with the given half-height stays inside.
func (b Bounds) ClampY(y, half float64) float64 {
	return ClampF(y, b.Bottom+half, b.Top-half)
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

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
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
