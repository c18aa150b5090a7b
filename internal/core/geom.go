// Package core provides fundamental types and utilities for the aquarium simulation.
// It contains no external dependencies to keep simulation logic pure and testable.
package core

import "math"

// Vec is a 2D vector in tank coordinates.
type Vec struct {
	X, Y float64
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

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between two points.
func Dist(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// Circle is a collision circle centered at C.
type Circle struct {
	C Vec
	R float64
}

// Intersects returns true if the two circles overlap.
// Touching circles do not overlap.
func (c Circle) Intersects(other Circle) bool {
	return Dist(c.C, other.C) < c.R+other.R
}

// Contains returns true if the point p is inside the circle.
func (c Circle) Contains(p Vec) bool {
	return Dist(c.C, p) < c.R
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
