// Package vmath provides float world-space geometry and a seeded random source
// for the simulation. World units are continuous; the renderer maps them to cells.
package vmath

import "math"

// Vec2 is a point or displacement in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// MoveToward steps from 'from' toward 'to' by at most 'step'
// Returns the new position and the remaining distance to 'to'
func MoveToward(from, to Vec2, step float64) (Vec2, float64) {
	d := to.Sub(from)
	dist := d.Len()
	if dist <= step || dist == 0 {
		return to, 0
	}
	return from.Add(d.Scale(step / dist)), dist - step
}

// Clamp restricts v to [lo, hi]; if hi < lo the result is lo
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// Sign returns -1, 0 or 1
func Sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
