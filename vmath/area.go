package vmath

// Rect is an axis-aligned box; X/Y is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Center returns the center point of the rect
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Pos returns the top-left corner
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// MoveTo returns the rect with its top-left corner at p
func (r Rect) MoveTo(p Vec2) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Overlaps reports strict intersection; touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains checks if point is within rect
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ClampInside keeps r within bounds, preserving its size
func (r Rect) ClampInside(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, bounds.X+bounds.W-r.W)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Y+bounds.H-r.H)
	return r
}

// RandomPoint returns a uniformly random point within rect using provided RNG
func (r Rect) RandomPoint(rng *FastRand) Vec2 {
	return Vec2{
		X: r.X + rng.Float64()*r.W,
		Y: r.Y + rng.Float64()*r.H,
	}
}
