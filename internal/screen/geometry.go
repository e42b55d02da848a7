// Package screen abstracts pointer, display, and window access behind
// a small interface so the actuator and classifier can be tested
// without a desktop session.
package screen

import "math"

// Point is a position in the global display coordinate space.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in global coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inset shrinks the rectangle by d on all sides. If the rectangle is
// too small to inset it collapses to its center.
func (r Rect) Inset(d float64) Rect {
	if r.W <= 2*d || r.H <= 2*d {
		return Rect{X: r.X + r.W/2, Y: r.Y + r.H/2, W: 0, H: 0}
	}
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Clamp returns the point, constrained into the rectangle.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: math.Max(r.X, math.Min(r.X+r.W, p.X)),
		Y: math.Max(r.Y, math.Min(r.Y+r.H, p.Y)),
	}
}
