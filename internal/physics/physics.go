// Package physics provides the overlap tests and broad-phase grid used by collision resolution.
//
// There is no impulse response: shapes only answer "do these touch".
package physics

import "math"

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter builds a rect of the given size centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point of the rect.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether two rects overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// CircleIntersectsRect reports whether a circle overlaps a rect.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nx := Clamp(cx, r.Left(), r.Right())
	ny := Clamp(cy, r.Top(), r.Bottom())
	return DistanceSquared(cx, cy, nx, ny) < radius*radius
}

// Body is the collision shape of an entity: its rect, and a circle of
// Radius around the rect centre when Radius > 0.
type Body struct {
	Rect   Rect
	Radius float64
}

// IsCircle reports whether the body collides as a circle.
func (b Body) IsCircle() bool {
	return b.Radius > 0
}

// AsCircle returns b as a circle body. Bodies without a radius get a circle
// through the rect corners.
func (b Body) AsCircle() Body {
	if !b.IsCircle() {
		b.Radius = math.Hypot(b.Rect.W, b.Rect.H) / 2
	}
	return b
}

// Collide reports whether two bodies overlap, choosing the test by shape.
func Collide(a, b Body) bool {
	switch {
	case a.IsCircle() && b.IsCircle():
		ax, ay := a.Rect.Center()
		bx, by := b.Rect.Center()
		return CirclesOverlap(ax, ay, a.Radius, bx, by, b.Radius)
	case a.IsCircle():
		ax, ay := a.Rect.Center()
		return CircleIntersectsRect(ax, ay, a.Radius, b.Rect)
	case b.IsCircle():
		bx, by := b.Rect.Center()
		return CircleIntersectsRect(bx, by, b.Radius, a.Rect)
	default:
		return a.Rect.Intersects(b.Rect)
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
