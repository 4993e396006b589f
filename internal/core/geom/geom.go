// Package geom provides the small amount of 2D geometry the simulation needs:
// axis-aligned rectangles, clamping and center-to-center distances.
package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec is a 2D world-space vector.
type Vec = mgl64.Vec2

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Bottom returns the y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Overlaps reports whether two rectangles intersect with non-zero area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X() >= r.X && p.X() <= r.X+r.W && p.Y() >= r.Y && p.Y() <= r.Y+r.H
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Within reports whether a and b are strictly closer than radius.
func Within(a, b Vec, radius float64) bool {
	return Distance(a, b) < radius
}

// Clamp limits v to [lo, hi]. When hi < lo the range is empty and lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
