// Package geom holds the continuous-space vector math used for movement,
// distance checks, and viewport culling.
package geom

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in the direction of v.
//
// Postcondition: the zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// MoveToward returns the point reached by travelling from v toward target by
// at most step units. The target is returned exactly when it is within reach.
func (v Vec2) MoveToward(target Vec2, step float64) Vec2 {
	d := target.Sub(v)
	l := d.Len()
	if l <= step || l == 0 {
		return target
	}
	return v.Add(d.Scale(step / l))
}

// FromAngle returns the vector of length r at angle theta radians.
func FromAngle(theta, r float64) Vec2 {
	return Vec2{math.Cos(theta) * r, math.Sin(theta) * r}
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect returns the w×h rectangle centred on c.
func CenteredRect(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Contains reports whether p lies inside r (right and bottom edges exclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Corners returns the four corners of the square of half-extent h around c,
// clockwise from top-left.
func Corners(c Vec2, h float64) [4]Vec2 {
	return [4]Vec2{
		{c.X - h, c.Y - h},
		{c.X + h, c.Y - h},
		{c.X + h, c.Y + h},
		{c.X - h, c.Y + h},
	}
}
