package stroke

import (
	"math"

	"github.com/gogpu/ivsrender/outline"
)

type vec struct {
	X, Y float64
}

func sub(p, q outline.Point) vec { return vec{X: p.X - q.X, Y: p.Y - q.Y} }

func offset(p outline.Point, v vec) outline.Point {
	return outline.Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func lerp(p, q outline.Point, t float64) outline.Point {
	return outline.Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (v vec) scale(s float64) vec    { return vec{X: v.X * s, Y: v.Y * s} }
func (v vec) neg() vec               { return vec{X: -v.X, Y: -v.Y} }
func (v vec) dot(w vec) float64      { return v.X*w.X + v.Y*w.Y }
func (v vec) cross(w vec) float64    { return v.X*w.Y - v.Y*w.X }
func (v vec) length() float64        { return math.Hypot(v.X, v.Y) }
func (v vec) lengthSquared() float64 { return v.X*v.X + v.Y*v.Y }
func (v vec) perp() vec              { return vec{X: -v.Y, Y: v.X} }
func (v vec) angle() float64         { return math.Atan2(v.Y, v.X) }

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b outline.Point) float64 {
	ab := sub(b, a)
	l2 := ab.lengthSquared()
	if l2 < 1e-20 {
		return sub(p, a).length()
	}
	t := sub(p, a).dot(ab) / l2
	switch {
	case t < 0:
		return sub(p, a).length()
	case t > 1:
		return sub(p, b).length()
	}
	return sub(p, offset(a, ab.scale(t))).length()
}
