package outline

import "math"

// Bounds is a Pen that accumulates the bounding box of every point it is
// given, control points included. The result is therefore not a tight box for
// curves, but it always contains the drawn shape.
//
// The zero value is an empty box.
type Bounds struct {
	Min, Max Point
	set      bool
}

func (b *Bounds) MoveTo(p Point)          { b.add(p) }
func (b *Bounds) LineTo(p Point)          { b.add(p) }
func (b *Bounds) CurveTo(c1, c2, p Point) { b.add(c1); b.add(c2); b.add(p) }
func (b *Bounds) ClosePath()              {}

func (b *Bounds) add(p Point) {
	if !b.set {
		b.Min, b.Max, b.set = p, p, true
		return
	}
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// Empty reports whether no point has been seen (a space glyph).
func (b *Bounds) Empty() bool { return !b.set }

// Width returns Max.X - Min.X, or 0 for an empty box.
func (b *Bounds) Width() float64 {
	if !b.set {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns Max.Y - Min.Y, or 0 for an empty box.
func (b *Bounds) Height() float64 {
	if !b.set {
		return 0
	}
	return b.Max.Y - b.Min.Y
}
