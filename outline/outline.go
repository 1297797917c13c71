// Package outline describes glyph outlines as a sequence of pen operations.
//
// Consumers implement Pen; producers (font outline readers, the stroke
// expander) drive one. Bounds, Path and Transform are the pens the renderer
// chains together: Bounds measures, Path records for replay, Transform maps
// font units into image coordinates.
package outline

// Point is a position in whatever coordinate system the producer uses.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Pen receives the segments of an outline.
type Pen interface {
	MoveTo(p Point)
	LineTo(p Point)
	CurveTo(c1, c2, p Point)
	ClosePath()
}

// Op is the type of a path segment.
type Op uint8

const (
	// OpMoveTo starts a new contour.
	OpMoveTo Op = iota
	// OpLineTo draws a straight line.
	OpLineTo
	// OpCurveTo draws a cubic Bézier curve.
	OpCurveTo
	// OpClose closes the current contour.
	OpClose
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpCurveTo:
		return "CurveTo"
	case OpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Segment is one recorded pen operation.
//   - OpMoveTo, OpLineTo: Args[0] is the target point
//   - OpCurveTo: Args[0], Args[1] are controls, Args[2] is the target
//   - OpClose: no arguments
type Segment struct {
	Op   Op
	Args [3]Point
}

// End returns the point the pen rests on after the segment.
func (s Segment) End() Point {
	switch s.Op {
	case OpCurveTo:
		return s.Args[2]
	default:
		return s.Args[0]
	}
}

// Path records pen operations for later replay. The zero value is an empty
// path ready for use.
type Path []Segment

func (p *Path) MoveTo(pt Point) { *p = append(*p, Segment{Op: OpMoveTo, Args: [3]Point{pt}}) }
func (p *Path) LineTo(pt Point) { *p = append(*p, Segment{Op: OpLineTo, Args: [3]Point{pt}}) }
func (p *Path) ClosePath()      { *p = append(*p, Segment{Op: OpClose}) }

func (p *Path) CurveTo(c1, c2, pt Point) {
	*p = append(*p, Segment{Op: OpCurveTo, Args: [3]Point{c1, c2, pt}})
}

// Replay drives pen with the recorded segments.
func (p Path) Replay(pen Pen) {
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			pen.MoveTo(s.Args[0])
		case OpLineTo:
			pen.LineTo(s.Args[0])
		case OpCurveTo:
			pen.CurveTo(s.Args[0], s.Args[1], s.Args[2])
		case OpClose:
			pen.ClosePath()
		}
	}
}

// IsEmpty reports whether the path contains no drawing segments.
func (p Path) IsEmpty() bool {
	for _, s := range p {
		if s.Op == OpLineTo || s.Op == OpCurveTo {
			return false
		}
	}
	return true
}
