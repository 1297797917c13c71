package stroke

import (
	"math"

	"github.com/gogpu/ivsrender/outline"
)

// Cap specifies the shape of open contour endpoints.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a semicircle.
	CapRound
	// CapSquare extends the stroke by half its width past the endpoint.
	CapSquare
)

// Join specifies the shape of corners.
type Join int

const (
	// JoinMiter extends the outer edges to a point, up to MiterLimit.
	JoinMiter Join = iota
	// JoinRound rounds the corner with an arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// Style describes a stroke.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle returns a 1 unit wide stroke with miter joins (limit 10) and
// butt caps.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10.0,
	}
}

// Expander converts outlines into the outlines of their strokes.
// An Expander is not safe for concurrent use.
type Expander struct {
	style     Style
	tolerance float64

	forward  outline.Path
	backward outline.Path
	out      outline.Path

	startPt   outline.Point
	startNorm vec
	startTan  vec
	lastPt    outline.Point
	lastTan   vec
	lastNorm  vec

	// joins turning less than this (relative) are drawn as plain lines
	joinThresh float64
}

// NewExpander returns an Expander for style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the curve flattening tolerance. Non-positive values are
// ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the fillable outline of src's stroke. A non-positive width
// yields an empty outline.
func (e *Expander) Expand(src outline.Path) outline.Path {
	if e.style.Width <= 0 {
		return nil
	}
	e.reset()

	for _, seg := range src {
		switch seg.Op {
		case outline.OpMoveTo:
			e.finishOpen()
			e.startPt = seg.Args[0]
			e.lastPt = seg.Args[0]
		case outline.OpLineTo:
			if p := seg.Args[0]; p != e.lastPt {
				e.line(p)
			}
		case outline.OpCurveTo:
			if seg.Args[0] != e.lastPt || seg.Args[1] != e.lastPt || seg.Args[2] != e.lastPt {
				e.curve(seg.Args[0], seg.Args[1], seg.Args[2])
			}
		case outline.OpClose:
			if e.lastPt != e.startPt {
				e.line(e.startPt)
			}
			e.finishClosed()
		}
	}
	e.finishOpen()

	out := e.out
	e.out = nil
	return out
}

func (e *Expander) reset() {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.out = nil
	e.startPt = outline.Point{}
	e.startNorm = vec{}
	e.startTan = vec{}
	e.lastPt = outline.Point{}
	e.lastTan = vec{}
	e.lastNorm = vec{}
	e.joinThresh = 2.0 * e.tolerance / e.style.Width
}

// normal returns the left normal of tan scaled to half the stroke width.
func (e *Expander) normal(tan vec) vec {
	return tan.perp().scale(0.5 * e.style.Width / tan.length())
}

func (e *Expander) line(p outline.Point) {
	tan := sub(p, e.lastPt)
	e.join(tan)
	e.lastTan = tan
	e.lineTo(tan, p)
}

func (e *Expander) lineTo(tan vec, p outline.Point) {
	norm := e.normal(tan)
	e.forward.LineTo(offset(p, norm.neg()))
	e.backward.LineTo(offset(p, norm))
	e.lastPt = p
	e.lastNorm = norm
}

func (e *Expander) curve(c1, c2, p outline.Point) {
	pts := e.flatten(e.lastPt, c1, c2, p)
	for i := 1; i < len(pts); i++ {
		tan := sub(pts[i], pts[i-1])
		if tan.lengthSquared() > 1e-10 {
			e.join(tan)
			e.lastTan = tan
			e.lineTo(tan, pts[i])
		}
	}
}

func (e *Expander) join(tan vec) {
	norm := e.normal(tan)
	p0 := e.lastPt

	if len(e.forward) == 0 {
		e.forward.MoveTo(offset(p0, norm.neg()))
		e.backward.MoveTo(offset(p0, norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := ab.cross(cd)
	dot := ab.dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly straight: connect without a join so the offsets stay continuous.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.LineTo(offset(p0, norm.neg()))
		e.backward.LineTo(offset(p0, norm))
		return
	}

	switch e.style.Join {
	case JoinBevel:
		e.forward.LineTo(offset(p0, norm.neg()))
		e.backward.LineTo(offset(p0, norm))
	case JoinMiter:
		limit := e.style.MiterLimit * e.style.MiterLimit
		if 2.0*hypot < (hypot+dot)*limit {
			e.miter(p0, norm, ab, cd, cross)
		}
		e.forward.LineTo(offset(p0, norm.neg()))
		e.backward.LineTo(offset(p0, norm))
	case JoinRound:
		lastNorm := e.normal(e.lastTan)
		angle := math.Atan2(cross, dot)
		if angle > 0.0 {
			e.backward.LineTo(offset(p0, norm))
			arc(&e.forward, p0, lastNorm.neg(), angle)
		} else {
			e.forward.LineTo(offset(p0, norm.neg()))
			arc(&e.backward, p0, lastNorm, angle)
		}
	}
}

// miter adds the miter tip on the outer side of the corner at p0.
func (e *Expander) miter(p0 outline.Point, norm, ab, cd vec, cross float64) {
	lastNorm := e.normal(ab)
	switch {
	case cross > 0.0:
		last := offset(p0, lastNorm.neg())
		this := offset(p0, norm.neg())
		h := ab.cross(sub(this, last)) / cross
		e.forward.LineTo(offset(this, cd.scale(-h)))
		e.backward.LineTo(p0)
	case cross < 0.0:
		last := offset(p0, lastNorm)
		this := offset(p0, norm)
		h := ab.cross(sub(this, last)) / cross
		e.backward.LineTo(offset(this, cd.scale(-h)))
		e.forward.LineTo(p0)
	}
}

// finishOpen emits the pending open contour with caps at both ends.
func (e *Expander) finishOpen() {
	if len(e.forward) == 0 {
		return
	}
	e.out = append(e.out, e.forward...)
	if len(e.backward) > 0 {
		e.cap(e.lastPt, e.lastNorm.neg(), false)
	}
	e.appendReversed(e.backward)
	e.cap(e.startPt, e.startNorm, true)

	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
}

// finishClosed emits the two rings of a closed contour.
func (e *Expander) finishClosed() {
	if len(e.forward) == 0 {
		return
	}
	e.join(e.startTan)

	e.out = append(e.out, e.forward...)
	e.out.ClosePath()

	if n := len(e.backward); n > 0 {
		e.out.MoveTo(e.backward[n-1].End())
	}
	e.appendReversed(e.backward)
	e.out.ClosePath()

	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
}

func (e *Expander) cap(center outline.Point, norm vec, closing bool) {
	switch e.style.Cap {
	case CapButt:
		if closing {
			e.out.ClosePath()
		} else {
			e.out.LineTo(offset(center, norm.neg()))
		}
	case CapRound:
		arc(&e.out, center, norm, math.Pi)
		if closing {
			e.out.ClosePath()
		}
	case CapSquare:
		// corners (1,1), (-1,1), (-1,0) in the frame spanned by norm
		frame := func(x, y float64) outline.Point {
			return outline.Point{
				X: norm.X*x - norm.Y*y + center.X,
				Y: norm.Y*x + norm.X*y + center.Y,
			}
		}
		e.out.LineTo(frame(1, 1))
		e.out.LineTo(frame(-1, 1))
		if closing {
			e.out.ClosePath()
		} else {
			e.out.LineTo(frame(-1, 0))
		}
	}
}

// appendReversed appends src walked backwards, without its MoveTo.
func (e *Expander) appendReversed(src outline.Path) {
	for i := len(src) - 1; i >= 1; i-- {
		end := src[i-1].End()
		switch seg := src[i]; seg.Op {
		case outline.OpLineTo:
			e.out.LineTo(end)
		case outline.OpCurveTo:
			e.out.CurveTo(seg.Args[1], seg.Args[0], end)
		}
	}
}

// arc appends a circular arc around center starting at center+norm and
// sweeping angle radians, as cubic segments of at most 90 degrees.
func arc(out *outline.Path, center outline.Point, norm vec, angle float64) {
	n := max(int(math.Ceil(math.Abs(angle)/(math.Pi/2))), 1)
	step := angle / float64(n)
	a := norm.angle()
	r := norm.length()
	for range n {
		arcSegment(out, center, r, a, a+step)
		a += step
	}
}

func arcSegment(out *outline.Path, center outline.Point, r, a0, a1 float64) {
	da := a1 - a0
	t := math.Tan(da / 2)
	alpha := math.Sin(da) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := outline.Point{X: center.X + r*cos0, Y: center.Y + r*sin0}
	p2 := outline.Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
	c1 := outline.Point{X: p1.X - alpha*r*sin0, Y: p1.Y + alpha*r*cos0}
	c2 := outline.Point{X: p2.X + alpha*r*sin1, Y: p2.Y - alpha*r*cos1}
	out.CurveTo(c1, c2, p2)
}

// flatten subdivides a cubic until each piece is within tolerance of its
// chord. The result starts with p0.
func (e *Expander) flatten(p0, p1, p2, p3 outline.Point) []outline.Point {
	pts := []outline.Point{p0}
	e.flattenRec(p0, p1, p2, p3, &pts, 0)
	return pts
}

func (e *Expander) flattenRec(p0, p1, p2, p3 outline.Point, pts *[]outline.Point, depth int) {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if d < e.tolerance || depth >= 16 {
		*pts = append(*pts, p3)
		return
	}
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)

	e.flattenRec(p0, q0, r0, s, pts, depth+1)
	e.flattenRec(s, r1, q2, p3, pts, depth+1)
}
