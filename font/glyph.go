package font

import (
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/ivsrender/outline"
)

// DrawGlyph replays the outline of gid into pen in font units with the y
// axis pointing up. Quadratic segments are raised to cubics and every
// contour is closed. Glyphs without outline data (bitmap-only or blank)
// draw nothing.
func (s *Source) DrawGlyph(gid GlyphID, pen outline.Pen) error {
	if int(gid) >= len(s.names) {
		return fmt.Errorf("font: glyph %d out of range (%d glyphs)", gid, len(s.names))
	}
	// Faces carry caches that are not safe for concurrent use.
	face := gotext.NewFace(s.font)
	data, ok := face.GlyphData(gotext.GID(gid)).(gotext.GlyphOutline)
	if !ok {
		return nil
	}

	var (
		cur  outline.Point
		open bool
	)
	for _, seg := range data.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				pen.ClosePath()
			}
			cur = point(seg.Args[0])
			pen.MoveTo(cur)
			open = true
		case ot.SegmentOpLineTo:
			cur = point(seg.Args[0])
			pen.LineTo(cur)
		case ot.SegmentOpQuadTo:
			q, p := point(seg.Args[0]), point(seg.Args[1])
			c1 := outline.Point{X: cur.X + 2.0/3.0*(q.X-cur.X), Y: cur.Y + 2.0/3.0*(q.Y-cur.Y)}
			c2 := outline.Point{X: p.X + 2.0/3.0*(q.X-p.X), Y: p.Y + 2.0/3.0*(q.Y-p.Y)}
			pen.CurveTo(c1, c2, p)
			cur = p
		case ot.SegmentOpCubeTo:
			cur = point(seg.Args[2])
			pen.CurveTo(point(seg.Args[0]), point(seg.Args[1]), cur)
		}
	}
	if open {
		pen.ClosePath()
	}
	return nil
}

func point(p gotext.SegmentPoint) outline.Point {
	return outline.Point{X: float64(p.X), Y: float64(p.Y)}
}
