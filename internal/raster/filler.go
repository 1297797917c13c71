// Package raster fills outlines onto RGBA images with golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"github.com/gogpu/ivsrender/outline"
)

// Filler is an outline.Pen that accumulates contours in image coordinates
// and paints them with Fill. Coverage is accumulated nonzero-style.
type Filler struct {
	dst *image.RGBA
	r   *vector.Rasterizer
}

// NewFiller returns a Filler painting onto dst.
func NewFiller(dst *image.RGBA) *Filler {
	b := dst.Bounds()
	return &Filler{dst: dst, r: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (f *Filler) MoveTo(p outline.Point) { f.r.MoveTo(f.pt(p)) }
func (f *Filler) LineTo(p outline.Point) { f.r.LineTo(f.pt(p)) }
func (f *Filler) ClosePath()             { f.r.ClosePath() }

func (f *Filler) CurveTo(c1, c2, p outline.Point) {
	x1, y1 := f.pt(c1)
	x2, y2 := f.pt(c2)
	x, y := f.pt(p)
	f.r.CubeTo(x1, y1, x2, y2, x, y)
}

// pt converts to rasterizer coordinates, which start at the image origin.
func (f *Filler) pt(p outline.Point) (float32, float32) {
	o := f.dst.Bounds().Min
	return float32(p.X - float64(o.X)), float32(p.Y - float64(o.Y))
}

// Fill paints the accumulated contours with c and clears them.
func (f *Filler) Fill(c color.Color) {
	b := f.dst.Bounds()
	f.r.Draw(f.dst, b, image.NewUniform(c), image.Point{})
	f.r.Reset(b.Dx(), b.Dy())
}

// FillPath replays path into a fresh Filler on dst and paints it with c.
func FillPath(dst *image.RGBA, path outline.Path, c color.Color) {
	if path.IsEmpty() {
		return
	}
	f := NewFiller(dst)
	path.Replay(f)
	f.Fill(c)
}
