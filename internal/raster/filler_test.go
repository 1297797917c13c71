package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/ivsrender/outline"
)

func white(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func rect(p *outline.Path, x0, y0, x1, y1 float64, clockwise bool) {
	pts := []outline.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	if !clockwise {
		pts[1], pts[3] = pts[3], pts[1]
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
}

var black = color.RGBA{A: 0xff}

func TestFillPath(t *testing.T) {
	img := white(10, 10)
	var p outline.Path
	rect(&p, 2, 2, 8, 8, true)

	FillPath(img, p, black)

	assert.Equal(t, black, img.RGBAAt(5, 5))
	assert.Equal(t, black, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(9, 9))
}

func TestFillNonZero(t *testing.T) {
	var same, opposite outline.Path
	rect(&same, 0, 0, 10, 10, true)
	rect(&same, 3, 3, 7, 7, true)
	rect(&opposite, 0, 0, 10, 10, true)
	rect(&opposite, 3, 3, 7, 7, false)

	img := white(10, 10)
	FillPath(img, same, black)
	assert.Equal(t, black, img.RGBAAt(5, 5), "overlap with equal winding stays filled")

	img = white(10, 10)
	FillPath(img, opposite, black)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(5, 5), "reversed inner contour is a hole")
	assert.Equal(t, black, img.RGBAAt(1, 1))
}

func TestFillerReuse(t *testing.T) {
	img := white(10, 10)
	red := color.RGBA{R: 0xff, A: 0xff}

	f := NewFiller(img)
	var p outline.Path
	rect(&p, 0, 0, 5, 10, true)
	p.Replay(f)
	f.Fill(red)

	p = p[:0]
	rect(&p, 5, 0, 10, 10, true)
	p.Replay(f)
	f.Fill(black)

	assert.Equal(t, red, img.RGBAAt(2, 5))
	assert.Equal(t, black, img.RGBAAt(7, 5))
}

func TestFillerOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 20, 20))
	var p outline.Path
	rect(&p, 12, 12, 18, 18, true)

	FillPath(img, p, black)
	assert.Equal(t, black, img.RGBAAt(15, 15))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 10))
}

func TestFillEmptyPath(t *testing.T) {
	img := white(4, 4)
	var p outline.Path
	p.MoveTo(outline.Point{X: 1, Y: 1})
	p.ClosePath()

	FillPath(img, p, black)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(1, 1))
}
