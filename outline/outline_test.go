package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(pen Pen) {
	pen.MoveTo(Point{10, 20})
	pen.LineTo(Point{110, 20})
	pen.CurveTo(Point{120, 20}, Point{130, 150}, Point{110, 120})
	pen.LineTo(Point{10, 120})
	pen.ClosePath()
}

func TestBounds(t *testing.T) {
	var b Bounds
	assert.True(t, b.Empty())
	assert.Zero(t, b.Width())
	assert.Zero(t, b.Height())

	square(&b)
	require.False(t, b.Empty())
	assert.Equal(t, Point{10, 20}, b.Min)
	// control points count
	assert.Equal(t, Point{130, 150}, b.Max)
	assert.Equal(t, 120.0, b.Width())
	assert.Equal(t, 130.0, b.Height())
}

func TestPathReplay(t *testing.T) {
	var p Path
	assert.True(t, p.IsEmpty())
	square(&p)
	require.Len(t, p, 5)
	assert.False(t, p.IsEmpty())
	assert.Equal(t, OpCurveTo, p[2].Op)
	assert.Equal(t, Point{110, 120}, p[2].End())

	var again Path
	p.Replay(&again)
	assert.Equal(t, p, again)
}

func TestPathMoveOnlyIsEmpty(t *testing.T) {
	var p Path
	p.MoveTo(Point{1, 1})
	p.ClosePath()
	assert.True(t, p.IsEmpty())
}

func TestTransform(t *testing.T) {
	var p Path
	tr := Transform{Pen: &p, DX: 5, Baseline: 100}
	tr.MoveTo(Point{0, 0})
	tr.LineTo(Point{10, 30})
	tr.CurveTo(Point{1, 1}, Point{2, 2}, Point{3, 100})
	tr.ClosePath()

	require.Len(t, p, 4)
	assert.Equal(t, Point{5, 100}, p[0].Args[0])
	assert.Equal(t, Point{15, 70}, p[1].Args[0])
	assert.Equal(t, [3]Point{{6, 99}, {7, 98}, {8, 0}}, p[2].Args)
	assert.Equal(t, OpClose, p[3].Op)
}

func TestTee(t *testing.T) {
	var (
		b Bounds
		p Path
	)
	square(Tee{&b, &p})
	assert.Len(t, p, 5)
	assert.Equal(t, 120.0, b.Width())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "MoveTo", OpMoveTo.String())
	assert.Equal(t, "CurveTo", OpCurveTo.String())
	assert.Equal(t, "Close", OpClose.String())
	assert.Equal(t, "Unknown", Op(42).String())
}
