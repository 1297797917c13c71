package outline

// Transform forwards to Pen after mapping font units (y up) into image
// coordinates (y down): x' = x + DX, y' = Baseline - y.
type Transform struct {
	Pen      Pen
	DX       float64
	Baseline float64
}

func (t Transform) apply(p Point) Point {
	return Point{X: p.X + t.DX, Y: t.Baseline - p.Y}
}

func (t Transform) MoveTo(p Point) { t.Pen.MoveTo(t.apply(p)) }
func (t Transform) LineTo(p Point) { t.Pen.LineTo(t.apply(p)) }
func (t Transform) ClosePath()     { t.Pen.ClosePath() }

func (t Transform) CurveTo(c1, c2, p Point) {
	t.Pen.CurveTo(t.apply(c1), t.apply(c2), t.apply(p))
}

// Tee forwards every operation to each of its pens in order.
type Tee []Pen

func (t Tee) MoveTo(p Point) {
	for _, pen := range t {
		pen.MoveTo(p)
	}
}

func (t Tee) LineTo(p Point) {
	for _, pen := range t {
		pen.LineTo(p)
	}
}

func (t Tee) CurveTo(c1, c2, p Point) {
	for _, pen := range t {
		pen.CurveTo(c1, c2, p)
	}
}

func (t Tee) ClosePath() {
	for _, pen := range t {
		pen.ClosePath()
	}
}
