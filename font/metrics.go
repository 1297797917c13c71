package font

// Extents are the ascent and descent of a font in font units.
// Descent is negative below the baseline.
type Extents struct {
	Ascent  float64
	Descent float64
}

// LineHeight returns Ascent - Descent.
func (e Extents) LineHeight() float64 {
	return e.Ascent - e.Descent
}

// VMetric is a glyph's vmtx entry.
type VMetric struct {
	Advance        float64
	TopSideBearing float64
}
