package ivsrender

import "image/color"

// RenderOption configures a Renderer or a single Render call.
//
// Example:
//
//	r := ivsrender.New(f, table,
//	    ivsrender.WithWeight(5),
//	    ivsrender.WithStrokeColor(color.RGBA{R: 0xff, A: 0xff}),
//	)
//	img, err := r.Render(text, image.Pt(150, 20), ivsrender.WithVertical(true))
type RenderOption func(*renderOptions)

type renderOptions struct {
	weight        float64
	fill          color.Color
	stroke        color.Color
	vertical      bool
	margin        int
	fontVariation bool
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		weight: 1.0,
		fill:   color.Black,
		stroke: color.Black,
		margin: 50,
	}
}

// WithWeight sets the stroke width in font units. Zero or less disables the
// stroke. Default: 1.
func WithWeight(w float64) RenderOption {
	return func(o *renderOptions) {
		o.weight = w
	}
}

// WithFillColor sets the glyph fill color. Default: black.
func WithFillColor(c color.Color) RenderOption {
	return func(o *renderOptions) {
		if c != nil {
			o.fill = c
		}
	}
}

// WithStrokeColor sets the glyph outline color. Default: black.
func WithStrokeColor(c color.Color) RenderOption {
	return func(o *renderOptions) {
		if c != nil {
			o.stroke = c
		}
	}
}

// WithVertical selects vertical writing. Default: false.
func WithVertical(v bool) RenderOption {
	return func(o *renderOptions) {
		o.vertical = v
	}
}

// WithMargin sets the margin around each glyph frame in font units, before
// half the weight is added to it. Negative values are treated as zero.
// Default: 50.
func WithMargin(m int) RenderOption {
	return func(o *renderOptions) {
		o.margin = max(m, 0)
	}
}

// WithFontVariations makes resolution consult the font's own cmap format 14
// variation sequences when the variation table has no usable entry, before
// falling back to the base character. Default: false.
func WithFontVariations(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.fontVariation = enabled
	}
}
