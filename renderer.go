package ivsrender

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ivsrender/internal/raster"
	"github.com/gogpu/ivsrender/internal/stroke"
	"github.com/gogpu/ivsrender/ivd"
	"github.com/gogpu/ivsrender/outline"
)

// Renderer resolves and renders text with one font and variation table.
//
// A Renderer only reads its font and table, so it is safe for concurrent
// use when they are.
type Renderer struct {
	font  Font
	table *ivd.Table
	opts  renderOptions
}

// New returns a Renderer for f. table may be nil, in which case every
// character resolves through the cmap. Only Adobe-Japan1 tables name
// glyphs a font can be searched for; with any other collection variation
// sequences fall back to their base characters. opts become the defaults
// of every Render call.
func New(f Font, table *ivd.Table, opts ...RenderOption) *Renderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if table != nil && table.Collection() != ivd.AdobeJapan1 {
		Logger().Warn("ivsrender: variation table cannot name glyphs, sequences fall back to base characters",
			slog.String("collection", table.Collection()))
	}
	return &Renderer{font: f, table: table, opts: o}
}

func (r *Renderer) options(opts []RenderOption) renderOptions {
	o := r.opts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Frame is one rendered glyph before assembly.
type Frame struct {
	Glyph ResolvedGlyph
	Image *image.RGBA
	// Advance is the frame width for horizontal text and the glyph's
	// vertical advance for vertical text, in font units.
	Advance float64
	// Baseline is the y coordinate of the glyph's baseline in Image.
	Baseline float64
}

// Frames resolves text and renders one frame per base character. It fails
// with a *GlyphResolutionError on the first character without a glyph.
func (r *Renderer) Frames(text string, opts ...RenderOption) ([]Frame, error) {
	return r.frames(text, r.options(opts))
}

func (r *Renderer) frames(text string, o renderOptions) ([]Frame, error) {
	runes := []rune(text)
	if o.vertical {
		runes = toVertical(runes)
	}
	margin := o.margin + int(o.weight/2)

	var out []Frame
	for c := range clusters(runes) {
		g, ok := r.resolve(c.base, c.lookahead, o)
		if !ok {
			err := &GlyphResolutionError{Rune: c.base, Index: c.index, Sequence: g.Source}
			Logger().Warn("ivsrender: render aborted", slog.String("error", err.Error()))
			return nil, err
		}
		f, err := r.frame(g, margin, o)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, ErrEmptyText
	}
	return out, nil
}

// frame draws one glyph. The em box (ascent to descent) sits between the
// top and bottom margins; horizontally the glyph's bounding box is inset by
// the margin, vertically it is centered in the vertical line width.
func (r *Renderer) frame(g ResolvedGlyph, margin int, o renderOptions) (Frame, error) {
	var glyph outline.Path
	var bb outline.Bounds
	if err := r.font.DrawGlyph(g.GID, outline.Tee{&glyph, &bb}); err != nil {
		return Frame{}, fmt.Errorf("ivsrender: glyph %q: %w", g.Name, err)
	}

	ext := r.font.HorizontalExtents()
	m := float64(margin)
	h := int(ext.LineHeight()) + 2*margin
	baseline := m + ext.Ascent

	var w int
	var dx, advance float64
	if o.vertical {
		vext, ok := r.font.VerticalExtents()
		if !ok {
			vext = ext
		}
		w = int(vext.LineHeight())
		if !bb.Empty() {
			dx = (float64(w)-bb.Width())/2 - bb.Min.X
		}
		advance = ext.LineHeight()
		if vm, ok := r.font.VerticalMetrics(g.GID); ok {
			advance = vm.Advance
		}
		if y, explicit := r.font.VerticalOrigin(g.GID); explicit {
			baseline = m + y
		}
	} else {
		w = 2 * margin
		if !bb.Empty() {
			w += int(bb.Width())
			dx = m - bb.Min.X
		}
		advance = float64(w)
	}
	w, h = max(w, 1), max(h, 1)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var path outline.Path
	glyph.Replay(outline.Transform{Pen: &path, DX: dx, Baseline: baseline})

	if o.weight > 0 {
		style := stroke.DefaultStyle()
		style.Width = o.weight
		raster.FillPath(img, stroke.NewExpander(style).Expand(path), o.stroke)
	}
	raster.FillPath(img, path, o.fill)

	return Frame{Glyph: g, Image: img, Advance: advance, Baseline: baseline}, nil
}

// Render draws text fitted to the aspect ratio of field (width, height).
// The result is as tall as the glyph frames; see the package documentation
// for the fitting rules.
func (r *Renderer) Render(text string, field image.Point, opts ...RenderOption) (*image.RGBA, error) {
	if field.X <= 0 || field.Y <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFieldSize, field)
	}
	o := r.options(opts)
	frames, err := r.frames(text, o)
	if err != nil {
		return nil, err
	}
	if o.vertical {
		return stackVertical(frames), nil
	}
	return fitHorizontal(frames, float64(field.X)/float64(field.Y)), nil
}

// Render draws text with f and table. See Renderer.Render.
func Render(text string, f Font, table *ivd.Table, field image.Point, opts ...RenderOption) (*image.RGBA, error) {
	return New(f, table).Render(text, field, opts...)
}

// fitHorizontal lays frames out left to right so the canvas has the target
// aspect ratio. Text wider than the target is compressed horizontally.
// Narrower text is spaced out evenly, with half a space at each end.
func fitHorizontal(frames []Frame, target float64) *image.RGBA {
	total, maxH := 0, 0
	for _, f := range frames {
		b := f.Image.Bounds()
		total += b.Dx()
		maxH = max(maxH, b.Dy())
	}
	aspect := float64(total) / float64(maxH)

	rate, over, space := 1.0, 0.0, 0.0
	if target < aspect {
		rate = aspect / target
	} else {
		over = float64(maxH)*target - float64(total)
		space = over / float64(len(frames))
	}

	width := max(int(math.RoundToEven(float64(total)/rate+over)), 1)
	canvas := image.NewRGBA(image.Rect(0, 0, width, maxH))

	x := 0.0
	for i, f := range frames {
		s := space
		if i == 0 {
			s = space / 2
		}
		src := f.Image
		b := src.Bounds()
		if w := max(int(math.RoundToEven(float64(b.Dx())/rate)), 1); w != b.Dx() {
			scaled := image.NewRGBA(image.Rect(0, 0, w, b.Dy()))
			xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, xdraw.Src, nil)
			src, b = scaled, scaled.Bounds()
		}
		at := image.Pt(int(math.RoundToEven(x+s)), maxH-b.Dy())
		draw.Draw(canvas, b.Add(at), src, b.Min, draw.Over)
		x += float64(b.Dx()) + s
	}
	return canvas
}

// stackVertical places frames top to bottom on a canvas as wide as the
// widest frame. There is no fitting in vertical mode.
func stackVertical(frames []Frame) *image.RGBA {
	maxW, total := 0, 0
	for _, f := range frames {
		b := f.Image.Bounds()
		maxW = max(maxW, b.Dx())
		total += b.Dy()
	}
	canvas := image.NewRGBA(image.Rect(0, 0, maxW, total))
	y := 0
	for _, f := range frames {
		b := f.Image.Bounds()
		draw.Draw(canvas, b.Add(image.Pt(0, y)), f.Image, b.Min, draw.Over)
		y += b.Dy()
	}
	return canvas
}
