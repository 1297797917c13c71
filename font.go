package ivsrender

import (
	"github.com/gogpu/ivsrender/font"
	"github.com/gogpu/ivsrender/outline"
)

// Font is the font data a Renderer needs. *font.Source implements it.
type Font interface {
	// GlyphIndex returns the cmap glyph for r.
	GlyphIndex(r rune) (font.GlyphID, bool)
	// GlyphByName returns the glyph with the given name.
	GlyphByName(name string) (font.GlyphID, bool)
	// GlyphName returns the name of gid.
	GlyphName(gid font.GlyphID) string

	HorizontalExtents() font.Extents
	VerticalExtents() (font.Extents, bool)
	VerticalMetrics(gid font.GlyphID) (font.VMetric, bool)
	VerticalOrigin(gid font.GlyphID) (y float64, explicit bool)

	// DrawGlyph replays the outline of gid, in font units with y up.
	DrawGlyph(gid font.GlyphID, pen outline.Pen) error
}

// VariationFont is implemented by fonts that can resolve variation
// sequences from their own cmap. It is only used with WithFontVariations.
type VariationFont interface {
	VariationGlyph(base, selector rune) (font.GlyphID, bool)
}

var _ interface {
	Font
	VariationFont
} = (*font.Source)(nil)
