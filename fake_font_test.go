package ivsrender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/ivsrender/font"
	"github.com/gogpu/ivsrender/ivd"
	"github.com/gogpu/ivsrender/outline"
)

// fakeFont draws every glyph as a rectangle from (0, 0) to (width, 700).
// Glyphs of width 0 are blank.
type fakeFont struct {
	cmap       map[rune]font.GlyphID
	glyphs     []fakeGlyph
	ext        font.Extents
	vext       *font.Extents
	vmtx       map[font.GlyphID]font.VMetric
	vorg       map[font.GlyphID]float64
	variations map[[2]rune]font.GlyphID
}

type fakeGlyph struct {
	name  string
	width float64
}

const glyphTop = 700

const (
	gidNotdef font.GlyphID = iota
	gidA
	gidBase // U+9B31
	gidCID12345
	gidCID12346
	gidSpace
	gidVertBracket // U+FE41
	gidWide
	gidCID12347
)

func newFakeFont() *fakeFont {
	return &fakeFont{
		cmap: map[rune]font.GlyphID{
			'A':    gidA,
			0x9B31: gidBase,
			' ':    gidSpace,
			'﹁':    gidVertBracket,
			'W':    gidWide,
		},
		glyphs: []fakeGlyph{
			gidNotdef:      {".notdef", 400},
			gidA:           {"A", 500},
			gidBase:        {"uni9B31", 900},
			gidCID12345:    {"cid12345", 880},
			gidCID12346:    {"cid12346", 860},
			gidSpace:       {"space", 0},
			gidVertBracket: {"uniFE41", 300},
			gidWide:        {"W", 1500},
			gidCID12347:    {"cid12347", 840},
		},
		ext: font.Extents{Ascent: 800, Descent: -200},
	}
}

func (f *fakeFont) GlyphIndex(r rune) (font.GlyphID, bool) {
	gid, ok := f.cmap[r]
	return gid, ok
}

func (f *fakeFont) GlyphByName(name string) (font.GlyphID, bool) {
	for i, g := range f.glyphs {
		if g.name == name {
			return font.GlyphID(i), true
		}
	}
	return 0, false
}

func (f *fakeFont) GlyphName(gid font.GlyphID) string {
	if int(gid) >= len(f.glyphs) {
		return ""
	}
	return f.glyphs[gid].name
}

func (f *fakeFont) HorizontalExtents() font.Extents { return f.ext }

func (f *fakeFont) VerticalExtents() (font.Extents, bool) {
	if f.vext == nil {
		return font.Extents{}, false
	}
	return *f.vext, true
}

func (f *fakeFont) VerticalMetrics(gid font.GlyphID) (font.VMetric, bool) {
	m, ok := f.vmtx[gid]
	return m, ok
}

func (f *fakeFont) VerticalOrigin(gid font.GlyphID) (float64, bool) {
	y, ok := f.vorg[gid]
	return y, ok
}

func (f *fakeFont) VariationGlyph(base, selector rune) (font.GlyphID, bool) {
	gid, ok := f.variations[[2]rune{base, selector}]
	return gid, ok
}

func (f *fakeFont) DrawGlyph(gid font.GlyphID, pen outline.Pen) error {
	w := f.glyphs[gid].width
	if w == 0 {
		return nil
	}
	pen.MoveTo(outline.Point{X: 0, Y: 0})
	pen.LineTo(outline.Point{X: w, Y: 0})
	pen.LineTo(outline.Point{X: w, Y: glyphTop})
	pen.LineTo(outline.Point{X: 0, Y: glyphTop})
	pen.ClosePath()
	return nil
}

// without returns a copy of f whose cmap lacks r.
func (f *fakeFont) without(r rune) *fakeFont {
	c := *f
	c.cmap = make(map[rune]font.GlyphID, len(f.cmap))
	for k, v := range f.cmap {
		if k != r {
			c.cmap[k] = v
		}
	}
	return &c
}

const testRegistry = `# test registry
9B31 E0100; Adobe-Japan1; CID+12345
9B31 E0101; Adobe-Japan1; CID+99999
9B31 E0100 E0102; Adobe-Japan1; CID+12346
9B31 E0100 E0101 E0102; Adobe-Japan1; CID+12347
9B31 E0103; Hanyo-Denshi; CID+12346
`

func testTable(t *testing.T) *ivd.Table {
	t.Helper()
	table, err := ivd.Parse(strings.NewReader(testRegistry), ivd.AdobeJapan1)
	require.NoError(t, err)
	return table
}
