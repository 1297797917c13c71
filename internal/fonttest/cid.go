// Package fonttest builds small OpenType fonts for tests.
package fonttest

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"
)

// Glyphs of the font returned by CIDKeyed.
const (
	// GIDIchi is U+4E00 in the cmap, CID 1.
	GIDIchi = 1
	// GIDTei is U+4E01 in the cmap, CID 2.
	GIDTei = 2
	// GIDTeiVariant has no cmap entry, CID 12345.
	GIDTeiVariant = 3

	// Advance is the width of every glyph.
	Advance = 1000
)

// CIDKeyed returns an OpenType font with CID-keyed CFF outlines in the
// Adobe-Japan1 collection. Every glyph except .notdef is a filled
// rectangle of a different width: 600, 400 and 800 units, all 700 high.
func CIDKeyed() ([]byte, error) {
	glyphs := []*cff.Glyph{
		{Width: Advance},
		rect(600),
		rect(400),
		rect(800),
	}
	outlines := &cff.Outlines{
		Glyphs: glyphs,
		Private: []*type1.PrivateDict{
			{
				BlueValues: []funit.Int16{-10, 0, 700, 710},
				BlueScale:  0.039625,
				BlueShift:  7,
				BlueFuzz:   1,
				StdHW:      50,
				StdVW:      50,
			},
		},
		FDSelect: func(glyph.ID) int { return 0 },
		ROS: &cid.SystemInfo{
			Registry:   "Adobe",
			Ordering:   "Japan1",
			Supplement: 7,
		},
		GIDToCID:     []cid.CID{0, 1, 2, 12345},
		FontMatrices: []matrix.Matrix{{0.001, 0, 0, 0.001, 0, 0}},
	}

	sub := cmap.Format4{0x4E00: GIDIchi, 0x4E01: GIDTei}
	f := &sfnt.Font{
		FamilyName: "CIDTest",
		Width:      os2.WidthNormal,
		Weight:     os2.WeightNormal,
		IsRegular:  true,
		UnitsPerEm: 1000,
		FontMatrix: matrix.Identity,
		Ascent:     880,
		Descent:    -120,
		CapHeight:  700,
		XHeight:    500,
		Outlines:   outlines,
		CMapTable: cmap.Table{
			{PlatformID: 0, EncodingID: 3}: sub.Encode(0),
			{PlatformID: 3, EncodingID: 1}: sub.Encode(0),
		},
	}

	var buf bytes.Buffer
	if _, err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rect(w float64) *cff.Glyph {
	g := &cff.Glyph{Width: Advance}
	g.MoveTo(0, 0)
	g.LineTo(w, 0)
	g.LineTo(w, 700)
	g.LineTo(0, 700)
	return g
}
