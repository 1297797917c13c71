package font

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"seehuhn.de/go/sfnt/cff"
)

// Source is a parsed font with its derived lookup tables.
//
// Source is safe for concurrent use.
type Source struct {
	font *gotext.Font

	names    []string // by glyph ID
	byName   map[string]GlyphID
	cmap     CodePointMap
	cidKeyed bool

	hExtents Extents
	vExtents Extents
	hasVhea  bool

	vmtx    tables.Vmtx
	hasVmtx bool

	vorg        map[GlyphID]float64
	vorgDefault float64
	hasVORG     bool
}

// Load reads the first font of the file at path.
func Load(path string) (*Source, error) {
	return LoadIndex(path, 0)
}

// LoadIndex reads font number index of the file at path, which may be a
// single font or a collection.
func LoadIndex(path string, index int) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrResourceNotFound, path, err)
		}
		return nil, fmt.Errorf("font: %w", err)
	}
	return ParseIndex(data, index)
}

// Parse parses the first font of data.
func Parse(data []byte) (*Source, error) {
	return ParseIndex(data, 0)
}

// ParseIndex parses font number index of data.
// The data slice is not retained after ParseIndex returns.
func ParseIndex(data []byte, index int) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	if index < 0 || index >= len(loaders) {
		return nil, &IndexError{Index: index, Count: len(loaders)}
	}
	return newSource(loaders[index])
}

func newSource(ld *ot.Loader) (*Source, error) {
	ft, err := gotext.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	s := &Source{font: ft}

	raw, err := ld.RawTable(ot.MustNewTag("maxp"))
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	maxp, _, err := tables.ParseMaxp(raw)
	if err != nil {
		return nil, fmt.Errorf("font: maxp: %w", err)
	}
	numGlyphs := int(maxp.NumGlyphs)

	s.loadNames(ld, numGlyphs)
	s.loadCmap()

	raw, err = ld.RawTable(ot.MustNewTag("hhea"))
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	hhea, _, err := tables.ParseHhea(raw)
	if err != nil {
		return nil, fmt.Errorf("font: hhea: %w", err)
	}
	s.hExtents = Extents{Ascent: float64(hhea.Ascender), Descent: float64(hhea.Descender)}

	// Vertical tables are optional.
	if raw, err := ld.RawTable(ot.MustNewTag("vhea")); err == nil {
		if vhea, _, err := tables.ParseHhea(raw); err == nil {
			s.vExtents = Extents{Ascent: float64(vhea.Ascender), Descent: float64(vhea.Descender)}
			s.hasVhea = true
			if raw, err := ld.RawTable(ot.MustNewTag("vmtx")); err == nil {
				long := int(vhea.NumOfLongMetrics)
				if vmtx, _, err := tables.ParseHmtx(raw, long, numGlyphs-long); err == nil {
					s.vmtx, s.hasVmtx = vmtx, true
				}
			}
		}
	}
	if raw, err := ld.RawTable(ot.MustNewTag("VORG")); err == nil {
		if vorg, _, err := tables.ParseVORG(raw); err == nil {
			s.hasVORG = true
			s.vorgDefault = float64(vorg.DefaultVertOriginY)
			s.vorg = make(map[GlyphID]float64, len(vorg.VertOriginYMetrics))
			for _, m := range vorg.VertOriginYMetrics {
				s.vorg[GlyphID(m.GlyphIndex)] = float64(m.VertOriginY)
			}
		}
	}
	return s, nil
}

// loadNames builds the glyph-name set. CID-keyed CFF fonts carry no
// names, so their glyphs are named after their CID. A CFF table the cff
// package cannot read leaves the names go-text provides.
func (s *Source) loadNames(ld *ot.Loader, numGlyphs int) {
	s.names = make([]string, numGlyphs)
	s.byName = make(map[string]GlyphID, numGlyphs)

	var cids []uint32
	if raw, err := ld.RawTable(ot.MustNewTag("CFF ")); err == nil {
		if info, err := cff.Read(bytes.NewReader(raw)); err == nil && info.ROS != nil {
			cids = make([]uint32, len(info.GIDToCID))
			for gid, cid := range info.GIDToCID {
				cids[gid] = uint32(cid)
			}
		}
	}
	s.cidKeyed = cids != nil

	for gid := range s.names {
		var name string
		switch {
		case gid == 0:
			name = ".notdef"
		case s.cidKeyed && gid < len(cids):
			name = fmt.Sprintf("cid%05d", cids[gid])
		default:
			name = s.font.GlyphName(gotext.GID(gid)) //nolint:gosec // gid < numGlyphs
		}
		if name == "" {
			name = fmt.Sprintf("glyph%05d", gid)
		}
		s.names[gid] = name
		if _, dup := s.byName[name]; !dup {
			s.byName[name] = GlyphID(gid) //nolint:gosec // gid < numGlyphs
		}
	}
}

func (s *Source) loadCmap() {
	s.cmap = newCodePointMap(0)
	it := s.font.Cmap.Iter()
	for it.Next() {
		r, gid := it.Char()
		if int(gid) >= len(s.names) {
			continue
		}
		s.cmap.add(r, GlyphID(gid)) //nolint:gosec // checked against numGlyphs
	}
}

// NumGlyphs returns the number of glyphs in the font.
func (s *Source) NumGlyphs() int { return len(s.names) }

// UnitsPerEm returns the font's design units per em.
func (s *Source) UnitsPerEm() int { return int(s.font.Upem()) }

// CIDKeyed reports whether glyph names were derived from a CFF CID charset.
func (s *Source) CIDKeyed() bool { return s.cidKeyed }

// CodePoints returns the font's codepoint map.
func (s *Source) CodePoints() CodePointMap { return s.cmap }

// GlyphIndex returns the glyph mapped to r by the cmap.
func (s *Source) GlyphIndex(r rune) (GlyphID, bool) {
	return s.cmap.Glyph(r)
}

// GlyphByName returns the glyph called name.
func (s *Source) GlyphByName(name string) (GlyphID, bool) {
	gid, ok := s.byName[name]
	return gid, ok
}

// GlyphName returns the name of gid, or "" when gid is out of range.
func (s *Source) GlyphName(gid GlyphID) string {
	if int(gid) >= len(s.names) {
		return ""
	}
	return s.names[gid]
}

// GlyphNames returns the sorted glyph-name set.
func (s *Source) GlyphNames() []string {
	out := slices.Clone(s.names)
	slices.Sort(out)
	return slices.Compact(out)
}

// VariationGlyph looks up a base character and variation selector in the
// font's own cmap format 14 subtable.
func (s *Source) VariationGlyph(base, selector rune) (GlyphID, bool) {
	gid, ok := s.font.VariationGlyph(base, selector)
	if !ok || int(gid) >= len(s.names) {
		return 0, false
	}
	return GlyphID(gid), true //nolint:gosec // checked against numGlyphs
}

// HorizontalExtents returns the hhea ascent and descent.
func (s *Source) HorizontalExtents() Extents { return s.hExtents }

// VerticalExtents returns the vhea ascent and descent. ok is false when the
// font has no vhea table.
func (s *Source) VerticalExtents() (ext Extents, ok bool) {
	return s.vExtents, s.hasVhea
}

// VerticalMetrics returns the vmtx entry of gid.
func (s *Source) VerticalMetrics(gid GlyphID) (VMetric, bool) {
	if !s.hasVmtx || int(gid) >= len(s.names) {
		return VMetric{}, false
	}
	g := tables.GlyphID(gid)
	return VMetric{
		Advance:        float64(s.vmtx.Advance(g)),
		TopSideBearing: float64(s.vmtx.SideBearing(g)),
	}, true
}

// VerticalOrigin returns the VORG y origin of gid. explicit is true only
// when the table has an entry for gid; otherwise y is the table default.
// Both are zero when the font has no VORG table.
func (s *Source) VerticalOrigin(gid GlyphID) (y float64, explicit bool) {
	if !s.hasVORG {
		return 0, false
	}
	if y, ok := s.vorg[gid]; ok {
		return y, true
	}
	return s.vorgDefault, false
}
