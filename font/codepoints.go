package font

import (
	"iter"
	"maps"
)

// GlyphID is a font-internal glyph index.
type GlyphID uint16

// CodePointMap maps codepoints to glyphs and glyphs back to their primary
// codepoint. When several codepoints share a glyph, the lowest one is
// primary.
type CodePointMap struct {
	byRune  map[rune]GlyphID
	byGlyph map[GlyphID]rune
}

func newCodePointMap(size int) CodePointMap {
	return CodePointMap{
		byRune:  make(map[rune]GlyphID, size),
		byGlyph: make(map[GlyphID]rune, size),
	}
}

func (m CodePointMap) add(r rune, gid GlyphID) {
	m.byRune[r] = gid
	if prev, ok := m.byGlyph[gid]; !ok || r < prev {
		m.byGlyph[gid] = r
	}
}

// Glyph returns the glyph mapped to r.
func (m CodePointMap) Glyph(r rune) (GlyphID, bool) {
	gid, ok := m.byRune[r]
	return gid, ok
}

// Rune returns the primary codepoint of gid.
func (m CodePointMap) Rune(gid GlyphID) (rune, bool) {
	r, ok := m.byGlyph[gid]
	return r, ok
}

// Len returns the number of mapped codepoints.
func (m CodePointMap) Len() int { return len(m.byRune) }

// All iterates over every codepoint and its glyph, in no particular order.
func (m CodePointMap) All() iter.Seq2[rune, GlyphID] {
	return maps.All(m.byRune)
}
