package ivsrender

import (
	"iter"
	"log/slog"

	"github.com/gogpu/ivsrender/font"
	"github.com/gogpu/ivsrender/ivd"
)

// ResolvedGlyph is the glyph chosen for a base character.
type ResolvedGlyph struct {
	GID  font.GlyphID
	Name string
	// Source is the base character followed by its selectors, if any.
	Source []rune
	// Variant is true when the glyph came from a variation sequence.
	Variant bool
}

// cluster is a base character and the lookahead that follows it.
type cluster struct {
	index     int
	base      rune
	lookahead []rune
}

// clusters yields every base character of text. Selectors are consumed as
// lookahead of the character before them and never yielded themselves.
func clusters(text []rune) iter.Seq[cluster] {
	return func(yield func(cluster) bool) {
		for i, r := range text {
			if ivd.IsSelector(r) {
				continue
			}
			end := min(i+1+ivd.MaxSelectors, len(text))
			if !yield(cluster{index: i, base: r, lookahead: text[i+1 : end]}) {
				return
			}
		}
	}
}

// Resolve picks the glyph for base given the characters that follow it.
// Pass no lookahead at the end of the text. It reports false when neither
// the variation table nor the cmap provides a glyph.
func (r *Renderer) Resolve(base rune, lookahead ...rune) (ResolvedGlyph, bool) {
	return r.resolve(base, lookahead, r.opts)
}

func (r *Renderer) resolve(base rune, lookahead []rune, o renderOptions) (ResolvedGlyph, bool) {
	n := ivd.Chain(lookahead)
	seq := make([]rune, 0, 1+n)
	seq = append(seq, base)
	seq = append(seq, lookahead[:n]...)
	log := Logger()

	if n > 0 {
		key := ivd.KeyOf(seq)
		if cid, ok := r.table.Lookup(key); ok {
			if name, ok := ivd.GlyphName(cid); ok {
				if gid, ok := r.font.GlyphByName(name); ok {
					log.Debug("ivsrender: variation sequence resolved",
						slog.String("sequence", string(key)), slog.String("glyph", name))
					return ResolvedGlyph{GID: gid, Name: name, Source: seq, Variant: true}, true
				}
				log.Debug("ivsrender: variation glyph not in font",
					slog.String("sequence", string(key)), slog.String("glyph", name))
			}
		}
		if vf, ok := r.font.(VariationFont); ok && o.fontVariation {
			if gid, ok := vf.VariationGlyph(base, seq[1]); ok {
				name := r.font.GlyphName(gid)
				log.Debug("ivsrender: variation sequence resolved by font cmap",
					slog.String("sequence", string(key)), slog.String("glyph", name))
				return ResolvedGlyph{GID: gid, Name: name, Source: seq, Variant: true}, true
			}
		}
	}

	gid, ok := r.font.GlyphIndex(base)
	if !ok {
		log.Debug("ivsrender: no glyph", slog.String("char", string(base)))
		return ResolvedGlyph{Source: seq}, false
	}
	if n > 0 {
		log.Debug("ivsrender: variation sequence falls back to base character",
			slog.String("sequence", string(ivd.KeyOf(seq))))
	}
	return ResolvedGlyph{GID: gid, Name: r.font.GlyphName(gid), Source: seq}, true
}

// IsRenderable reports whether every base character of text resolves.
func (r *Renderer) IsRenderable(text string) bool {
	for c := range clusters([]rune(text)) {
		if _, ok := r.resolve(c.base, c.lookahead, r.opts); !ok {
			return false
		}
	}
	return true
}

// Unrenderable returns an error for every base character of text that does
// not resolve, in text order.
func (r *Renderer) Unrenderable(text string) []*GlyphResolutionError {
	var out []*GlyphResolutionError
	for c := range clusters([]rune(text)) {
		if g, ok := r.resolve(c.base, c.lookahead, r.opts); !ok {
			out = append(out, &GlyphResolutionError{Rune: c.base, Index: c.index, Sequence: g.Source})
		}
	}
	return out
}

// IsRenderable reports whether f, with table, has a glyph for every base
// character of text.
func IsRenderable(text string, f Font, table *ivd.Table) bool {
	return New(f, table).IsRenderable(text)
}
