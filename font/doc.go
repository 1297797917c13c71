// Package font exposes the parts of an OpenType font that IVS rendering
// needs: the codepoint map, the glyph-name set, horizontal and vertical
// metrics, vertical origins and glyph outlines.
//
// Everything is derived eagerly when a [Source] is created, so a Source is
// read-only afterwards and safe for concurrent use.
//
// Parsing is delegated to github.com/go-text/typesetting. Glyph names of
// CID-keyed CFF fonts are built from the CFF charset as "cidNNNNN", which
// matches the names used by Adobe-Japan1 variation tables.
package font
