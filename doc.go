// Package ivsrender renders Japanese text, including Ideographic Variation
// Sequences, into raster images using a font's own outlines.
//
// # Glyph resolution
//
// A base character followed by one to three variation selectors
// (U+E0100..U+E01EF) is looked up in an Adobe-Japan1 variation table
// (see package ivd). A hit names a CID; the glyph "cidNNNNN" is used when the
// font has it. Otherwise the base character goes through the font's cmap.
// Selectors never render on their own.
//
// # Rendering
//
// Each resolved glyph is drawn on its own frame: stroked with the stroke
// color at the configured weight, then filled. Horizontal text is then
// fitted to the aspect ratio of a target field, compressing glyphs when the
// text is too wide or spacing them out when it is too narrow. Vertical text
// substitutes vertical punctuation forms and stacks frames top to bottom.
//
// Quick start:
//
//	table, err := ivd.Load("IVD_Sequences.txt", ivd.AdobeJapan1)
//	if err != nil { ... }
//	f, err := font.Load("HaranoAjiGothic-Medium.otf")
//	if err != nil { ... }
//
//	r := ivsrender.New(f, table, ivsrender.WithWeight(5))
//	img, err := r.Render("辻\U000E0101", image.Pt(150, 20))
//
// Rendering is all or nothing: if any base character cannot be resolved,
// Render returns a *GlyphResolutionError and no image.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive Debug
// records for resolution decisions and Warn records for aborted renders.
package ivsrender
