// Package stroke expands a glyph outline into the filled outline of its
// stroke.
//
// Every contour is offset by half the stroke width on both sides. The
// outer offset runs forward, the inner one is reversed, and joins connect
// consecutive segments. Closed contours, which is what glyph outlines are
// made of, yield two closed rings; open contours are capped at both ends.
// Filling the result with the nonzero rule paints the stroke.
//
// Curves are flattened before offsetting, with a tolerance of 0.25 units
// unless changed with [Expander.SetTolerance].
//
// The algorithm follows kurbo's stroke.rs and tiny-skia's stroker.rs.
package stroke
