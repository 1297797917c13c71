// Package ivd reads Ideographic Variation Database registries and classifies
// variation selector code points.
//
// A registry file (IVD_Sequences.txt and compatible files) lists one
// variation sequence per line:
//
//	9B31 E0100; Adobe-Japan1; CID+14183
//
// The first field is a code sequence spelled as space separated uppercase
// hexadecimal code points, the second names a glyph collection and the third
// identifies the glyph inside that collection. Several collections share one
// file; a Table holds the entries of exactly one of them.
//
// Tables are built once and are read-only afterwards, so a single Table may be
// shared by any number of goroutines.
package ivd
