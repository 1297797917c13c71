package ivsrender

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/ivsrender/font"
	"github.com/gogpu/ivsrender/ivd"
)

// Sentinel errors for ivsrender.
var (
	// ErrGlyphResolution matches every *GlyphResolutionError.
	ErrGlyphResolution = errors.New("ivsrender: glyph resolution failed")

	// ErrEmptyText is returned when text contains no base characters.
	ErrEmptyText = errors.New("ivsrender: text has no characters to render")

	// ErrInvalidFieldSize is returned for a target field that is not
	// positive in both dimensions.
	ErrInvalidFieldSize = errors.New("ivsrender: field size must be positive")
)

// IsResourceNotFound reports whether err comes from a missing variation
// registry or font file.
func IsResourceNotFound(err error) bool {
	return errors.Is(err, ivd.ErrResourceNotFound) || errors.Is(err, font.ErrResourceNotFound)
}

// GlyphResolutionError reports a base character with no glyph: neither a
// variation table entry present in the font nor a cmap mapping.
type GlyphResolutionError struct {
	// Rune is the base character.
	Rune rune
	// Index is the position of Rune in the text, counted in runes.
	Index int
	// Sequence is the base character and the selectors that followed it.
	Sequence []rune
}

func (e *GlyphResolutionError) Error() string {
	name := runenames.Name(e.Rune)
	if name == "" {
		name = "unnamed"
	}
	if len(e.Sequence) > 1 {
		return fmt.Sprintf("ivsrender: no glyph for U+%04X (%s) at index %d, sequence %s",
			e.Rune, name, e.Index, ivd.KeyOf(e.Sequence))
	}
	return fmt.Sprintf("ivsrender: no glyph for U+%04X (%s) at index %d", e.Rune, name, e.Index)
}

// Is reports whether target is ErrGlyphResolution.
func (e *GlyphResolutionError) Is(target error) bool {
	return target == ErrGlyphResolution
}
