package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for the font package.
var (
	// ErrResourceNotFound is returned when a font file does not exist.
	ErrResourceNotFound = errors.New("font: resource not found")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")
)

// IndexError is returned when a collection member index is out of range.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("font: index %d out of range (collection has %d fonts)", e.Index, e.Count)
}
