package ivd

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a code sequence in the spelling used by registry files: uppercase
// hexadecimal code points, at least four digits each, joined by single
// spaces ("9B31 E0100").
type Key string

// KeyOf serializes seq. It does not validate the sequence; see ParseKey.
func KeyOf(seq []rune) Key {
	var b strings.Builder
	for i, r := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04X", r)
	}
	return Key(b.String())
}

// ParseKey parses a code sequence such as "9b31  e0100" and returns it in
// canonical form. The sequence must hold a base character followed by at most
// MaxSelectors variation selectors.
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", fmt.Errorf("ivd: empty code sequence")
	}
	if len(fields) > 1+MaxSelectors {
		return "", fmt.Errorf("ivd: code sequence %q has %d elements, at most %d allowed",
			s, len(fields), 1+MaxSelectors)
	}
	seq := make([]rune, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return "", fmt.Errorf("ivd: code sequence %q: %w", s, err)
		}
		r := rune(v)
		if i > 0 && !IsSelector(r) {
			return "", fmt.Errorf("ivd: code sequence %q: U+%04X is not a variation selector", s, r)
		}
		if i == 0 && IsSelector(r) {
			return "", fmt.Errorf("ivd: code sequence %q starts with a variation selector", s)
		}
		seq[i] = r
	}
	return KeyOf(seq), nil
}

// Runes decodes k back into code points.
func (k Key) Runes() ([]rune, error) {
	fields := strings.Fields(string(k))
	seq := make([]rune, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("ivd: key %q: %w", string(k), err)
		}
		seq = append(seq, rune(v))
	}
	return seq, nil
}

// GlyphName converts an Adobe-Japan1 style identifier ("CID+1234") into the
// glyph name CID-keyed fonts use for it ("cid01234"). It reports false when
// the identifier has no numeric part.
func GlyphName(cid string) (string, bool) {
	digits := strings.TrimPrefix(strings.TrimSpace(cid), "CID+")
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("cid%05d", n), true
}
