package ivd

// Variation selectors supplement (VS17..VS256).
const (
	SelectorFirst rune = 0xE0100
	SelectorLast  rune = 0xE01EF
)

// MaxSelectors is the longest run of selectors that may follow a base
// character in a code sequence.
const MaxSelectors = 3

// IsSelector reports whether r lies in the variation selectors supplement
// block [U+E0100, U+E01EF].
func IsSelector(r rune) bool {
	return r >= SelectorFirst && r <= SelectorLast
}

// Chain returns the number of leading runes of lookahead that are variation
// selectors, capped at MaxSelectors. The chain ends at the first rune that is
// not a selector.
func Chain(lookahead []rune) int {
	n := 0
	for _, r := range lookahead {
		if n == MaxSelectors || !IsSelector(r) {
			break
		}
		n++
	}
	return n
}
