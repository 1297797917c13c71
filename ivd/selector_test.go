package ivd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSelector(t *testing.T) {
	for r := SelectorFirst; r <= SelectorLast; r++ {
		if !IsSelector(r) {
			t.Fatalf("IsSelector(U+%04X) = false, want true", r)
		}
	}
	tests := []struct {
		r    rune
		want bool
	}{
		{0xE00FF, false},
		{0xE01F0, false},
		{0xFE00, false}, // VS1 is outside the supplement block
		{'鯛', false},
		{0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSelector(tt.r), "U+%04X", tt.r)
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		name      string
		lookahead []rune
		want      int
	}{
		{"none", nil, 0},
		{"plain", []rune{'a', 0xE0100}, 0},
		{"one", []rune{0xE0100, 'a', 0xE0101}, 1},
		{"two", []rune{0xE0100, 0xE0101}, 2},
		{"three", []rune{0xE0100, 0xE0101, 0xE0102}, 3},
		{"capped", []rune{0xE0100, 0xE0101, 0xE0102, 0xE0103}, 3},
		{"broken", []rune{0xE0100, 'x', 0xE0102}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chain(tt.lookahead))
		})
	}
}
