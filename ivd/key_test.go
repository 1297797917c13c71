package ivd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOf(t *testing.T) {
	assert.Equal(t, Key("9B31"), KeyOf([]rune{0x9B31}))
	assert.Equal(t, Key("9B31 E0100"), KeyOf([]rune{0x9B31, 0xE0100}))
	assert.Equal(t, Key("20B9F E0101 E0102"), KeyOf([]rune{0x20B9F, 0xE0101, 0xE0102}))
	assert.Equal(t, Key("00E9"), KeyOf([]rune{0xE9}))
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("  9b31   e0100 ")
	require.NoError(t, err)
	assert.Equal(t, Key("9B31 E0100"), k)

	seq, err := k.Runes()
	require.NoError(t, err)
	assert.Equal(t, []rune{0x9B31, 0xE0100}, seq)

	for _, bad := range []string{
		"",
		"XYZ",
		"9B31 0041",
		"E0100",
		"9B31 E0100 E0101 E0102 E0103",
	} {
		_, err := ParseKey(bad)
		assert.Error(t, err, "ParseKey(%q)", bad)
	}
}

func TestGlyphName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"CID+12345", "cid12345", true},
		{"CID+42", "cid00042", true},
		{" CID+7 ", "cid00007", true},
		{"13706", "cid13706", true},
		{"MJ000001", "", false},
		{"CID+", "", false},
	}
	for _, tt := range tests {
		got, ok := GlyphName(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
