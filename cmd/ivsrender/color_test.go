package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{A: 0xff}},
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{" #0080ff80 ", color.NRGBA{G: 0x80, B: 0xff, A: 0x80}},
		{"255,0,0", color.NRGBA{R: 0xff, A: 0xff}},
		{"1, 2, 3", color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "1,2", "256,0,0", "red"} {
		_, err := parseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseColorTranslucent(t *testing.T) {
	c, err := parseColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0x80}, c)

	// premultiplied, no channel may exceed alpha
	assert.Equal(t, color.RGBA{R: 0x80, A: 0x80}, color.RGBAModel.Convert(c))
}
