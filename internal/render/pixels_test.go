package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#1d1f21", color.RGBA{0x1d, 0x1f, 0x21, 0xff}},
		{"cc6666", color.RGBA{0xcc, 0x66, 0x66, 0xff}},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#zzzzzz"} {
		_, err := ParseHex(in)
		assert.ErrorIs(t, err, ErrBadColor, in)
	}
}

func TestPaletteIsOpaque(t *testing.T) {
	require.NotEmpty(t, TilePalette)
	for _, c := range TilePalette {
		assert.Equal(t, uint8(0xff), c.A)
	}
}
