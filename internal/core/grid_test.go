package core

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasSize(t *testing.T) {
	w, h := DefaultGeometry().CanvasSize()
	assert.Equal(t, 320, w)
	assert.Equal(t, 620, h)
}

func TestPointToRect(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name string
		p    BoardPoint
		min  image.Point
	}{
		{"origin above board", DefaultOrigin, image.Pt(130, -20)},
		{"top left cell", BoardPoint{0, 0}, image.Pt(10, 10)},
		{"bottom right cell", BoardPoint{9, 19}, image.Pt(280, 580)},
		{"left of board", BoardPoint{-1, 3}, image.Pt(-20, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := g.PointToRect(tt.p)
			assert.Equal(t, tt.min, r.Min)
			assert.Equal(t, CellDimension, r.Dx())
			assert.Equal(t, CellDimension, r.Dy())
		})
	}
}
