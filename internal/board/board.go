// Package board draws the static playfield grid.
package board

import (
	"image"
	"image/color"

	"blockfall/internal/core"
)

// LineWidth is the thickness of a grid line in pixels.
const LineWidth = 1

// Board paints the grid lines of the playfield. It holds no cell state.
type Board struct {
	geo   core.Geometry
	color color.Color
}

// New returns a Board for geometry g drawn in c.
func New(g core.Geometry, c color.Color) *Board {
	return &Board{geo: g, color: c}
}

// Draw paints one line along every column and row boundary.
func (b *Board) Draw(p core.Painter) {
	g := b.geo
	top, left := g.Margin, g.Margin
	bottom := g.Margin + g.Rows*g.Cell
	right := g.Margin + g.Cols*g.Cell

	for c := 0; c <= g.Cols; c++ {
		x := left + c*g.Cell
		p.FillRect(core.Rect{Min: image.Pt(x, top), Max: image.Pt(x+LineWidth, bottom+LineWidth)}, b.color)
	}
	for r := 0; r <= g.Rows; r++ {
		y := top + r*g.Cell
		p.FillRect(core.Rect{Min: image.Pt(left, y), Max: image.Pt(right+LineWidth, y+LineWidth)}, b.color)
	}
}
