package core

import "image"

const (
	// CellDimension is the side of one board cell in pixels.
	CellDimension = 30

	// BoardColumns and BoardRows size the visible playfield.
	BoardColumns = 10
	BoardRows    = 20

	// BoardMargin is the gap between the canvas edge and the playfield.
	BoardMargin = 10
)

// Geometry converts logical board coordinates into pixel rectangles.
type Geometry struct {
	Cols, Rows int
	Cell       int
	Margin     int
}

// DefaultGeometry returns the 10x20 board drawn on a 320x620 canvas.
func DefaultGeometry() Geometry {
	return Geometry{Cols: BoardColumns, Rows: BoardRows, Cell: CellDimension, Margin: BoardMargin}
}

// CanvasSize returns the pixel dimensions of the whole canvas.
func (g Geometry) CanvasSize() (int, int) {
	return g.Cols*g.Cell + 2*g.Margin, g.Rows*g.Cell + 2*g.Margin
}

// PointToRect returns the pixel rectangle covered by the cell at p. Points
// outside the board are converted the same way and may lie off-canvas.
func (g Geometry) PointToRect(p BoardPoint) Rect {
	tl := image.Pt(g.Margin+p.X*g.Cell, g.Margin+p.Y*g.Cell)
	return Rect{Min: tl, Max: tl.Add(image.Pt(g.Cell, g.Cell))}
}
