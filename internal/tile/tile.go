// Package tile owns the single falling tile and the checks that gate its
// movement.
package tile

import (
	"image/color"

	"blockfall/internal/core"
)

// Movement shifts a tile by one cell in place.
type Movement interface {
	Down()
	Left()
	Right()
}

// Tile is the active falling shape.
type Tile struct {
	Kind     string
	Color    color.RGBA
	Movement Movement

	pos core.BoardPoint
}

// Position returns the tile's board coordinate.
func (t *Tile) Position() core.BoardPoint { return t.pos }

// step is the Movement of every registered shape: one cell per call with no
// knowledge of the board.
type step struct{ t *Tile }

func (s step) Down()  { s.t.pos.Y++ }
func (s step) Left()  { s.t.pos.X-- }
func (s step) Right() { s.t.pos.X++ }

func newTile(kind string, at core.BoardPoint, c color.RGBA) *Tile {
	t := &Tile{Kind: kind, Color: c, pos: at}
	t.Movement = step{t: t}
	return t
}
