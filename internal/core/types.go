package core

import (
	"image"
	"image/color"
)

// BoardPoint is a logical coordinate on the board grid.
type BoardPoint struct {
	X int
	Y int
}

// DefaultOrigin is where every new tile appears: column 4, one row above the
// visible board.
var DefaultOrigin = BoardPoint{X: 4, Y: -1}

// Direction names a movement a tile can make.
type Direction string

const (
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Rect is a pixel rectangle; Max is exclusive.
type Rect struct {
	Min image.Point
	Max image.Point
}

// Dx returns the rectangle width.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the rectangle height.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Painter is the drawing surface the game renders into. Implementations keep
// their contents between calls; nothing is redrawn unless asked.
type Painter interface {
	Clear()
	FillRect(r Rect, c color.Color)
}
