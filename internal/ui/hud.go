//go:build ebiten

package ui

import (
	"image/color"

	"blockfall/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a one-line status strip under the canvas.
type HUD struct {
	width int
	strip *ebiten.Image
	fg    color.Color
}

// NewHUD constructs a HUD strip of the given width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	h := &HUD{width: width, fg: render.TextColor}
	h.strip = ebiten.NewImage(width, StripHeight)
	return h
}

// Draw paints the strip at offsetY with the label for the current phase.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, playing bool) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	label := Label(playing)

	h.strip.Fill(render.BackgroundColor)
	x := centerX(h.width, len(label), face.Advance)
	y := (StripHeight+face.Ascent)/2 - 1
	text.Draw(h.strip, label, face, x, y, h.fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.strip, op)
}
