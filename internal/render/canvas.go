//go:build ebiten

package render

import (
	"image/color"

	"blockfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a retained drawing buffer. It keeps its pixels between frames so
// only explicit Clear and FillRect calls change what the player sees.
type Canvas struct {
	w, h int
	img  *ebiten.Image
	bg   color.Color
}

// NewCanvas allocates a w*h canvas cleared to bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	c := &Canvas{w: w, h: h, img: ebiten.NewImage(w, h), bg: bg}
	c.Clear()
	return c
}

// Clear fills the whole canvas with the background colour.
func (c *Canvas) Clear() {
	c.img.Fill(c.bg)
}

// FillRect paints r with col. Parts of r outside the canvas are clipped.
func (c *Canvas) FillRect(r core.Rect, col color.Color) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	vector.DrawFilledRect(c.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col, false)
}

// Blit draws the canvas onto dst at the origin.
func (c *Canvas) Blit(dst *ebiten.Image) {
	dst.DrawImage(c.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (c *Canvas) Size() (int, int) { return c.w, c.h }
