package board

import (
	"image/color"
	"testing"

	"blockfall/internal/core"
	"blockfall/internal/core/coretest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawGridLines(t *testing.T) {
	grid := color.RGBA{G: 0x80, A: 0xff}
	g := core.DefaultGeometry()
	p := &coretest.Painter{}

	New(g, grid).Draw(p)

	rects := p.Fills(grid)
	require.Len(t, rects, (g.Cols+1)+(g.Rows+1))
	assert.Zero(t, p.Clears())

	first := rects[0]
	assert.Equal(t, 10, first.Min.X)
	assert.Equal(t, 10, first.Min.Y)
	assert.Equal(t, LineWidth, first.Dx())
	assert.Equal(t, 20*30+LineWidth, first.Dy())

	last := rects[len(rects)-1]
	assert.Equal(t, 610, last.Min.Y)
	assert.Equal(t, 10*30+LineWidth, last.Dx())
}
