// Package coretest provides fakes for code that draws through core.Painter.
package coretest

import (
	"image/color"

	"blockfall/internal/core"
)

// Op is one recorded painter call.
type Op struct {
	Clear bool
	Rect  core.Rect
	Color color.Color
}

// Painter records every call made to it.
type Painter struct {
	Ops []Op
}

// Clear records a clear.
func (p *Painter) Clear() { p.Ops = append(p.Ops, Op{Clear: true}) }

// FillRect records a rectangle fill.
func (p *Painter) FillRect(r core.Rect, c color.Color) {
	p.Ops = append(p.Ops, Op{Rect: r, Color: c})
}

// Reset forgets all recorded calls.
func (p *Painter) Reset() { p.Ops = p.Ops[:0] }

// Clears counts recorded clears.
func (p *Painter) Clears() int {
	n := 0
	for _, op := range p.Ops {
		if op.Clear {
			n++
		}
	}
	return n
}

// Fills returns the recorded fills painted with c.
func (p *Painter) Fills(c color.Color) []core.Rect {
	var out []core.Rect
	for _, op := range p.Ops {
		if !op.Clear && op.Color == c {
			out = append(out, op.Rect)
		}
	}
	return out
}
