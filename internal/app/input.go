package app

import (
	"blockfall/internal/core"
	"blockfall/internal/dom"
	"blockfall/internal/ui"
)

// Key autorepeat, in ticks, for held arrow keys.
const (
	repeatDelay    = 18
	repeatInterval = 3
)

// repeatFires reports whether a key held for d ticks should act this tick:
// on the first tick, then every repeatInterval ticks once repeatDelay is
// reached.
func repeatFires(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// stripHeight is the status strip below the canvas. A hosting page shows the
// status on its own start button, so the canvas stays at board size.
func stripHeight(hosted bool) int {
	if hosted {
		return 0
	}
	return ui.StripHeight
}

// ScreenSize returns the logical screen: the board canvas plus the status
// strip when there is one.
func ScreenSize() (int, int) {
	w, h := core.DefaultGeometry().CanvasSize()
	return w, h + stripHeight(dom.Hosted)
}
