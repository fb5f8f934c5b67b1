package ui

// StripHeight is the height of the status strip below the canvas.
const StripHeight = 24

const (
	idleText    = "PRESS ENTER TO START"
	playingText = "PLAYING"
)

// Label returns the status text for the current phase.
func Label(playing bool) string {
	if playing {
		return playingText
	}
	return idleText
}

// centerX returns the x offset that centres a line of n glyphs of advance
// glyphW in a strip of width w.
func centerX(w, n, glyphW int) int {
	x := (w - n*glyphW) / 2
	if x < 0 {
		return 0
	}
	return x
}
