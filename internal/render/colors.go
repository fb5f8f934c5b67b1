package render

import "image/color"

var (
	// BackgroundColor fills the canvas on every clear.
	BackgroundColor = MustHex("#1d1f21")
	// GridColor draws the board lines.
	GridColor = MustHex("#373b41")
	// TextColor is used by the status strip.
	TextColor = MustHex("#c5c8c6")
)

// TilePalette holds the colours a new tile may take.
var TilePalette = []color.RGBA{
	MustHex("#cc6666"),
	MustHex("#de935f"),
	MustHex("#f0c674"),
	MustHex("#b5bd68"),
	MustHex("#8abeb7"),
	MustHex("#81a2be"),
	MustHex("#b294bb"),
}
