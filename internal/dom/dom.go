// Package dom connects the game to the page that hosts it in a browser: the
// start button and the frame the canvas lives in.
package dom

import "errors"

// ErrNoElement is returned when the page lacks an element the game needs.
var ErrNoElement = errors.New("element not found")

const (
	StartButtonID = "start"
	GameFrameID   = "gameframe"

	// DisabledClass marks the start button once the game runs.
	DisabledClass = "is-disabled"
	PlayingText   = "PLAYING"
	WarningText   = "Your browser doesn't support the HTML5 canvas element"
)
