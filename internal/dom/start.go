package dom

// element is the part of a DOM element the start flow touches.
type element interface {
	AddClass(name string)
	SetText(text string)
	SetDisabled(disabled bool)
	Focus()
}

// activate runs the start button click: start the game, mark the button as
// used and hand keyboard focus back to the canvas. The disabled button would
// otherwise leave focus on <body>, where the canvas never sees arrow keys.
func activate(button, canvas element, onStart func()) {
	onStart()
	button.AddClass(DisabledClass)
	button.SetText(PlayingText)
	button.SetDisabled(true)
	canvas.Focus()
}
