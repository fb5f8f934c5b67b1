//go:build js && wasm

package dom

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"syscall/js"

	"blockfall/internal/core"
)

// Hosted reports that the page owns the start control and the status text.
const Hosted = true

type jsElement struct{ v js.Value }

func (e jsElement) AddClass(name string)      { e.v.Get("classList").Call("add", name) }
func (e jsElement) SetText(text string)       { e.v.Set("textContent", text) }
func (e jsElement) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }
func (e jsElement) Focus()                    { e.v.Call("focus") }

// Bind moves the game canvas into the page frame and wires the start button
// to onStart. The click listener is released when ctx is done.
func Bind(ctx context.Context, width, height int, onStart func(), log *slog.Logger) error {
	log = core.LoggerOrNop(log)
	document := js.Global().Get("document")
	frame := document.Call("getElementById", GameFrameID)
	if frame.IsNull() {
		return fmt.Errorf("#%s: %w", GameFrameID, ErrNoElement)
	}
	button := document.Call("getElementById", StartButtonID)
	if button.IsNull() {
		return fmt.Errorf("#%s: %w", StartButtonID, ErrNoElement)
	}

	canvas := document.Call("querySelector", "canvas")
	if canvas.IsNull() {
		return fmt.Errorf("canvas: %w", ErrNoElement)
	}
	canvas.Get("style").Set("width", fmt.Sprintf("%dpx", width))
	canvas.Get("style").Set("height", fmt.Sprintf("%dpx", height))
	if canvas.Get("childNodes").Length() == 0 {
		canvas.Call("appendChild", document.Call("createTextNode", WarningText))
	}
	frame.Call("prepend", canvas)

	var once sync.Once
	click := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		once.Do(func() {
			activate(jsElement{button}, jsElement{canvas}, onStart)
			log.Info("start button pressed")
		})
		return nil
	})
	button.Call("addEventListener", "click", click)

	go func() {
		<-ctx.Done() // BLOCKING
		button.Call("removeEventListener", "click", click)
		click.Release()
	}()
	return nil
}
