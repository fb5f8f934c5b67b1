//go:build !(js && wasm)

package dom

import (
	"context"
	"log/slog"
)

// Hosted reports that the page owns the start control and the status text.
// Outside the browser the game draws its own status and starts from the
// keyboard.
const Hosted = false

// Bind does nothing outside the browser; the keyboard starts the game.
func Bind(ctx context.Context, width, height int, onStart func(), log *slog.Logger) error {
	return nil
}
