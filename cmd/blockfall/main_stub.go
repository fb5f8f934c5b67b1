//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of blockfall requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/blockfall` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For the browser: GOOS=js GOARCH=wasm go build -tags ebiten -o web/blockfall.wasm ./cmd/blockfall")
	os.Exit(2)
}
