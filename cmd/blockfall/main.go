//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"blockfall/internal/app"
	"blockfall/internal/core"
	"blockfall/internal/dom"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		slog.Error("bad flags", "err", err)
		os.Exit(2)
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	game, err := app.New(cfg, log)
	if err != nil {
		log.Error("create game", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, h := core.DefaultGeometry().CanvasSize()
	if err := dom.Bind(ctx, w*cfg.Scale, h*cfg.Scale, game.RequestStart, log); err != nil {
		log.Error("bind page", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("blockfall")
	ebiten.SetTPS(cfg.TPS)
	sw, sh := app.ScreenSize()
	ebiten.SetWindowSize(sw*cfg.Scale, sh*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
