//go:build ebiten

package app

import (
	"errors"
	"log/slog"

	"blockfall/internal/core"
	"blockfall/internal/dom"
	"blockfall/internal/game"
	"blockfall/internal/render"
	"blockfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a game.Session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	canvas  *render.Canvas
	hud     *ui.HUD
	log     *slog.Logger

	startRequests chan struct{}
}

// New constructs a Game from cfg.
func New(cfg *Config, log *slog.Logger) (*Game, error) {
	log = core.LoggerOrNop(log)
	w, h := core.DefaultGeometry().CanvasSize()
	canvas := render.NewCanvas(w, h, render.BackgroundColor)
	session, err := game.New(canvas, game.Options{
		Interval: cfg.Interval,
		Respawn:  cfg.Respawn,
		Shape:    cfg.Shape,
		Seed:     cfg.Seed,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}
	return &Game{
		session:       session,
		canvas:        canvas,
		hud:           ui.NewHUD(w),
		log:           log,
		startRequests: make(chan struct{}, 1),
	}, nil
}

// RequestStart asks the game to start on its next update. It is safe to call
// from any goroutine.
func (g *Game) RequestStart() {
	select {
	case g.startRequests <- struct{}{}:
	default:
	}
}

// Update handles input and advances the drop loop.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !dom.Hosted && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		g.start()
	}
	select {
	case <-g.startRequests:
		g.start()
	default:
	}

	if repeating(ebiten.KeyArrowLeft) {
		g.session.MoveLeft()
	} else if repeating(ebiten.KeyArrowRight) {
		g.session.MoveRight()
	}

	g.session.Tick()
	return nil
}

// Draw renders the canvas and, outside a hosting page, the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Blit(screen)
	if dom.Hosted {
		return
	}
	_, h := g.canvas.Size()
	g.hud.Draw(screen, h, g.session.State() == game.Playing)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.canvas.Size()
	return w, h + stripHeight(dom.Hosted)
}

func (g *Game) start() {
	err := g.session.Start()
	if errors.Is(err, game.ErrStarted) {
		g.log.Debug("start ignored", "err", err)
	}
}

// repeating reports whether a held key acts this tick.
func repeating(key ebiten.Key) bool {
	return repeatFires(inpututil.KeyPressDuration(key))
}
