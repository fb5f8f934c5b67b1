// Package game runs the drop loop: it owns the painter, the board and the
// tile manager and decides when each of them is drawn.
package game

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"blockfall/internal/board"
	"blockfall/internal/core"
	"blockfall/internal/render"
	"blockfall/internal/tile"
)

// ErrStarted is returned by Start once the loop is already running.
var ErrStarted = errors.New("game already started")

// State is the lifecycle phase of a Session.
type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Options configures a Session. Zero values select the defaults, except
// Respawn, which callers set explicitly.
type Options struct {
	Interval time.Duration
	// Respawn replaces the tile with a new one at the origin at the start of
	// every drop cycle. When false the same tile keeps falling.
	Respawn bool
	Shape   string
	Seed    int64
	Palette []color.RGBA
	Grid    color.Color
	Clock   core.Clock
	Logger  *slog.Logger
}

// Session is the game lifecycle: it draws the initial board, starts the loop
// once and advances it on every host frame.
type Session struct {
	painter core.Painter
	board   *board.Board
	tiles   *tile.Manager
	step    *core.FixedStep
	log     *slog.Logger

	respawn      bool
	state        State
	pendingSpawn bool
	drops        int
}

// New prepares a Session and paints the empty board onto p.
func New(p core.Painter, opts Options) (*Session, error) {
	log := core.LoggerOrNop(opts.Logger)
	geo := core.DefaultGeometry()
	if opts.Palette == nil {
		opts.Palette = render.TilePalette
	}
	if opts.Grid == nil {
		opts.Grid = render.GridColor
	}
	tiles, err := tile.NewManager(tile.Options{
		Shape:    opts.Shape,
		Palette:  opts.Palette,
		Seed:     opts.Seed,
		Geometry: geo,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}
	s := &Session{
		painter: p,
		board:   board.New(geo, opts.Grid),
		tiles:   tiles,
		step:    core.NewFixedStepClock(opts.Interval, opts.Clock),
		log:     log,
		respawn: opts.Respawn,
	}
	s.painter.Clear()
	s.board.Draw(s.painter)
	return s, nil
}

// Start begins the drop loop with a fresh tile.
func (s *Session) Start() error {
	if s.state == Playing {
		return ErrStarted
	}
	s.state = Playing
	s.tiles.Generate()
	s.step.Reset()
	s.log.Info("game started", "interval", s.step.Interval(), "respawn", s.respawn)
	return nil
}

// Tick advances the loop by one host frame. A tile requested by the previous
// drop is generated first; then, once the interval has elapsed, the canvas is
// cleared, the tile drops one row and everything is redrawn.
func (s *Session) Tick() {
	if s.state != Playing {
		return
	}
	if s.pendingSpawn {
		s.pendingSpawn = false
		s.tiles.Generate()
	}
	if !s.step.ShouldStep() {
		return
	}
	s.painter.Clear()
	s.pendingSpawn = s.respawn
	s.tiles.SoftDrop()
	s.render()
	s.drops++
}

// MoveLeft shifts the tile left and redraws.
func (s *Session) MoveLeft() {
	s.tiles.MoveLeft()
	s.rerender()
}

// MoveRight shifts the tile right and redraws.
func (s *Session) MoveRight() {
	s.tiles.MoveRight()
	s.rerender()
}

// State reports the lifecycle phase.
func (s *Session) State() State { return s.state }

// Drops counts completed drop cycles.
func (s *Session) Drops() int { return s.drops }

// Tile returns the active tile, if any.
func (s *Session) Tile() (*tile.Tile, bool) { return s.tiles.Current() }

func (s *Session) rerender() {
	s.painter.Clear()
	s.render()
}

// render draws the tile first and the board lines over it.
func (s *Session) render() {
	s.tiles.DrawCurrent(s.painter)
	s.board.Draw(s.painter)
}
