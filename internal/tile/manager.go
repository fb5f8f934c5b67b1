package tile

import (
	"image/color"
	"log/slog"

	"blockfall/internal/core"
)

// Options configures a Manager.
type Options struct {
	Shape    string
	Palette  []color.RGBA
	Seed     int64
	Geometry core.Geometry
	Logger   *slog.Logger
}

// Manager owns at most one tile and moves it on request.
type Manager struct {
	factory Factory
	palette []color.RGBA
	rng     *core.RNG
	geo     core.Geometry
	log     *slog.Logger

	current *Tile
}

// NewManager returns a Manager with no active tile.
func NewManager(opts Options) (*Manager, error) {
	if opts.Shape == "" {
		opts.Shape = Dot
	}
	f, err := Lookup(opts.Shape)
	if err != nil {
		return nil, err
	}
	if opts.Geometry == (core.Geometry{}) {
		opts.Geometry = core.DefaultGeometry()
	}
	return &Manager{
		factory: f,
		palette: opts.Palette,
		rng:     core.NewRNG(opts.Seed),
		geo:     opts.Geometry,
		log:     core.LoggerOrNop(opts.Logger),
	}, nil
}

// Generate replaces the current tile with a fresh one at the default origin.
// The previous tile is discarded, not kept on the board.
func (m *Manager) Generate() {
	m.current = m.factory(core.DefaultOrigin, m.rng.Color(m.palette))
	m.log.Debug("tile generated", "kind", m.current.Kind, "color", m.current.Color)
}

// Current returns the active tile, if any.
func (m *Manager) Current() (*Tile, bool) {
	return m.current, m.current != nil
}

// CanMoveToward reports whether the active tile may move in direction d.
// Only the presence of a tile is checked; board edges are not.
func (m *Manager) CanMoveToward(d core.Direction) bool {
	return m.current != nil
}

// SoftDrop moves the tile one row down.
func (m *Manager) SoftDrop() {
	if !m.CanMoveToward(core.Down) {
		return
	}
	m.current.Movement.Down()
}

// MoveLeft moves the tile one column left.
func (m *Manager) MoveLeft() {
	if !m.CanMoveToward(core.Left) {
		return
	}
	m.current.Movement.Left()
}

// MoveRight moves the tile one column right.
func (m *Manager) MoveRight() {
	if !m.CanMoveToward(core.Right) {
		return
	}
	m.current.Movement.Right()
}

// DrawCurrent paints the active tile.
func (m *Manager) DrawCurrent(p core.Painter) {
	if m.current == nil {
		return
	}
	p.FillRect(m.geo.PointToRect(m.current.Position()), m.current.Color)
}
