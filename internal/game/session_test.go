package game

import (
	"image/color"
	"testing"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/core/coretest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tileColor = color.RGBA{R: 0xff, A: 0xff}
	gridColor = color.RGBA{B: 0xff, A: 0xff}
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newSession(t *testing.T, respawn bool) (*Session, *coretest.Painter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := &coretest.Painter{}
	s, err := New(p, Options{
		Interval: 600 * time.Millisecond,
		Respawn:  respawn,
		Palette:  []color.RGBA{tileColor},
		Grid:     gridColor,
		Clock:    clock.now,
	})
	require.NoError(t, err)
	return s, p, clock
}

func tilePos(t *testing.T, s *Session) core.BoardPoint {
	t.Helper()
	cur, ok := s.Tile()
	require.True(t, ok)
	return cur.Position()
}

func TestNewDrawsBoard(t *testing.T) {
	s, p, _ := newSession(t, true)

	assert.Equal(t, Idle, s.State())
	require.NotEmpty(t, p.Ops)
	assert.True(t, p.Ops[0].Clear)
	assert.NotEmpty(t, p.Fills(gridColor))
	assert.Empty(t, p.Fills(tileColor))
}

func TestTickBeforeStartDoesNothing(t *testing.T) {
	s, p, clock := newSession(t, true)
	p.Reset()

	clock.t = clock.t.Add(time.Hour)
	s.Tick()

	assert.Empty(t, p.Ops)
	_, ok := s.Tile()
	assert.False(t, ok)
}

func TestStartOnce(t *testing.T) {
	s, _, _ := newSession(t, true)

	require.NoError(t, s.Start())
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, core.DefaultOrigin, tilePos(t, s))

	assert.ErrorIs(t, s.Start(), ErrStarted)
}

func TestDropCycleWithRespawn(t *testing.T) {
	s, p, clock := newSession(t, true)
	require.NoError(t, s.Start())
	p.Reset()

	clock.t = clock.t.Add(599 * time.Millisecond)
	s.Tick()
	assert.Empty(t, p.Ops, "nothing is drawn before the interval elapses")

	clock.t = clock.t.Add(time.Millisecond)
	s.Tick()
	assert.Equal(t, 1, s.Drops())
	assert.Equal(t, core.BoardPoint{X: 4, Y: 0}, tilePos(t, s))
	require.NotEmpty(t, p.Ops)
	assert.True(t, p.Ops[0].Clear)
	assert.Equal(t, []core.Rect{core.DefaultGeometry().PointToRect(core.BoardPoint{X: 4, Y: 0})}, p.Fills(tileColor))

	// the next frame spawns a fresh tile at the origin without redrawing
	p.Reset()
	s.Tick()
	assert.Equal(t, core.DefaultOrigin, tilePos(t, s))
	assert.Empty(t, p.Ops)

	clock.t = clock.t.Add(600 * time.Millisecond)
	s.Tick()
	assert.Equal(t, 2, s.Drops())
	assert.Equal(t, core.BoardPoint{X: 4, Y: 0}, tilePos(t, s))
}

func TestDropCycleWithoutRespawn(t *testing.T) {
	s, _, clock := newSession(t, false)
	require.NoError(t, s.Start())

	for i := 0; i < 5; i++ {
		clock.t = clock.t.Add(600 * time.Millisecond)
		s.Tick()
		s.Tick()
	}

	assert.Equal(t, 5, s.Drops())
	assert.Equal(t, core.BoardPoint{X: 4, Y: 4}, tilePos(t, s))
}

func TestHorizontalMoveRedraws(t *testing.T) {
	s, p, _ := newSession(t, true)
	require.NoError(t, s.Start())
	p.Reset()

	s.MoveLeft()
	s.MoveLeft()
	s.MoveRight()

	assert.Equal(t, core.BoardPoint{X: 3, Y: -1}, tilePos(t, s))
	assert.Equal(t, 3, p.Clears())
	assert.Len(t, p.Fills(tileColor), 3)
}

func TestMoveBeforeStartOnlyRedrawsBoard(t *testing.T) {
	s, p, _ := newSession(t, true)
	p.Reset()

	s.MoveRight()

	assert.Equal(t, 1, p.Clears())
	assert.Empty(t, p.Fills(tileColor))
	assert.NotEmpty(t, p.Fills(gridColor))
}

func TestTileIsDrawnBeneathBoard(t *testing.T) {
	s, p, clock := newSession(t, true)
	require.NoError(t, s.Start())
	p.Reset()

	clock.t = clock.t.Add(600 * time.Millisecond)
	s.Tick()

	require.Greater(t, len(p.Ops), 2)
	assert.Equal(t, tileColor, p.Ops[1].Color)
	assert.Equal(t, gridColor, p.Ops[len(p.Ops)-1].Color)
}
