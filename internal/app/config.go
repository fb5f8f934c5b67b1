package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/tile"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Scale    int
	TPS      int
	Interval time.Duration
	Seed     int64
	Respawn  bool
	Shape    string
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:    1,
		TPS:      60,
		Interval: core.DefaultDropInterval,
		Seed:     42,
		Respawn:  true,
		Shape:    tile.Dot,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "window size multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host ticks per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between two drops")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for tile colours")
	fs.BoolVar(&c.Respawn, "respawn", c.Respawn, "replace the tile with a new one every drop cycle")
	fs.StringVar(&c.Shape, "shape", c.Shape, "tile shape to spawn: "+strings.Join(tile.Shapes(), ", "))
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive: %w", c.Scale, ErrInvalidConfig)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive: %w", c.TPS, ErrInvalidConfig)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval %v must be positive: %w", c.Interval, ErrInvalidConfig)
	}
	if _, err := tile.Lookup(c.Shape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	return l, nil
}
