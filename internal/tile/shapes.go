package tile

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"blockfall/internal/core"
)

// ErrUnknownShape is returned when no factory is registered under a name.
var ErrUnknownShape = errors.New("unknown shape")

// Factory builds a tile of one kind at the given point.
type Factory func(at core.BoardPoint, c color.RGBA) *Tile

var shapes = map[string]Factory{}

// Register adds a shape factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	shapes[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownShape)
	}
	return f, nil
}

// Shapes lists the registered shape names in sorted order.
func Shapes() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dot is a single-cell shape.
const Dot = "dot"

func init() {
	Register(Dot, func(at core.BoardPoint, c color.RGBA) *Tile {
		return newTile(Dot, at, c)
	})
}
