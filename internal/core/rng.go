package core

import (
	"image/color"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Color returns a random entry of palette, or opaque white when it is empty.
func (r *RNG) Color(palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return palette[r.r.IntN(len(palette))]
}
