package secret

import (
	"fmt"
	"math/rand/v2"

	"github.com/shinji-kodama/guessing-game/internal/guess"
)

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource adapts the package-level math/rand/v2 functions, which are
// seeded randomly at process start.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Picker draws secrets from an injected Source.
//
// The struct holds only the source, but keeping it a type (rather than a
// bare function) lets the cli package choose between seeded and random
// pickers without the game package knowing about seeds.
type Picker struct {
	src Source
}

// NewPicker creates a Picker backed by src.
// The source must not be nil.
func NewPicker(src Source) *Picker {
	return &Picker{src: src}
}

// NewRandomPicker creates a Picker backed by the process-wide random source.
func NewRandomPicker() *Picker {
	return NewPicker(globalSource{})
}

// NewSeededPicker creates a deterministic Picker. The same seed always yields
// the same sequence of secrets, which makes scripted games reproducible.
func NewSeededPicker(seed uint64) *Picker {
	return NewPicker(rand.New(rand.NewPCG(seed, seed)))
}

// Draw returns a secret in [b.Min, b.Max).
//
// The upper bound is exclusive on purpose: see the package documentation.
// An empty range (b.Max <= b.Min) is an error rather than a panic from the
// underlying source, and so is a range whose width overflows int.
func (p *Picker) Draw(b guess.Bounds) (int, error) {
	if b.Max <= b.Min {
		return 0, fmt.Errorf("cannot draw a secret from empty range [%d, %d)", b.Min, b.Max)
	}
	span := b.Max - b.Min
	if span <= 0 {
		return 0, fmt.Errorf("cannot draw a secret from range [%d, %d): too wide", b.Min, b.Max)
	}
	return b.Min + p.src.IntN(span), nil
}
