// Package random centralizes every probability draw the game makes.
//
// All gameplay randomness goes through a Policy so that a seeded or scripted
// Source replays the exact same game.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source abstracts random number generation for deterministic testing.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Policy names the draws used by the game on top of a Source.
type Policy struct {
	src Source
}

// NewPolicy wraps an existing source.
func NewPolicy(src Source) *Policy {
	return &Policy{src: src}
}

// New creates a policy backed by math/rand with the given seed.
func New(seed int64) *Policy {
	return NewPolicy(rand.New(rand.NewSource(seed)))
}

// Roll returns a uniform value in [0, 1).
func (p *Policy) Roll() float64 {
	return p.src.Float64()
}

// Chance returns true with probability prob.
func (p *Policy) Chance(prob float64) bool {
	return p.src.Float64() < prob
}

// CoinFlip returns true half of the time.
func (p *Policy) CoinFlip() bool {
	return p.src.Intn(2) == 0
}

// Pick returns a uniform index in [0, n).
func (p *Policy) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return p.src.Intn(n)
}

// Between returns a uniform int in [lo, hi], inclusive on both ends.
func (p *Policy) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.src.Intn(hi-lo+1)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
