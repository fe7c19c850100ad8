package core

import "math/rand/v2"

// Source supplies uniform draws in [0, 1). The automaton consumes randomness
// only through this interface so runs can be replayed from a seed.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// EntropySeed returns a non-zero seed drawn from the process-wide generator,
// which math/rand/v2 seeds from system entropy.
func EntropySeed() int64 {
	for {
		if s := int64(rand.Uint64() >> 1); s != 0 {
			return s
		}
	}
}
