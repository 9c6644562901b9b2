package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bernoulli reports true with probability p. p is clamped to [0, 1].
func (r *RNG) Bernoulli(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// FillBernoulli sets each cell to 1 independently with probability p and to
// 0 otherwise.
func FillBernoulli(r *RNG, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if r.Bernoulli(p) {
			buf[i] = 1
		}
	}
}
