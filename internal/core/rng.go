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

// Digits fills the buffer with decimal digits in [0, 9].
func (r *RNG) Digits(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(10))
	}
}
