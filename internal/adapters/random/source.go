// Package random provides the RNG sources handed to the setup service.
package random

import "math/rand/v2"

// Source delegates to a math/rand/v2 generator.
type Source struct {
	r *rand.Rand
}

// New returns an auto-seeded source.
func New() *Source {
	return &Source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a source whose sequence is fixed by seed.
func NewSeeded(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed))}
}

// Intn returns a random int in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int { return s.r.IntN(n) }
