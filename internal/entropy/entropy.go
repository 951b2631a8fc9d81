// Package entropy provides the seedable random source threaded through every
// stochastic stage of the simulation: economic shocks, recruitment success,
// development outcomes, market events and the AI policy. One Source per
// simulation keeps runs reproducible from a single seed.
package entropy

import (
	"math/rand"
	"sync"
)

// Source is a seeded random generator. Safe for use from a single simulation
// goroutine; the mutex only guards incidental concurrent reads (API handlers,
// report renderers) against the stepping loop.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a Source from a seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform float64 in [0, 1).
func (s *Source) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Normal returns a normally distributed draw with the given mean and sigma.
func (s *Source) Normal(mean, sigma float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mean + sigma*s.rng.NormFloat64()
}

// Intn returns a uniform int in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Between returns a uniform int in [lo, hi] inclusive.
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float() < p
}

// Uniform returns a uniform float64 in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float()
}

// PickInt returns one element of choices, uniformly.
func (s *Source) PickInt(choices ...int) int {
	return choices[s.Intn(len(choices))]
}

// PickFloat returns one element of choices, uniformly.
func (s *Source) PickFloat(choices ...float64) float64 {
	return choices[s.Intn(len(choices))]
}
