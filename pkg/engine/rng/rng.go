// Package rng defines the random source used by movement and placement code.
package rng

import (
	"math/rand"
	"time"
)

// Source yields integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// New returns a pseudo-random source seeded with seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// EntropySeed returns a seed derived from the wall clock.
func EntropySeed() int64 {
	return time.Now().UnixNano()
}

// Between returns a value in [min, max] inclusive.
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// CoinFlip returns true half of the time.
func CoinFlip(src Source) bool {
	return src.Intn(2) == 0
}

// Sequence replays a fixed list of values, wrapping around when exhausted.
// Each value is reduced modulo n so it is always a legal Intn result.
type Sequence struct {
	Values []int
	pos    int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{Values: values}
}

// Intn implements Source.
func (s *Sequence) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
