// Package random provides the uniform integer sources used for weighted draws.
package random

import (
	"math/rand/v2"
	"time"
)

// Source draws a uniform integer in [0, n). n is always positive.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Int64N(n int64) int64
}

// NewSeeded returns a deterministic PCG-backed source
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewFromTime returns a source seeded from the wall clock
func NewFromTime() *rand.Rand {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// Sequence replays scripted values. Each value is reduced modulo n so a
// script can never produce an out-of-range draw.
type Sequence struct {
	values []int64
	next   int
}

// NewSequence creates a scripted source
func NewSequence(values ...int64) *Sequence {
	return &Sequence{values: values}
}

// Int64N returns the next scripted value. Once exhausted it returns 0.
func (s *Sequence) Int64N(n int64) int64 {
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Remaining returns how many scripted values have not been consumed
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}
