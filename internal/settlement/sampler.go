package settlement

import (
	"math/rand/v2"
	"sync"
)

// Sampler draws uniform values in [0,1).
type Sampler interface {
	Float64() float64
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() float64

// Float64 implements Sampler.
func (f SamplerFunc) Float64() float64 { return f() }

// RandomSampler draws from the runtime's shared generator. It is not a provably fair source.
func RandomSampler() Sampler {
	return SamplerFunc(rand.Float64)
}

// Sequence replays fixed draws in order and repeats the last one once exhausted.
// It is safe for concurrent use.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence returns a Sampler replaying values. It panics when values is empty.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("settlement: NewSequence needs at least one value")
	}
	return &Sequence{values: values}
}

// Float64 implements Sampler.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}
