// Package testutil provides shared helpers for tests that need to pin the
// simulation's random draws.
package testutil

import (
	"sync"

	"github.com/cory-johannsen/lance/internal/game/dice"
)

// SequenceSource is a dice.Source that replays scripted draws.
//
// Intn returns the next scripted integer clamped into [0, n); Float64 returns
// the next scripted float clamped into [0, 1). Each script cycles when
// exhausted; an empty script yields zero.
type SequenceSource struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
	ii, fi int
}

// NewSequenceSource returns a SequenceSource replaying ints for Intn calls.
func NewSequenceSource(ints ...int) *SequenceSource {
	return &SequenceSource{ints: ints}
}

// WithFloats sets the script replayed by Float64 and returns s.
func (s *SequenceSource) WithFloats(floats ...float64) *SequenceSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = floats
	s.fi = 0
	return s
}

// Intn returns the next scripted integer clamped into [0, n).
//
// Precondition: n > 0.
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("testutil: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	switch {
	case v < 0:
		return 0
	case v >= n:
		return n - 1
	}
	return v
}

// Float64 returns the next scripted float clamped into [0, 1).
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return 0.999999
	}
	return v
}

// Draws reports how many Intn draws have been consumed.
func (s *SequenceSource) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ii
}

// Roller wraps src in a non-logging dice.Roller.
func Roller(src dice.Source) *dice.Roller {
	return dice.NewLoggedRoller(src, nil)
}

var _ dice.Source = (*SequenceSource)(nil)
