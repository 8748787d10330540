package restart

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrInvalidRunLength indicates a non-positive restart length parameter.
var ErrInvalidRunLength = errors.New("restart: run length must be >= 1")

// RestartSchedule produces the run-length budget for each successive
// restart of a Multistarter. Reset rewinds to the schedule's initial
// state; it is distinct from the run-length sequence itself, which is
// not reset across Multistarter.Optimize calls (a later call continues
// drawing lengths from where the previous one left off).
type RestartSchedule interface {
	// NextRunLength returns the run length for the next restart.
	NextRunLength() int

	// Reset rewinds the schedule to its initial state.
	Reset()

	// Split returns an independent, functionally equivalent copy, reset
	// to its initial state.
	Split() RestartSchedule
}

// ConstantSchedule always returns the same run length, r, for every
// restart.
type ConstantSchedule struct {
	r int
}

// NewConstantSchedule constructs a ConstantSchedule. Panics if r is
// non-positive.
func NewConstantSchedule(r int) *ConstantSchedule {
	if r < 1 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidRunLength, r))
	}
	return &ConstantSchedule{r: r}
}

// NextRunLength always returns r.
func (s *ConstantSchedule) NextRunLength() int { return s.r }

// Reset is a no-op: a constant schedule has no state to rewind.
func (s *ConstantSchedule) Reset() {}

// Split returns an independent ConstantSchedule with the same r.
func (s *ConstantSchedule) Split() RestartSchedule {
	return &ConstantSchedule{r: s.r}
}

// LubySchedule produces the Luby sequence scaled by a unit run length:
// 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8, ... — a restart-length
// progression with strong worst-case guarantees for Las-Vegas-style
// randomized search, supplementing the core spec's required constant
// schedule.
type LubySchedule struct {
	unit int
	seq  []int
	next int
}

// NewLubySchedule constructs a LubySchedule whose terms are multiples of
// unit. Panics if unit is non-positive.
func NewLubySchedule(unit int) *LubySchedule {
	if unit < 1 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidRunLength, unit))
	}
	return &LubySchedule{unit: unit, seq: []int{1}}
}

// NextRunLength returns the next term of the Luby sequence, scaled by
// unit, extending the sequence lazily as needed.
func (s *LubySchedule) NextRunLength() int {
	for s.next >= len(s.seq) {
		s.seq = nextLubyBlock(s.seq)
	}
	term := s.seq[s.next]
	s.next++
	return term * s.unit
}

// Reset rewinds the schedule to the start of the Luby sequence.
func (s *LubySchedule) Reset() {
	s.seq = []int{1}
	s.next = 0
}

// Split returns an independent LubySchedule with the same unit, reset to
// the start of the sequence.
func (s *LubySchedule) Split() RestartSchedule {
	return NewLubySchedule(s.unit)
}

// nextLubyBlock extends a Luby sequence prefix by one doubling round: the
// classic recursive definition appends a copy of the sequence so far,
// followed by the next power of two.
func nextLubyBlock(seq []int) []int {
	extended := slices.Clone(seq)
	extended = append(extended, seq...)
	extended = append(extended, 2*seq[len(seq)-1])
	return extended
}
