// Package schedule - logarithmic cooling.
//
// Temperature decays every iteration as t <- c / ln(e + k), with k the
// iteration counter. Unlike exponential/linear cooling there is no floor
// and no `steps` batching: every Accept call recomputes t.
package schedule

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/annealkit/xrand"
)

// ErrInvalidC indicates a non-positive c parameter.
var ErrInvalidC = errors.New("schedule: c must be positive")

// LogarithmicCooling cools as t = c / ln(e + k), recomputed every
// iteration.
type LogarithmicCooling struct {
	c   float64
	rng *xrand.Source

	t float64
	k int
}

// NewLogarithmicCooling constructs a LogarithmicCooling schedule. Panics
// if c is non-positive.
func NewLogarithmicCooling(c float64, rng *xrand.Source) *LogarithmicCooling {
	if c <= 0 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidC, c))
	}

	return &LogarithmicCooling{
		c:   c,
		rng: xrand.Or(rng),
		t:   c,
	}
}

// Init resets the temperature to c and the iteration counter to zero.
func (s *LogarithmicCooling) Init(maxEvals int) {
	s.t = s.c
	s.k = 0
}

// Accept decides acceptance under the current temperature, then advances
// k and recomputes t = c / ln(e + k).
func (s *LogarithmicCooling) Accept(neighborCost, currentCost float64) bool {
	accepted := accept(s.rng, neighborCost, currentCost, s.t)

	s.k++
	s.t = s.c / math.Log(math.E+float64(s.k))

	return accepted
}

// Split returns an independent LogarithmicCooling with the same c, reset
// to its initial temperature, and an independently derived random stream.
func (s *LogarithmicCooling) Split() AnnealingSchedule {
	return &LogarithmicCooling{
		c:   s.c,
		rng: s.rng.Split(),
		t:   s.c,
	}
}

// Temperature returns the schedule's current temperature.
func (s *LogarithmicCooling) Temperature() float64 { return s.t }
