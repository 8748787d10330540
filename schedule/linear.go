// Package schedule - linear cooling.
//
// Temperature decays by a fixed amount every `steps` Accept calls:
// t <- max(0.001, t - deltaT), once t is still above the 0.001 floor,
// clamped so it never drops below the floor. Like ExponentialCooling, the
// step counter stops resetting once the floor is reached.
package schedule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/annealkit/xrand"
)

// ErrInvalidDeltaT indicates a non-positive deltaT.
var ErrInvalidDeltaT = errors.New("schedule: deltaT must be positive")

// LinearCooling cools by a fixed decrement every `steps` Accept calls,
// floored at 0.001.
type LinearCooling struct {
	t0, deltaT float64
	steps      int
	rng        *xrand.Source

	t    float64
	step int
}

// NewLinearCooling constructs a LinearCooling schedule. Panics if t0 is
// non-positive, deltaT is non-positive, or steps is less than 1.
func NewLinearCooling(t0, deltaT float64, steps int, rng *xrand.Source) *LinearCooling {
	if t0 <= 0 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidTemperature, t0))
	}
	if deltaT <= 0 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidDeltaT, deltaT))
	}
	if steps < 1 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidSteps, steps))
	}

	return &LinearCooling{
		t0:     t0,
		deltaT: deltaT,
		steps:  steps,
		rng:    xrand.Or(rng),
		t:      t0,
	}
}

// Init resets the temperature to t0 and the step counter to zero.
func (s *LinearCooling) Init(maxEvals int) {
	s.t = s.t0
	s.step = 0
}

// Accept decides acceptance under the current temperature, then advances
// the step counter, decrementing the temperature (floored at 0.001) every
// `steps` calls while it remains above the floor.
func (s *LinearCooling) Accept(neighborCost, currentCost float64) bool {
	accepted := accept(s.rng, neighborCost, currentCost, s.t)

	s.step++
	if s.step == s.steps && s.t > floorTemperature {
		s.t -= s.deltaT
		if s.t < floorTemperature {
			s.t = floorTemperature
		}
		s.step = 0
	}

	return accepted
}

// Split returns an independent LinearCooling with the same parameters,
// reset to its initial temperature, and an independently derived random
// stream.
func (s *LinearCooling) Split() AnnealingSchedule {
	return &LinearCooling{
		t0:     s.t0,
		deltaT: s.deltaT,
		steps:  s.steps,
		rng:    s.rng.Split(),
		t:      s.t0,
	}
}

// Temperature returns the schedule's current temperature.
func (s *LinearCooling) Temperature() float64 { return s.t }
