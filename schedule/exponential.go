// Package schedule - exponential cooling.
//
// Temperature decays geometrically every `steps` Accept calls (accepted
// or not): t <- alpha * t, once t is still above the 0.001 floor. The step
// counter itself keeps advancing even once the floor has been reached (see
// the doc comment on ExponentialCooling.Accept); this is a deliberately
// preserved quirk of the reference behavior, not a bug: it's benign since
// cooling has already been permanently suppressed by that point.
package schedule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/annealkit/xrand"
)

// ErrInvalidTemperature indicates a non-positive initial temperature.
var ErrInvalidTemperature = errors.New("schedule: t0 must be positive")

// ErrInvalidAlpha indicates alpha outside (0, 1).
var ErrInvalidAlpha = errors.New("schedule: alpha must be in (0, 1)")

// ErrInvalidSteps indicates a non-positive steps parameter.
var ErrInvalidSteps = errors.New("schedule: steps must be >= 1")

// ExponentialCooling cools geometrically: after every `steps` Accept
// calls, t is multiplied by alpha, as long as t remains above 0.001.
type ExponentialCooling struct {
	t0, alpha float64
	steps     int
	rng       *xrand.Source

	t    float64
	step int
}

// NewExponentialCooling constructs an ExponentialCooling schedule. Panics
// if t0 is non-positive, alpha is outside (0, 1), or steps is less than 1.
func NewExponentialCooling(t0, alpha float64, steps int, rng *xrand.Source) *ExponentialCooling {
	if t0 <= 0 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidTemperature, t0))
	}
	if !(alpha > 0 && alpha < 1) {
		panic(fmt.Errorf("%w: got %v", ErrInvalidAlpha, alpha))
	}
	if steps < 1 {
		panic(fmt.Errorf("%w: got %v", ErrInvalidSteps, steps))
	}

	return &ExponentialCooling{
		t0:    t0,
		alpha: alpha,
		steps: steps,
		rng:   xrand.Or(rng),
		t:     t0,
	}
}

// Init resets the temperature to t0 and the step counter to zero.
func (s *ExponentialCooling) Init(maxEvals int) {
	s.t = s.t0
	s.step = 0
}

// Accept decides acceptance under the current temperature, then advances
// the step counter. Every `steps` calls, if the temperature is still above
// the 0.001 floor, it is multiplied by alpha and the counter resets to
// zero; once the floor is reached, the counter keeps incrementing (it
// passes `steps` without being reset, since the reset only happens while
// the temperature is above the floor), which is the
// documented, preserved quirk: cooling is permanently suppressed from that
// point on, but the counter is still observable.
func (s *ExponentialCooling) Accept(neighborCost, currentCost float64) bool {
	accepted := accept(s.rng, neighborCost, currentCost, s.t)

	s.step++
	if s.step == s.steps && s.t > floorTemperature {
		s.t *= s.alpha
		s.step = 0
	}

	return accepted
}

// Split returns an independent ExponentialCooling with the same
// parameters, reset to its initial temperature, and an independently
// derived random stream.
func (s *ExponentialCooling) Split() AnnealingSchedule {
	return &ExponentialCooling{
		t0:    s.t0,
		alpha: s.alpha,
		steps: s.steps,
		rng:   s.rng.Split(),
		t:     s.t0,
	}
}

// Temperature returns the schedule's current temperature, exposed for
// tests asserting the exact cooling arithmetic of §8 scenario 1.
func (s *ExponentialCooling) Temperature() float64 { return s.t }
