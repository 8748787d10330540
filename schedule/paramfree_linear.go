// Package schedule - parameter-free linear cooling.
//
// Shares ParamFreeExponential's estimation phase (10 cost-differing pairs
// collected, t0 derived the same way), then derives a deltaT and proceeds
// as linear cooling for the remainder of the run.
package schedule

import (
	"math"

	"github.com/katalvlaran/annealkit/xrand"
)

// minDerivedDeltaT is the floor the parameter-free linear derivation
// requires of its derived deltaT (§4.3: "... >= 10^-6").
const minDerivedDeltaT = 1e-6

// ParamFreeLinear estimates its own t0 and deltaT from the early
// evaluations of the run, then proceeds as linear cooling.
type ParamFreeLinear struct {
	rng      *xrand.Source
	maxEvals int

	estimating bool
	est        estimator
	inner      *LinearCooling
}

// NewParamFreeLinear constructs a ParamFreeLinear schedule.
func NewParamFreeLinear(rng *xrand.Source) *ParamFreeLinear {
	return &ParamFreeLinear{rng: xrand.Or(rng)}
}

// Init resets the estimation phase.
func (s *ParamFreeLinear) Init(maxEvals int) {
	s.maxEvals = maxEvals
	s.estimating = true
	s.est = estimator{}
	s.inner = nil
}

// Accept accepts unconditionally during estimation; once it completes, it
// derives t0 and deltaT, builds the inner linear-cooling schedule, and
// delegates every subsequent call to it.
func (s *ParamFreeLinear) Accept(neighborCost, currentCost float64) bool {
	if s.estimating {
		if s.est.observe(neighborCost, currentCost) {
			s.finishEstimation()
		}
		return true
	}
	return s.inner.Accept(neighborCost, currentCost)
}

func (s *ParamFreeLinear) finishEstimation() {
	t0 := s.est.derivedT0()
	remaining := s.est.remainingEvals(s.maxEvals)

	var deltaT float64
	steps := 1
	for {
		denom := math.Ceil(float64(remaining) / float64(steps))
		if denom < 1 {
			denom = 1
		}
		deltaT = (t0 - floorTemperature) / denom
		if deltaT >= minDerivedDeltaT {
			break
		}
		steps *= 2
	}

	s.inner = NewLinearCooling(t0, deltaT, steps, s.rng)
	s.estimating = false
}

// Split returns an independent ParamFreeLinear that will run its own
// estimation phase on its own stream.
func (s *ParamFreeLinear) Split() AnnealingSchedule {
	return NewParamFreeLinear(s.rng.Split())
}
