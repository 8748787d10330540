// Package schedule - Optimized Modified Lam.
//
// Same target-rate curve as ModifiedLam, computed incrementally instead
// of from scratch each iteration (multiplying a running term by a
// precomputed per-phase ratio rather than calling math.Pow with the full
// exponent every time), and the temperature step's division by 0.999 is
// replaced by multiplication by its precomputed reciprocal
// (1.001001001001001), per §4.3's table.
package schedule

import (
	"math"

	"github.com/katalvlaran/annealkit/xrand"
)

// lamTempStepReciprocal is the precomputed reciprocal of lamTempStep
// (1/0.999), used in place of a division in the "reject" branch.
const lamTempStepReciprocal = 1.001001001001001

// OptimizedModifiedLam is the incremental-target-rate form of Modified
// Lam.
type OptimizedModifiedLam struct {
	rng *xrand.Source

	n              int
	phase1, phase2 float64
	multPhase1     float64
	multPhase3     float64

	t          float64
	acceptRate float64
	iter       int
	termPhase1 float64
	targetRate float64
}

// NewOptimizedModifiedLam constructs an OptimizedModifiedLam schedule.
func NewOptimizedModifiedLam(rng *xrand.Source) *OptimizedModifiedLam {
	return &OptimizedModifiedLam{rng: xrand.Or(rng)}
}

// Init resets the schedule and precomputes the per-phase multiplicative
// ratios used to advance the target rate incrementally.
func (s *OptimizedModifiedLam) Init(maxEvals int) {
	s.n = maxEvals
	s.phase1 = lamPhase1Fraction * float64(maxEvals)
	s.phase2 = lamPhase2Fraction * float64(maxEvals)

	if s.phase1 > 0 {
		s.multPhase1 = math.Pow(lamPhase1Base, -1/s.phase1)
	} else {
		s.multPhase1 = 1
	}
	if denom := float64(maxEvals) - s.phase2; denom > 0 {
		s.multPhase3 = math.Pow(lamPhase3Base, -1/denom)
	} else {
		s.multPhase3 = 1
	}

	s.t = 0.5
	s.acceptRate = 0.5
	s.iter = 0
	s.termPhase1 = lamPhase1Amplitude
	s.targetRate = lamPhase1Target + s.termPhase1
}

// Accept decides acceptance under the current temperature, updates the
// EMA acceptance-rate estimate, advances the target rate incrementally,
// and nudges the temperature toward it.
func (s *OptimizedModifiedLam) Accept(neighborCost, currentCost float64) bool {
	accepted := accept(s.rng, neighborCost, currentCost, s.t)

	var observed float64
	if accepted {
		observed = 1
	}
	s.acceptRate = lamAcceptEMAWeight*s.acceptRate + (1-lamAcceptEMAWeight)*observed
	s.iter++

	i := float64(s.iter)
	switch {
	case s.phase1 > 0 && i <= s.phase1:
		s.termPhase1 *= s.multPhase1
		s.targetRate = lamPhase1Target + s.termPhase1
	case i <= s.phase2:
		s.targetRate = lamPhase1Target
	default:
		s.targetRate *= s.multPhase3
	}

	if s.acceptRate > s.targetRate {
		s.t *= lamTempStep
	} else {
		s.t *= lamTempStepReciprocal
	}

	return accepted
}

// Split returns an independent OptimizedModifiedLam with an independently
// derived random stream.
func (s *OptimizedModifiedLam) Split() AnnealingSchedule {
	return NewOptimizedModifiedLam(s.rng.Split())
}

// Temperature returns the schedule's current temperature.
func (s *OptimizedModifiedLam) Temperature() float64 { return s.t }

// TargetRate returns the schedule's current target acceptance rate.
func (s *OptimizedModifiedLam) TargetRate() float64 { return s.targetRate }
