// Package schedule - parameter-free exponential cooling.
//
// Runs an initial estimation phase that accepts every neighbor while
// collecting cost-delta statistics, derives t0 and alpha/steps from them
// once 10 cost-differing pairs have been observed, and then behaves
// exactly like ExponentialCooling for the remainder of the run.
package schedule

import (
	"math"

	"github.com/katalvlaran/annealkit/xrand"
)

// alphaCeiling is the upper bound the parameter-free exponential
// derivation searches for: the smallest power-of-two `steps` for which
// the implied alpha is at or below this value.
const alphaCeiling = 0.999

// ParamFreeExponential estimates its own t0, alpha, and steps from the
// early evaluations of the run, then proceeds as exponential cooling.
type ParamFreeExponential struct {
	rng      *xrand.Source
	maxEvals int

	estimating bool
	est        estimator
	inner      *ExponentialCooling
}

// NewParamFreeExponential constructs a ParamFreeExponential schedule.
func NewParamFreeExponential(rng *xrand.Source) *ParamFreeExponential {
	return &ParamFreeExponential{rng: xrand.Or(rng)}
}

// Init resets the estimation phase; any previously derived inner schedule
// is discarded and re-derived from the new run's early evaluations.
func (s *ParamFreeExponential) Init(maxEvals int) {
	s.maxEvals = maxEvals
	s.estimating = true
	s.est = estimator{}
	s.inner = nil
}

// Accept accepts unconditionally during the estimation phase (collecting
// statistics as it goes); once estimation completes it derives t0, alpha
// and steps, builds the inner exponential-cooling schedule, and delegates
// every subsequent call to it.
func (s *ParamFreeExponential) Accept(neighborCost, currentCost float64) bool {
	if s.estimating {
		if s.est.observe(neighborCost, currentCost) {
			s.finishEstimation()
		}
		return true
	}
	return s.inner.Accept(neighborCost, currentCost)
}

func (s *ParamFreeExponential) finishEstimation() {
	t0 := s.est.derivedT0()
	remaining := s.est.remainingEvals(s.maxEvals)

	var alpha float64
	steps := 1
	for {
		denom := math.Ceil(float64(remaining) / float64(steps))
		if denom < 1 {
			denom = 1
		}
		alpha = math.Pow(floorTemperature/t0, 1/denom)
		if alpha <= alphaCeiling {
			break
		}
		steps *= 2
	}

	s.inner = NewExponentialCooling(t0, alpha, steps, s.rng)
	s.estimating = false
}

// Split returns an independent ParamFreeExponential that will run its own
// estimation phase on its own stream.
func (s *ParamFreeExponential) Split() AnnealingSchedule {
	return NewParamFreeExponential(s.rng.Split())
}
