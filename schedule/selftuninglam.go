// Package schedule - Self-Tuning Lam.
//
// Adds a preliminary phase 0 (0.001*N iterations, or 0.01*N when N is
// below 10000) that accepts every neighbor while tallying the mean cost
// delta of worsening transitions and the fraction of transitions that
// were improving-or-equal (i.e. free under any temperature). From those
// two statistics it derives a starting temperature via the same
// -meanDelta/ln(ratio) form the parameter-free schedules use, but with
// the ratio expressed in terms of a desired overall acceptance rate
// rather than a fixed 0.95 (§4.3). The target-rate curve afterward is
// Optimized Modified Lam's; the temperature step afterward replaces the
// fixed 0.999 with a schedule-specific beta tuned to the run length, and
// the acceptance-rate estimate itself becomes an EMA with
// alpha = 2/(1+0.01*N), capped at 0.2 for short runs.
//
// The exact fallback constants for degenerate phase-0 statistics (no
// worsening transitions observed, or a ratio outside (0,1)) are not
// fully pinned down by the distilled spec, and the original
// implementation this module was distilled from was not available to
// consult; the fallbacks below are this module's own well-defined,
// documented choices (see DESIGN.md).
package schedule

import (
	"math"

	"github.com/katalvlaran/annealkit/xrand"
)

// selfTuningDesiredAcceptRate is the overall acceptance rate phase 0
// solves its derived starting temperature for.
const selfTuningDesiredAcceptRate = 0.5

// selfTuningBetaBaseline is the EMA-style decay exponent's run-length
// reference point (a 5000-evaluation run gets exactly the classic Lam's
// 0.998 per-iteration decay; shorter/longer runs scale from there).
const selfTuningBetaBaseline = 5000.0
const selfTuningBetaBase = 0.998

// selfTuningMaxEMAAlpha caps the acceptance-rate EMA weight for very
// short runs, so a handful of iterations can't swing the estimate wildly.
const selfTuningMaxEMAAlpha = 0.2

// SelfTuningLam is the phase-0-calibrated, EMA-driven Modified Lam
// variant.
type SelfTuningLam struct {
	rng *xrand.Source

	n              int
	phase0Len      int
	phase1, phase2 float64
	emaAlpha       float64
	beta           float64

	inPhase0    bool
	phase0      estimator
	phase0Worse int

	t          float64
	acceptRate float64
	iter       int
}

// NewSelfTuningLam constructs a SelfTuningLam schedule.
func NewSelfTuningLam(rng *xrand.Source) *SelfTuningLam {
	return &SelfTuningLam{rng: xrand.Or(rng)}
}

// Init resets the schedule and begins a fresh phase 0.
func (s *SelfTuningLam) Init(maxEvals int) {
	s.n = maxEvals
	if maxEvals < 10000 {
		s.phase0Len = ceilPositive(0.01 * float64(maxEvals))
	} else {
		s.phase0Len = ceilPositive(0.001 * float64(maxEvals))
	}
	s.phase1 = lamPhase1Fraction * float64(maxEvals)
	s.phase2 = lamPhase2Fraction * float64(maxEvals)

	s.emaAlpha = 2.0 / (1.0 + 0.01*float64(maxEvals))
	if s.emaAlpha > selfTuningMaxEMAAlpha {
		s.emaAlpha = selfTuningMaxEMAAlpha
	}
	s.beta = math.Pow(selfTuningBetaBase, selfTuningBetaBaseline/float64(maxEvals))

	s.inPhase0 = true
	s.phase0 = estimator{}
	s.phase0Worse = 0
	s.acceptRate = selfTuningDesiredAcceptRate
	s.iter = 0
	s.t = 0.5 // placeholder, replaced once phase 0 completes
}

func ceilPositive(x float64) int {
	n := int(math.Ceil(x))
	if n < 1 {
		n = 1
	}
	return n
}

// Accept accepts unconditionally during phase 0 while tallying its
// statistics; thereafter it behaves like Optimized Modified Lam with a
// phase-0-derived starting temperature, an EMA acceptance-rate estimate,
// and the run-length-derived beta (computed in Init) in place of the fixed
// 0.999 step.
func (s *SelfTuningLam) Accept(neighborCost, currentCost float64) bool {
	if s.inPhase0 {
		s.iter++
		if neighborCost > currentCost {
			s.phase0Worse++
			s.phase0.deltaSum += neighborCost - currentCost
		}
		s.phase0.iterations++
		if s.phase0.iterations >= s.phase0Len {
			s.finishPhase0()
		}
		return true
	}

	accepted := accept(s.rng, neighborCost, currentCost, s.t)

	var observed float64
	if accepted {
		observed = 1
	}
	s.acceptRate = (1-s.emaAlpha)*s.acceptRate + s.emaAlpha*observed
	s.iter++

	target := lamTargetRate(float64(s.iter), s.n, s.phase1, s.phase2)
	if s.acceptRate > target {
		s.t *= s.beta
	} else {
		s.t /= s.beta
	}

	return accepted
}

func (s *SelfTuningLam) finishPhase0() {
	const epsilon = 1e-9

	observedRate := 1.0
	if s.phase0.iterations > 0 {
		observedRate = float64(s.phase0.iterations-s.phase0Worse) / float64(s.phase0.iterations)
	}

	var meanWorseningDelta float64
	if s.phase0Worse > 0 {
		meanWorseningDelta = s.phase0.deltaSum / float64(s.phase0Worse)
	}

	ratio := (selfTuningDesiredAcceptRate - observedRate) / (1 - observedRate)

	switch {
	case s.phase0Worse == 0 || meanWorseningDelta == 0:
		// Every phase-0 transition was improving-or-equal: nothing to
		// calibrate a temperature against, so fall back to the classic
		// schedules' own default starting temperature.
		s.t = 0.5
	case ratio <= epsilon:
		s.t = floorTemperature
	case ratio >= 1-epsilon:
		s.t = meanWorseningDelta / epsilon
	default:
		s.t = -meanWorseningDelta / math.Log(ratio)
	}
	if s.t < floorTemperature {
		s.t = floorTemperature
	}

	s.acceptRate = selfTuningDesiredAcceptRate
	s.inPhase0 = false
}

// Split returns an independent SelfTuningLam with an independently
// derived random stream.
func (s *SelfTuningLam) Split() AnnealingSchedule {
	return NewSelfTuningLam(s.rng.Split())
}

// Temperature returns the schedule's current temperature.
func (s *SelfTuningLam) Temperature() float64 { return s.t }
