// Package schedule - the classic Modified Lam schedule (Boyan form).
//
// Modified Lam tracks a running acceptance-rate estimate and compares it,
// every iteration, against a target acceptance-rate curve that is high
// early in the run, flat from 15% to 65% of the run, and decays toward zero
// near the end; the temperature is nudged up or down to chase that
// target. All numeric constants (0.998/0.002 EMA weights, 0.15/0.65 phase
// boundaries, 560/440 decay bases, 0.44/0.56 target-rate terms, the 0.999
// temperature step) are part of the contract, per §4.3/§8.
package schedule

import (
	"math"

	"github.com/katalvlaran/annealkit/xrand"
)

const (
	lamAcceptEMAWeight  = 0.998
	lamTempStep         = 0.999
	lamPhase1Target     = 0.44
	lamPhase1Amplitude  = 0.56
	lamPhase1Base       = 560.0
	lamPhase3Base       = 440.0
	lamPhase1Fraction   = 0.15
	lamPhase2Fraction   = 0.65
	lamPhase3Denominator = 0.35
)

// ModifiedLam is the classic Modified Lam annealing schedule.
type ModifiedLam struct {
	rng *xrand.Source

	n              int
	phase1, phase2 float64

	t          float64
	acceptRate float64
	iter       int
}

// NewModifiedLam constructs a ModifiedLam schedule.
func NewModifiedLam(rng *xrand.Source) *ModifiedLam {
	return &ModifiedLam{rng: xrand.Or(rng)}
}

// Init resets the schedule: t <- 0.5, acceptRate <- 0.5, iter <- 0, and
// the phase boundaries are derived from maxEvals.
func (s *ModifiedLam) Init(maxEvals int) {
	s.n = maxEvals
	s.phase1 = lamPhase1Fraction * float64(maxEvals)
	s.phase2 = lamPhase2Fraction * float64(maxEvals)
	s.t = 0.5
	s.acceptRate = 0.5
	s.iter = 0
}

// TargetRate returns the target acceptance rate at the schedule's current
// iteration, exposed for tests asserting §8 scenario 3's table of values.
func (s *ModifiedLam) TargetRate() float64 {
	return lamTargetRate(float64(s.iter), s.n, s.phase1, s.phase2)
}

// lamTargetRate is the three-phase target-acceptance-rate curve used by
// the classic and self-tuning Lam variants; OptimizedModifiedLam follows
// the same curve but advances it incrementally instead of calling this.
func lamTargetRate(iter float64, n int, phase1, phase2 float64) float64 {
	switch {
	case phase1 > 0 && iter <= phase1:
		return lamPhase1Target + lamPhase1Amplitude*math.Pow(lamPhase1Base, -iter/phase1)
	case iter <= phase2:
		return lamPhase1Target
	default:
		return lamPhase1Target * math.Pow(lamPhase3Base, -(iter/float64(n)-lamPhase2Fraction)/lamPhase3Denominator)
	}
}

// Accept decides acceptance under the current temperature, updates the
// EMA acceptance-rate estimate, and nudges the temperature toward the
// target rate for the new iteration count.
func (s *ModifiedLam) Accept(neighborCost, currentCost float64) bool {
	accepted := accept(s.rng, neighborCost, currentCost, s.t)

	var observed float64
	if accepted {
		observed = 1
	}
	s.acceptRate = lamAcceptEMAWeight*s.acceptRate + (1-lamAcceptEMAWeight)*observed
	s.iter++

	target := s.TargetRate()
	if s.acceptRate > target {
		s.t *= lamTempStep
	} else {
		s.t /= lamTempStep
	}

	return accepted
}

// Split returns an independent ModifiedLam with an independently derived
// random stream; Init must be called before first use, as with any fresh
// schedule.
func (s *ModifiedLam) Split() AnnealingSchedule {
	return NewModifiedLam(s.rng.Split())
}

// Temperature returns the schedule's current temperature.
func (s *ModifiedLam) Temperature() float64 { return s.t }
