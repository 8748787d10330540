package schedule

import "math"

// paramFreeSamplePairs is the number of cost-differing neighbor pairs the
// parameter-free schedules collect before deriving t0 (§4.3: "first
// accept calls only collect samples ... until 10 pairs with differing
// cost observed").
const paramFreeSamplePairs = 10

// estimationTargetRatio is the fixed acceptance-probability target
// (0.95) the parameter-free schedules solve for when deriving t0 from the
// observed mean cost delta.
const estimationTargetRatio = 0.95

// minDerivedT0 is the floor applied to the derived initial temperature.
const minDerivedT0 = 0.002

// estimator collects the statistics the parameter-free schedules need
// during their initial, accept-everything estimation phase: the count of
// evaluations seen and the running mean absolute cost delta among pairs
// whose cost actually differs.
type estimator struct {
	iterations int
	pairs      int
	deltaSum   float64
}

// observe records one evaluation and reports whether enough
// cost-differing pairs have now been seen to end the estimation phase.
func (e *estimator) observe(neighborCost, currentCost float64) (done bool) {
	e.iterations++
	if neighborCost != currentCost {
		e.pairs++
		e.deltaSum += math.Abs(neighborCost - currentCost)
	}
	return e.pairs >= paramFreeSamplePairs
}

// meanDelta returns the mean absolute cost delta among observed
// cost-differing pairs, or 0 if none were observed.
func (e *estimator) meanDelta() float64 {
	if e.pairs == 0 {
		return 0
	}
	return e.deltaSum / float64(e.pairs)
}

// derivedT0 computes t0 = -meanDelta / ln(0.95), floored at 0.002, per
// §4.3's parameter-free derivation (shared by both the exponential and
// linear parameter-free variants).
func (e *estimator) derivedT0() float64 {
	t0 := -e.meanDelta() / math.Log(estimationTargetRatio)
	if t0 < minDerivedT0 {
		t0 = minDerivedT0
	}
	return t0
}

// remainingEvals returns max(1, maxEvals - iterations seen so far), the
// evaluation budget left for the cooling phase once estimation ends.
func (e *estimator) remainingEvals(maxEvals int) int {
	r := maxEvals - e.iterations
	if r < 1 {
		r = 1
	}
	return r
}
