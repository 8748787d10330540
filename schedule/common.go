package schedule

import (
	"math"

	"github.com/katalvlaran/annealkit/xrand"
)

// floorTemperature is the minimum temperature below which exponential and
// linear cooling suppress further cooling (per §4.3's table, the 0.001
// threshold shared by both variants).
const floorTemperature = 0.001

// accept implements the Boltzmann acceptance rule common to every
// schedule variant: accept unconditionally on improvement or a tie,
// otherwise accept with probability exp((currentCost-neighborCost)/t)
// against a uniform [0,1) draw from rng.
func accept(rng *xrand.Source, neighborCost, currentCost, t float64) bool {
	if neighborCost <= currentCost {
		return true
	}
	if t <= 0 {
		return false
	}
	p := math.Exp((currentCost - neighborCost) / t)
	return rng.Float64() < p
}
