package schedule

// AnnealingSchedule decides acceptance of a proposed neighbor and, in the
// same call, advances its own internal temperature/statistics by one
// iteration. A schedule is pure with respect to the engine driving it:
// any side effects are contained entirely within the schedule's own
// state.
type AnnealingSchedule interface {
	// Init resets all internal state for a fresh run of at most maxEvals
	// evaluations.
	Init(maxEvals int)

	// Accept decides whether to accept a neighbor of cost neighborCost,
	// given the current candidate's cost currentCost, and advances the
	// schedule's internal state by one iteration. Must be called exactly
	// once per proposed neighbor.
	Accept(neighborCost, currentCost float64) bool

	// Split returns an independent, functionally equivalent copy whose
	// random stream is independently derived from this schedule's own.
	Split() AnnealingSchedule
}
