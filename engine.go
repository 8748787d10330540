package annealkit

import "github.com/katalvlaran/annealkit/tracker"

// HillClimber is an optional post-processing collaborator a simulated
// annealing driver may hand its final candidate to. Only its interface is
// specified by this module; concrete hill climbers (and the lazy
// NeighborIterator-driven neighborhoods they walk) are external
// collaborators.
type HillClimber[T Cloner[T]] interface {
	// Optimize runs the hill climber from start and returns the best
	// candidate it finds.
	Optimize(start T) (Pair[T], error)

	// Problem returns the problem this hill climber was constructed for.
	Problem() Problem[T]

	// Tracker returns the progress tracker this hill climber reports to.
	Tracker() *tracker.ProgressTracker[T]

	// SetTracker attaches tr as this hill climber's progress tracker. A
	// nil tr is tolerated as a no-op, matching spec's "nullable inputs
	// ... tolerated as 'no change' for setProgressTracker(null)".
	SetTracker(tr *tracker.ProgressTracker[T])

	// TotalRunLength returns the cumulative number of evaluations this
	// hill climber has consumed across all calls to Optimize.
	TotalRunLength() int64
}

// Metaheuristic is the common surface of every search engine exposed by
// this module: the single-worker simulated-annealing driver, the
// Multistarter, and every parallel orchestrator.
type Metaheuristic[T Cloner[T]] interface {
	// Optimize runs the search for up to maxEvals evaluations (the exact
	// unit is implementation-defined: a driver's evaluations, a
	// Multistarter's restarts, ...), returning the best pair found, and
	// false if the search short-circuited without completing any
	// evaluation (e.g. the tracker was already stopped).
	Optimize(maxEvals int) (Pair[T], bool, error)

	// Problem returns the problem this search optimizes.
	Problem() Problem[T]

	// Tracker returns the progress tracker this search reports to.
	Tracker() *tracker.ProgressTracker[T]

	// SetTracker attaches tr as this search's progress tracker. A nil tr
	// is a no-op.
	SetTracker(tr *tracker.ProgressTracker[T])

	// TotalRunLength returns the cumulative number of evaluations this
	// search has consumed across all calls to Optimize/Reoptimize.
	TotalRunLength() int64

	// Split returns an independent, functionally equivalent copy.
	Split() Metaheuristic[T]
}

// ReoptimizableMetaheuristic is a Metaheuristic that can continue
// searching from its tracker's current best solution, rather than always
// starting from a fresh Initializer.CreateCandidate().
type ReoptimizableMetaheuristic[T Cloner[T]] interface {
	Metaheuristic[T]

	// Reoptimize behaves like Optimize, except the initial candidate is a
	// copy of the tracker's current best solution (or a fresh candidate,
	// if the tracker has none yet).
	Reoptimize(maxEvals int) (Pair[T], bool, error)
}
