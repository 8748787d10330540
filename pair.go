package annealkit

// Pair is the immutable (candidate, cost, isMinCost) triple returned by a
// search's Optimize/Reoptimize call. It corresponds to spec's
// SolutionCostPair, renamed to the short, idiomatic form used throughout
// this module's API.
type Pair[T any] struct {
	// Solution is the candidate solution.
	Solution T

	// Cost is the solution's cost under the problem it was produced for.
	Cost float64

	// IsMinCost reports whether Cost equals the problem's theoretical
	// minimum cost, i.e. whether the search has proven optimality.
	IsMinCost bool
}
