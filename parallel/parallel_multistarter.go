// Package parallel - ParallelMultistarter.
//
// Identical dispatch pattern to ParallelMetaheuristic, but each worker is
// a restart.Multistarter: Optimize(numRestarts) submits numRestarts
// restarts per worker concurrently and keeps the best across all of them.
package parallel

import (
	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/restart"
	"github.com/katalvlaran/annealkit/tracker"
)

// ParallelMultistarter runs a fixed pool of Multistarter workers
// concurrently.
type ParallelMultistarter[T annealkit.Cloner[T]] struct {
	inner *ParallelMetaheuristic[T]
}

// NewParallelMultistarter builds a ParallelMultistarter of numThreads
// workers by splitting template (a *restart.Multistarter[T]).
func NewParallelMultistarter[T annealkit.Cloner[T]](template *restart.Multistarter[T], numThreads int) *ParallelMultistarter[T] {
	return &ParallelMultistarter[T]{inner: NewParallelMetaheuristic[T](template, numThreads)}
}

// NewParallelMultistarterFromWorkers builds a ParallelMultistarter from
// an explicit slice of Multistarter workers, which must all share one
// problem and one tracker.
func NewParallelMultistarterFromWorkers[T annealkit.Cloner[T]](workers []*restart.Multistarter[T]) *ParallelMultistarter[T] {
	asMetaheuristics := make([]annealkit.Metaheuristic[T], len(workers))
	for i, w := range workers {
		asMetaheuristics[i] = w
	}
	return &ParallelMultistarter[T]{inner: NewParallelMetaheuristicFromWorkers[T](asMetaheuristics)}
}

// Problem returns the shared problem.
func (m *ParallelMultistarter[T]) Problem() annealkit.Problem[T] { return m.inner.Problem() }

// Tracker returns the shared progress tracker.
func (m *ParallelMultistarter[T]) Tracker() *tracker.ProgressTracker[T] { return m.inner.Tracker() }

// SetTracker reattaches every worker in the pool to tr.
func (m *ParallelMultistarter[T]) SetTracker(tr *tracker.ProgressTracker[T]) { m.inner.SetTracker(tr) }

// TotalRunLength returns the sum of every worker's own TotalRunLength.
func (m *ParallelMultistarter[T]) TotalRunLength() int64 { return m.inner.TotalRunLength() }

// Close initiates an orderly shutdown of the worker pool.
func (m *ParallelMultistarter[T]) Close() { m.inner.Close() }

// Optimize submits Optimize(numRestarts) on every worker's Multistarter
// concurrently and returns the lowest-cost result.
func (m *ParallelMultistarter[T]) Optimize(numRestarts int) (annealkit.Pair[T], bool, error) {
	return m.inner.Optimize(numRestarts)
}

// Split returns an independent ParallelMultistarter, closed if the
// source was closed.
func (m *ParallelMultistarter[T]) Split() annealkit.Metaheuristic[T] {
	return &ParallelMultistarter[T]{inner: m.inner.Split().(*ParallelMetaheuristic[T])}
}
