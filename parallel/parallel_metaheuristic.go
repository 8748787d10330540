// Package parallel - ParallelMetaheuristic.
//
// Submits Optimize(runLength) on every worker concurrently via
// errgroup.Group, collects every result, and returns the lowest-cost one
// (nil/errored workers are skipped, best-effort, per §4.6's aggregation
// rule).
package parallel

import (
	"context"

	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/tracker"
	"golang.org/x/sync/errgroup"
)

// ParallelMetaheuristic runs a fixed pool of worker searches concurrently,
// one Optimize call per worker per round.
type ParallelMetaheuristic[T annealkit.Cloner[T]] struct {
	pool *pool[T]
}

// NewParallelMetaheuristic builds a ParallelMetaheuristic of numThreads
// workers by splitting template. Panics if construction is invalid
// (numThreads < 1).
func NewParallelMetaheuristic[T annealkit.Cloner[T]](template annealkit.Metaheuristic[T], numThreads int) *ParallelMetaheuristic[T] {
	p, err := newPoolFromTemplate[T](template, numThreads)
	if err != nil {
		panic(err)
	}
	return &ParallelMetaheuristic[T]{pool: p}
}

// NewParallelMetaheuristicFromWorkers builds a ParallelMetaheuristic from
// an explicit worker slice. Panics if the workers don't all share one
// problem and one tracker.
func NewParallelMetaheuristicFromWorkers[T annealkit.Cloner[T]](workers []annealkit.Metaheuristic[T]) *ParallelMetaheuristic[T] {
	p, err := newPool[T](workers)
	if err != nil {
		panic(err)
	}
	return &ParallelMetaheuristic[T]{pool: p}
}

// Problem returns the shared problem.
func (m *ParallelMetaheuristic[T]) Problem() annealkit.Problem[T] { return m.pool.Problem() }

// Tracker returns the shared progress tracker.
func (m *ParallelMetaheuristic[T]) Tracker() *tracker.ProgressTracker[T] { return m.pool.Tracker() }

// SetTracker reattaches every worker in the pool to tr.
func (m *ParallelMetaheuristic[T]) SetTracker(tr *tracker.ProgressTracker[T]) {
	if tr == nil {
		return
	}
	m.pool.tr = tr
	for _, w := range m.pool.workers {
		w.SetTracker(tr)
	}
}

// TotalRunLength returns the sum of every worker's own TotalRunLength.
func (m *ParallelMetaheuristic[T]) TotalRunLength() int64 {
	var total int64
	for _, w := range m.pool.workers {
		total += w.TotalRunLength()
	}
	return total
}

// Close initiates an orderly shutdown of the worker pool. Subsequent
// Optimize calls fail with ErrClosed.
func (m *ParallelMetaheuristic[T]) Close() { m.pool.Close() }

// Optimize submits Optimize(runLength) on every worker concurrently and
// returns the lowest-cost result across all workers that returned one.
// Any worker that observes the tracker's found-best flag causes its
// peers to return at their next per-iteration check, per §4.4 step 5a;
// no explicit cancellation signal is needed beyond the shared tracker.
func (m *ParallelMetaheuristic[T]) Optimize(runLength int) (annealkit.Pair[T], bool, error) {
	if m.pool.IsClosed() {
		var zero annealkit.Pair[T]
		return zero, false, annealkit.ErrClosed
	}

	group, _ := errgroup.WithContext(context.Background())
	results := make([]annealkit.Pair[T], len(m.pool.workers))
	ran := make([]bool, len(m.pool.workers))

	for i, w := range m.pool.workers {
		i, w := i, w
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if workerPanicHandler != nil {
						workerPanicHandler(r)
					}
					err = nil // a panicking worker is silently skipped, per §4.4's failure model
				}
			}()
			pair, didRun, werr := w.Optimize(runLength)
			if werr != nil {
				return nil // best-effort aggregation: worker errors are silently skipped
			}
			results[i] = pair
			ran[i] = didRun
			return nil
		})
	}
	_ = group.Wait()

	return bestOf(results, ran)
}

// bestOf returns the lowest-cost pair among the results whose ran flag is
// true, and false if none ran.
func bestOf[T annealkit.Cloner[T]](results []annealkit.Pair[T], ran []bool) (annealkit.Pair[T], bool, error) {
	var (
		best    annealkit.Pair[T]
		haveAny bool
	)
	for i, didRun := range ran {
		if !didRun {
			continue
		}
		if !haveAny || results[i].Cost < best.Cost {
			best = results[i]
			haveAny = true
		}
	}
	return best, haveAny, nil
}

// Split returns an independent ParallelMetaheuristic of the same worker
// count, with every worker split and a fresh shared tracker. Per the
// resolved "closed-stays-closed" behavior, if the source pool was closed,
// the split is returned already closed.
func (m *ParallelMetaheuristic[T]) Split() annealkit.Metaheuristic[T] {
	split := splitWorkers(m.pool.workers)
	p, err := newPool[T](split)
	if err != nil {
		panic(err)
	}
	out := &ParallelMetaheuristic[T]{pool: p}
	if m.pool.IsClosed() {
		out.pool.Close()
	}
	return out
}

// splitWorkers splits every worker in workers, reattaching all of them to
// the first split worker's fresh tracker so the resulting set still
// satisfies the shared-tracker construction invariant.
func splitWorkers[T annealkit.Cloner[T]](workers []annealkit.Metaheuristic[T]) []annealkit.Metaheuristic[T] {
	out := make([]annealkit.Metaheuristic[T], len(workers))
	for i, w := range workers {
		out[i] = w.Split()
	}
	sharedTr := out[0].Tracker()
	for _, w := range out[1:] {
		w.SetTracker(sharedTr)
	}
	return out
}
