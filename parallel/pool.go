// Package parallel - shared worker-pool construction and lifecycle.
//
// Every orchestrator in this package takes either a template search plus
// a thread count (split numThreads-1 times to fill the pool) or an
// explicit slice of pre-built workers, all of which must share one
// problem reference and one tracker reference; construction rejects any
// mismatch. The pool, once built, lives until Close; Optimize on a
// closed pool fails with ErrClosed, and Split of a closed pool yields a
// fresh pool that is itself already closed.
package parallel

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/tracker"
)

// ErrInvalidThreadCount indicates a non-positive worker count.
var ErrInvalidThreadCount = errors.New("parallel: numThreads must be >= 1")

// workerPanicHandler is called, if non-nil, whenever a worker goroutine
// recovers from a panic during Optimize; it receives the recovered
// value. Replaceable at the package level so host applications can wire
// in their own structured logging without this package importing a
// logging library of its own (see DESIGN.md's ambient-stack note).
var workerPanicHandler func(recovered any)

// pool holds a fixed set of workers that all share one problem and one
// tracker, plus the closed-lifecycle flag every orchestrator in this
// package embeds.
type pool[T annealkit.Cloner[T]] struct {
	workers []annealkit.Metaheuristic[T]
	tr      *tracker.ProgressTracker[T]
	closed  atomic.Bool
}

// newPool validates and wraps an explicit worker slice: every worker must
// share the same Problem and the same ProgressTracker.
func newPool[T annealkit.Cloner[T]](workers []annealkit.Metaheuristic[T]) (*pool[T], error) {
	if len(workers) == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrInvalidThreadCount)
	}

	problem := workers[0].Problem()
	tr := workers[0].Tracker()
	for _, w := range workers[1:] {
		if w.Problem() != problem || w.Tracker() != tr {
			return nil, annealkit.ErrTrackerMismatch
		}
	}

	return &pool[T]{workers: workers, tr: tr}, nil
}

// newPoolFromTemplate builds a pool of numThreads workers by splitting
// template numThreads-1 times, so every worker (including the template
// itself, used as worker 0) shares the template's tracker.
func newPoolFromTemplate[T annealkit.Cloner[T]](template annealkit.Metaheuristic[T], numThreads int) (*pool[T], error) {
	if numThreads < 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreadCount, numThreads)
	}

	workers := make([]annealkit.Metaheuristic[T], numThreads)
	workers[0] = template
	for i := 1; i < numThreads; i++ {
		split := template.Split()
		split.SetTracker(template.Tracker())
		workers[i] = split
	}

	return &pool[T]{workers: workers, tr: template.Tracker()}, nil
}

// Tracker returns the pool's shared progress tracker.
func (p *pool[T]) Tracker() *tracker.ProgressTracker[T] { return p.tr }

// Problem returns the pool's shared problem.
func (p *pool[T]) Problem() annealkit.Problem[T] { return p.workers[0].Problem() }

// IsClosed reports whether Close has been called.
func (p *pool[T]) IsClosed() bool { return p.closed.Load() }

// Close initiates an orderly shutdown: subsequent Optimize calls on this
// pool return ErrClosed.
func (p *pool[T]) Close() {
	p.closed.Store(true)
}

func recoverWorker() {
	if r := recover(); r != nil {
		if workerPanicHandler != nil {
			workerPanicHandler(r)
		}
	}
}
