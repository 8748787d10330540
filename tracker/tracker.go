package tracker

import (
	"math"
	"sync/atomic"
	"time"
)

// Cloner is the deep-copy capability every candidate solution type must
// provide. ProgressTracker takes a defensive copy via Clone whenever it
// records a new best solution, so callers that later mutate their own
// in-flight candidate cannot observe or corrupt the tracker's snapshot.
type Cloner[T any] interface {
	Clone() T
}

// state is the tracker's entire "best so far" snapshot, replaced in one
// atomic pointer swap per improving update.
type state[T Cloner[T]] struct {
	solution  T
	hasBest   bool
	cost      float64
	timestamp int64 // UnixNano; zero if hasBest is false
}

// ProgressTracker is the shared, thread-safe record of the best-found
// solution, its cost, and the cooperative stop/found-best flags described
// in §3/§4.2 of the design: a single instance is shared across every
// worker of one parallel search.
type ProgressTracker[T Cloner[T]] struct {
	current atomic.Pointer[state[T]]
	found   atomic.Bool
	stopped atomic.Bool
}

// New returns a ProgressTracker with no recorded best solution and
// best cost initialized to +Inf, ready for cost-minimizing searches.
func New[T Cloner[T]]() *ProgressTracker[T] {
	t := &ProgressTracker[T]{}
	t.current.Store(&state[T]{cost: math.Inf(1)})
	return t
}

// Update atomically records solution as the new best if cost is strictly
// better than the current best cost, taking a defensive copy via Clone and
// stamping the time of the update. If isMinCost is true, it also sets the
// found-best flag. Returns the tracker's best cost after the call (which
// may be unchanged from before the call, if cost did not improve on it).
//
// Concurrent callers linearize through the CompareAndSwap retry loop: if
// two workers both discover improving costs at once, the one whose swap
// loses the race retries against the winner's state, and the strictly
// lower of the two costs is always what survives.
func (p *ProgressTracker[T]) Update(cost float64, solution T, isMinCost bool) float64 {
	for {
		old := p.current.Load()
		if !(cost < old.cost) {
			return old.cost
		}
		next := &state[T]{
			solution:  solution.Clone(),
			hasBest:   true,
			cost:      cost,
			timestamp: time.Now().UnixNano(),
		}
		if p.current.CompareAndSwap(old, next) {
			if isMinCost {
				// found_best implies stop(): every worker's per-iteration
				// check of IsStopped (the flag cooperative loops actually
				// poll) must observe this without separately checking
				// DidFindBest.
				p.found.Store(true)
				p.stopped.Store(true)
			}
			return cost
		}
		// Lost the race to a concurrent Update; re-read and retry. The
		// loop only returns once it has compared against the most
		// recent state, so the surviving cost is always the lower one.
	}
}

// Solution returns a copy of the current best solution, and false if no
// solution has ever been recorded.
func (p *ProgressTracker[T]) Solution() (T, bool) {
	s := p.current.Load()
	if !s.hasBest {
		var zero T
		return zero, false
	}
	return s.solution.Clone(), true
}

// Cost returns the current best cost (+Inf if no solution has ever been
// recorded).
func (p *ProgressTracker[T]) Cost() float64 {
	return p.current.Load().cost
}

// CostDouble is an alias for Cost, for callers that model their problem's
// cost as an explicitly floating-point quantity distinct from an
// integer-cost Problem's normalized float64 view.
func (p *ProgressTracker[T]) CostDouble() float64 {
	return p.Cost()
}

// DidFindBest reports whether some worker has signalled that the current
// best cost equals the problem's theoretical minimum.
func (p *ProgressTracker[T]) DidFindBest() bool {
	return p.found.Load()
}

// IsStopped reports whether the tracker has been cooperatively stopped.
// Workers must consult this once per iteration and return their in-flight
// candidate, without further iteration, as soon as it is true.
func (p *ProgressTracker[T]) IsStopped() bool {
	return p.stopped.Load()
}

// Stop sets the cooperative-stop flag. Idempotent; once true it never
// reverts except via Start.
func (p *ProgressTracker[T]) Stop() {
	p.stopped.Store(true)
}

// Start clears the cooperative-stop flag. Used by the timed orchestrator
// to reset a tracker between successive Optimize calls.
func (p *ProgressTracker[T]) Start() {
	p.stopped.Store(false)
}

// CurrentPair returns a (solution, cost, isMinCost) snapshot of the
// tracker's current state, and false if no solution has ever been
// recorded. Used by the timed parallel orchestrator's history sampler.
func (p *ProgressTracker[T]) CurrentPair() (solution T, cost float64, isMinCost bool, ok bool) {
	s := p.current.Load()
	if !s.hasBest {
		var zero T
		return zero, math.Inf(1), false, false
	}
	return s.solution.Clone(), s.cost, p.found.Load(), true
}

// Timestamp returns the time at which the current best solution was
// recorded. It is the zero time if no solution has ever been recorded.
func (p *ProgressTracker[T]) Timestamp() time.Time {
	s := p.current.Load()
	if !s.hasBest {
		return time.Time{}
	}
	return time.Unix(0, s.timestamp)
}
