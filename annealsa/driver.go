// Package annealsa - the simulated-annealing driver (annealsa.Driver).
//
// Optimize/Reoptimize both run the six-step loop described in the
// design: short-circuit on an already-stopped tracker, draw an initial
// candidate (fresh, or from the tracker's current best for Reoptimize),
// evaluate it, initialize the schedule, then iterate mutate/accept-or-undo
// up to maxEvals times, checking the tracker's cooperative-stop flag once
// per iteration. A nil post-processing hill climber is a valid,
// first-class configuration (no post-processing at all).
package annealsa

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/schedule"
	"github.com/katalvlaran/annealkit/tracker"
)

// ErrInvalidMaxEvals indicates a non-positive evaluation budget was
// passed to Optimize/Reoptimize.
var ErrInvalidMaxEvals = errors.New("annealsa: maxEvals must be >= 1")

// Driver is the simulated-annealing ReoptimizableMetaheuristic.
type Driver[T annealkit.Cloner[T]] struct {
	problem     annealkit.Problem[T]
	mutation    annealkit.UndoableMutation[T]
	initializer annealkit.Initializer[T]
	schedule    schedule.AnnealingSchedule

	tr         *tracker.ProgressTracker[T]
	hillClimb  annealkit.HillClimber[T]
	totalEvals int64
}

// New constructs a Driver. Panics if problem, mutation, or initializer is
// nil; sched may be nil, in which case schedule.NewModifiedLam(nil) is
// used as a parameter-free default. A nil tr is allocated fresh via
// tracker.New.
func New[T annealkit.Cloner[T]](
	problem annealkit.Problem[T],
	mutation annealkit.UndoableMutation[T],
	initializer annealkit.Initializer[T],
	sched schedule.AnnealingSchedule,
	tr *tracker.ProgressTracker[T],
) *Driver[T] {
	if problem == nil {
		panic(fmt.Errorf("annealsa: %w", annealkit.ErrNilProblem))
	}
	if mutation == nil {
		panic(fmt.Errorf("annealsa: %w", annealkit.ErrNilMutation))
	}
	if initializer == nil {
		panic(fmt.Errorf("annealsa: %w", annealkit.ErrNilInitializer))
	}
	if sched == nil {
		sched = schedule.NewModifiedLam(nil)
	}
	if tr == nil {
		tr = tracker.New[T]()
	}

	return &Driver[T]{
		problem:     problem,
		mutation:    mutation,
		initializer: initializer,
		schedule:    sched,
		tr:          tr,
	}
}

// Problem returns the problem this driver optimizes.
func (d *Driver[T]) Problem() annealkit.Problem[T] { return d.problem }

// Tracker returns the driver's progress tracker.
func (d *Driver[T]) Tracker() *tracker.ProgressTracker[T] { return d.tr }

// SetTracker attaches tr as this driver's progress tracker. A nil tr is
// a no-op.
func (d *Driver[T]) SetTracker(tr *tracker.ProgressTracker[T]) {
	if tr == nil {
		return
	}
	d.tr = tr
	if d.hillClimb != nil {
		d.hillClimb.SetTracker(tr)
	}
}

// SetHillClimber attaches an optional post-processing hill climber. A nil
// argument clears any previously attached hill climber. If its own
// tracker differs from the driver's, it is reattached to the driver's
// tracker so both collaborators report to the same shared state.
func (d *Driver[T]) SetHillClimber(hc annealkit.HillClimber[T]) {
	d.hillClimb = hc
	if hc != nil && hc.Tracker() != d.tr {
		hc.SetTracker(d.tr)
	}
}

// TotalRunLength returns the cumulative number of evaluations this
// driver has consumed across every Optimize/Reoptimize call.
func (d *Driver[T]) TotalRunLength() int64 {
	return atomic.LoadInt64(&d.totalEvals)
}

// Optimize runs up to maxEvals evaluations starting from a freshly
// created candidate.
func (d *Driver[T]) Optimize(maxEvals int) (annealkit.Pair[T], bool, error) {
	return d.run(maxEvals, d.initializer.CreateCandidate)
}

// OptimizeFrom runs up to maxEvals evaluations starting from start
// (a copy is not taken; callers that need the original preserved should
// pass a clone).
func (d *Driver[T]) OptimizeFrom(maxEvals int, start T) (annealkit.Pair[T], bool, error) {
	return d.run(maxEvals, func() T { return start })
}

// Reoptimize runs up to maxEvals evaluations starting from a copy of the
// tracker's current best solution, or a fresh candidate if the tracker
// has none yet.
func (d *Driver[T]) Reoptimize(maxEvals int) (annealkit.Pair[T], bool, error) {
	return d.run(maxEvals, func() T {
		if best, ok := d.tr.Solution(); ok {
			return best
		}
		return d.initializer.CreateCandidate()
	})
}

// run implements the shared six-step contract; makeStart supplies the
// initial candidate (step 2) and is the only difference between
// Optimize, OptimizeFrom, and Reoptimize.
func (d *Driver[T]) run(maxEvals int, makeStart func() T) (annealkit.Pair[T], bool, error) {
	if maxEvals < 1 {
		var zero annealkit.Pair[T]
		return zero, false, fmt.Errorf("annealsa: %w", ErrInvalidMaxEvals)
	}

	// Step 1: short-circuit if the tracker already found the optimum or
	// was cooperatively stopped.
	if d.tr.DidFindBest() || d.tr.IsStopped() {
		var zero annealkit.Pair[T]
		return zero, false, nil
	}

	// Step 2: initial candidate.
	current := makeStart()

	// Step 3: initial cost/tracker update, with an early return if this
	// candidate is already the theoretical optimum.
	currentCost := d.problem.Cost(current)
	isMin := d.problem.IsMinCost(currentCost)
	d.tr.Update(currentCost, current, isMin)
	if isMin {
		atomic.AddInt64(&d.totalEvals, 1)
		return d.finish(current, currentCost, isMin)
	}

	// Step 4: schedule initialization.
	d.schedule.Init(maxEvals)

	// Step 5: the mutate/accept-or-undo loop.
	var consumed int64
	for i := 1; i <= maxEvals; i++ {
		if d.tr.IsStopped() {
			consumed = int64(i - 1)
			atomic.AddInt64(&d.totalEvals, consumed)
			return annealkit.Pair[T]{Solution: current, Cost: currentCost, IsMinCost: false}, true, nil
		}

		d.mutation.Mutate(&current)
		neighborCost := d.problem.Cost(current)

		if d.schedule.Accept(neighborCost, currentCost) {
			currentCost = neighborCost
			best := d.tr.Cost()
			if currentCost < best {
				isMin := d.problem.IsMinCost(currentCost)
				d.tr.Update(currentCost, current, isMin)
				if isMin {
					consumed = int64(i)
					atomic.AddInt64(&d.totalEvals, consumed)
					return d.finish(current, currentCost, isMin)
				}
			}
		} else {
			d.mutation.Undo(&current)
		}
	}

	// Step 6: budget exhausted; hand off to the post-processing hill
	// climber if one is attached, else return the in-flight candidate.
	atomic.AddInt64(&d.totalEvals, int64(maxEvals))
	return d.finish(current, currentCost, false)
}

func (d *Driver[T]) finish(current T, currentCost float64, isMin bool) (annealkit.Pair[T], bool, error) {
	if d.hillClimb != nil {
		pair, err := d.hillClimb.Optimize(current)
		return pair, true, err
	}
	return annealkit.Pair[T]{Solution: current, Cost: currentCost, IsMinCost: isMin}, true, nil
}

// Split returns an independent Driver: a split mutation and initializer,
// a split schedule, and a fresh tracker (the default standalone split,
// per §4.5's Multistarter.Split note, which applies equally to the inner
// driver it wraps). Callers that want a shared tracker should construct
// the split's fields directly via New instead.
func (d *Driver[T]) Split() annealkit.Metaheuristic[T] {
	split := New[T](
		d.problem,
		d.mutation.Split().(annealkit.UndoableMutation[T]),
		d.initializer.Split(),
		d.schedule.Split(),
		tracker.New[T](),
	)
	if d.hillClimb != nil {
		split.hillClimb = d.hillClimb
	}
	return split
}
