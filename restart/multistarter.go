// Package restart - Multistarter, the sequential multistart orchestrator.
//
// Multistarter runs an inner search for numRestarts restarts, each
// budgeted by RestartSchedule.NextRunLength, keeping the best pair seen
// both by direct cost comparison of each restart's return value and via
// the shared tracker (which may have recorded an even better solution
// produced mid-restart, before a worse one was returned as that
// restart's own result).
package restart

import (
	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/tracker"
)

// Multistarter sequentially restarts an inner search.
type Multistarter[T annealkit.Cloner[T]] struct {
	inner    annealkit.Metaheuristic[T]
	schedule RestartSchedule
	tr       *tracker.ProgressTracker[T]

	totalRunLength int64
}

// New constructs a Multistarter over inner, drawing restart lengths from
// sched. The tracker used is inner.Tracker().
func New[T annealkit.Cloner[T]](inner annealkit.Metaheuristic[T], sched RestartSchedule) *Multistarter[T] {
	if inner == nil {
		panic("restart: nil inner search")
	}
	if sched == nil {
		panic("restart: nil restart schedule")
	}
	return &Multistarter[T]{inner: inner, schedule: sched, tr: inner.Tracker()}
}

// Problem returns the inner search's problem.
func (m *Multistarter[T]) Problem() annealkit.Problem[T] { return m.inner.Problem() }

// Tracker returns the shared progress tracker.
func (m *Multistarter[T]) Tracker() *tracker.ProgressTracker[T] { return m.tr }

// SetTracker reattaches both the Multistarter and its inner search to tr.
func (m *Multistarter[T]) SetTracker(tr *tracker.ProgressTracker[T]) {
	if tr == nil {
		return
	}
	m.tr = tr
	m.inner.SetTracker(tr)
}

// TotalRunLength returns the cumulative number of evaluations consumed
// across every restart this Multistarter has performed.
func (m *Multistarter[T]) TotalRunLength() int64 { return m.totalRunLength }

// Optimize performs numRestarts restarts of the inner search, each
// budgeted by schedule.NextRunLength(), returning the best pair seen
// (by cost) across all restarts and the tracker's own best, and false if
// the tracker was already settled (found-best or stopped) or numRestarts
// is zero, so that no restart ran at all.
func (m *Multistarter[T]) Optimize(numRestarts int) (annealkit.Pair[T], bool, error) {
	if m.tr.DidFindBest() || m.tr.IsStopped() {
		var zero annealkit.Pair[T]
		return zero, false, nil
	}

	var (
		best    annealkit.Pair[T]
		haveAny bool
	)

	for r := 0; r < numRestarts; r++ {
		if m.tr.DidFindBest() || m.tr.IsStopped() {
			break
		}

		runLen := m.schedule.NextRunLength()

		pair, ran, err := m.inner.Optimize(runLen)
		m.totalRunLength = m.inner.TotalRunLength()
		if err != nil {
			return annealkit.Pair[T]{}, haveAny, err
		}
		if !ran {
			if m.tr.DidFindBest() || m.tr.IsStopped() {
				break
			}
			continue
		}

		if !haveAny || pair.Cost < best.Cost {
			best = pair
			haveAny = true
		}
		if pair.IsMinCost {
			break
		}
	}

	if trBest, ok := m.tr.Solution(); ok {
		trCost := m.tr.Cost()
		if !haveAny || trCost < best.Cost {
			best = annealkit.Pair[T]{Solution: trBest, Cost: trCost, IsMinCost: m.tr.DidFindBest()}
			haveAny = true
		}
	}

	return best, haveAny, nil
}

// Split returns an independent Multistarter with a split inner search and
// a split restart schedule, sharing no mutable state with the original
// (a fresh tracker, per the inner search's own Split semantics).
func (m *Multistarter[T]) Split() annealkit.Metaheuristic[T] {
	splitInner := m.inner.Split()
	return &Multistarter[T]{
		inner:    splitInner,
		schedule: m.schedule.Split(),
		tr:       splitInner.Tracker(),
	}
}
