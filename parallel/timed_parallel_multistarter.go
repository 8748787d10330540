// Package parallel - TimedParallelMultistarter.
//
// Submits each worker with an effectively unbounded run length, then runs
// a channerics-driven ticker that samples the shared tracker once per
// timeUnit and records a history point; after the configured number of
// ticks, or as soon as the tracker's found-best flag is observed, the
// ticker stops the tracker (causing every worker to return at its next
// per-iteration check) and joins the pool.
package parallel

import (
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/restart"
	"github.com/katalvlaran/annealkit/tracker"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// defaultTimeUnit is the default sampling interval, per §4.6.
const defaultTimeUnit = time.Second

// unboundedRunLength is the run length handed to each worker; it stands
// in for "no explicit budget" since the run is bounded by wall-clock time
// via the ticker instead of an evaluation count.
const unboundedRunLength = math.MaxInt32

// HistoryPoint is one sample of the shared tracker's state, taken once
// per timeUnit by the timing coordinator.
type HistoryPoint[T annealkit.Cloner[T]] struct {
	At        time.Time
	Solution  T
	Cost      float64
	IsMinCost bool
	HasBest   bool
}

// TimedParallelMultistarter runs a fixed pool of Multistarter workers for
// a wall-clock budget expressed in ticks of timeUnit, recording the
// tracker's state at every tick.
type TimedParallelMultistarter[T annealkit.Cloner[T]] struct {
	pool     *pool[T]
	timeUnit time.Duration

	mu      sync.Mutex
	history []HistoryPoint[T]
}

// TimedOption configures a TimedParallelMultistarter at construction.
type TimedOption[T annealkit.Cloner[T]] func(*TimedParallelMultistarter[T])

// WithTimeUnit overrides the default one-second sampling interval.
// Panics if unit is below one millisecond, per §6's configuration-knob
// contract (timeUnit >= 1ms).
func WithTimeUnit[T annealkit.Cloner[T]](unit time.Duration) TimedOption[T] {
	return func(m *TimedParallelMultistarter[T]) {
		if unit < time.Millisecond {
			panic("parallel: timeUnit must be >= 1ms")
		}
		m.timeUnit = unit
	}
}

// NewTimedParallelMultistarter builds a TimedParallelMultistarter of
// numThreads workers by splitting template.
func NewTimedParallelMultistarter[T annealkit.Cloner[T]](
	template *restart.Multistarter[T],
	numThreads int,
	opts ...TimedOption[T],
) *TimedParallelMultistarter[T] {
	p, err := newPoolFromTemplate[T](template, numThreads)
	if err != nil {
		panic(err)
	}
	m := &TimedParallelMultistarter[T]{pool: p, timeUnit: defaultTimeUnit}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Problem returns the shared problem.
func (m *TimedParallelMultistarter[T]) Problem() annealkit.Problem[T] { return m.pool.Problem() }

// Tracker returns the shared progress tracker.
func (m *TimedParallelMultistarter[T]) Tracker() *tracker.ProgressTracker[T] { return m.pool.Tracker() }

// SetTracker reattaches every worker in the pool to tr.
func (m *TimedParallelMultistarter[T]) SetTracker(tr *tracker.ProgressTracker[T]) {
	if tr == nil {
		return
	}
	m.pool.tr = tr
	for _, w := range m.pool.workers {
		w.SetTracker(tr)
	}
}

// TotalRunLength returns the sum of every worker's own TotalRunLength.
func (m *TimedParallelMultistarter[T]) TotalRunLength() int64 {
	var total int64
	for _, w := range m.pool.workers {
		total += w.TotalRunLength()
	}
	return total
}

// Close initiates an orderly shutdown of the worker pool.
func (m *TimedParallelMultistarter[T]) Close() { m.pool.Close() }

// GetSearchHistory returns the tracker samples recorded during the most
// recent Optimize call.
func (m *TimedParallelMultistarter[T]) GetSearchHistory() []HistoryPoint[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.history)
}

// Optimize runs every worker's Multistarter for an effectively unbounded
// run length, records one tracker snapshot per timeUnit, and stops the
// tracker (joining every worker) after timeUnits ticks or as soon as the
// tracker's found-best flag is observed.
func (m *TimedParallelMultistarter[T]) Optimize(timeUnits int) (annealkit.Pair[T], bool, error) {
	if m.pool.IsClosed() {
		var zero annealkit.Pair[T]
		return zero, false, annealkit.ErrClosed
	}

	m.mu.Lock()
	m.history = nil
	m.mu.Unlock()

	m.pool.tr.Start()

	group := &errgroup.Group{}
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
				}
				err = nil
			}()
			pair, didRun, _ := w.Optimize(unboundedRunLength)
			results[i] = pair
			ran[i] = didRun
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		group.Wait()
		close(done)
	}()

	ticks := channerics.NewTicker(done, m.timeUnit)
	ticksSeen := 0
	for ticksSeen < timeUnits {
		select {
		case <-done:
			return m.finishLocked(results, ran)
		case <-ticks:
			ticksSeen++
			m.sampleOnce()
			if m.pool.tr.DidFindBest() {
				m.pool.tr.Stop()
				<-done
				return m.finishLocked(results, ran)
			}
		}
	}

	m.pool.tr.Stop()
	<-done
	return m.finishLocked(results, ran)
}

func (m *TimedParallelMultistarter[T]) sampleOnce() {
	solution, cost, isMin, ok := m.pool.tr.CurrentPair()
	point := HistoryPoint[T]{At: time.Now(), Solution: solution, Cost: cost, IsMinCost: isMin, HasBest: ok}
	m.mu.Lock()
	m.history = append(m.history, point)
	m.mu.Unlock()
}

func (m *TimedParallelMultistarter[T]) finishLocked(results []annealkit.Pair[T], ran []bool) (annealkit.Pair[T], bool, error) {
	return bestOf(results, ran)
}

// Split returns an independent TimedParallelMultistarter, closed if the
// source was closed.
func (m *TimedParallelMultistarter[T]) Split() annealkit.Metaheuristic[T] {
	splitWorkersSlice := splitWorkers(m.pool.workers)
	p, err := newPool[T](splitWorkersSlice)
	if err != nil {
		panic(err)
	}
	out := &TimedParallelMultistarter[T]{pool: p, timeUnit: m.timeUnit}
	if m.pool.IsClosed() {
		out.pool.Close()
	}
	return out
}
