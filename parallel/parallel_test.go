package parallel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/restart"
	"github.com/katalvlaran/annealkit/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intCandidate struct{ v int }

func (c intCandidate) Clone() intCandidate { return c }

type trivialIntProblem struct{}

func (trivialIntProblem) Cost(c intCandidate) float64  { return float64(c.v) }
func (trivialIntProblem) Value(c intCandidate) float64 { return float64(c.v) }
func (trivialIntProblem) IsMinCost(cost float64) bool  { return cost == 0 }
func (trivialIntProblem) MinCost() (float64, bool)     { return 0, true }

// scriptedWorker is a minimal Metaheuristic stub: its Optimize counts
// iterations, polling the shared tracker's stop flag exactly once per
// simulated iteration (mirroring the real driver's §4.4 step 5a check),
// and optionally sets found-best at a scripted iteration to exercise the
// parallel short-circuit property (§8 invariant 7 / scenario 5).
type scriptedWorker struct {
	problem       annealkit.Problem[intCandidate]
	tr            *tracker.ProgressTracker[intCandidate]
	setsFoundAt   int // 0 disables
	totalEvals    int64
	pollsBetween  time.Duration
}

func newScriptedWorker(tr *tracker.ProgressTracker[intCandidate], setsFoundAt int) *scriptedWorker {
	return &scriptedWorker{problem: trivialIntProblem{}, tr: tr, setsFoundAt: setsFoundAt}
}

func (w *scriptedWorker) Problem() annealkit.Problem[intCandidate] { return w.problem }
func (w *scriptedWorker) Tracker() *tracker.ProgressTracker[intCandidate] { return w.tr }
func (w *scriptedWorker) SetTracker(tr *tracker.ProgressTracker[intCandidate]) { w.tr = tr }
func (w *scriptedWorker) TotalRunLength() int64 { return atomic.LoadInt64(&w.totalEvals) }

func (w *scriptedWorker) Optimize(maxEvals int) (annealkit.Pair[intCandidate], bool, error) {
	var consumed int
	for i := 1; i <= maxEvals; i++ {
		if w.tr.IsStopped() {
			break
		}
		consumed = i
		if w.setsFoundAt != 0 && i == w.setsFoundAt {
			w.tr.Update(0, intCandidate{v: 0}, true)
		}
		if w.pollsBetween > 0 {
			time.Sleep(w.pollsBetween)
		}
	}
	atomic.AddInt64(&w.totalEvals, int64(consumed))
	return annealkit.Pair[intCandidate]{Solution: intCandidate{v: consumed}, Cost: float64(consumed)}, true, nil
}

func (w *scriptedWorker) Split() annealkit.Metaheuristic[intCandidate] {
	return newScriptedWorker(tracker.New[intCandidate](), w.setsFoundAt)
}

func TestParallelMetaheuristicReturnsLowestCostAcrossWorkers(t *testing.T) {
	tr := tracker.New[intCandidate]()
	template := newScriptedWorker(tr, 0)
	m := NewParallelMetaheuristic[intCandidate](template, 4)

	pair, ran, err := m.Optimize(10)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.GreaterOrEqual(t, pair.Cost, 0.0)
}

// TestParallelMetaheuristicShortCircuitsOnFoundBest is §8 scenario 5 /
// invariant 7: one worker sets found-best at iteration 100 of a
// 1000-iteration budget; every peer must observe the tracker's stop flag
// and return within a bounded number of extra iterations.
func TestParallelMetaheuristicShortCircuitsOnFoundBest(t *testing.T) {
	tr := tracker.New[intCandidate]()
	workers := []annealkit.Metaheuristic[intCandidate]{
		newScriptedWorker(tr, 100), // this worker sets found-best at iteration 100
		newScriptedWorker(tr, 0),
		newScriptedWorker(tr, 0),
	}
	m := NewParallelMetaheuristicFromWorkers[intCandidate](workers)

	_, ran, err := m.Optimize(1000)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.True(t, tr.DidFindBest())

	for _, w := range workers {
		assert.LessOrEqual(t, w.TotalRunLength(), int64(101))
	}
}

func TestParallelMetaheuristicRejectsConstructionWithMismatchedTrackers(t *testing.T) {
	workers := []annealkit.Metaheuristic[intCandidate]{
		newScriptedWorker(tracker.New[intCandidate](), 0),
		newScriptedWorker(tracker.New[intCandidate](), 0),
	}
	assert.Panics(t, func() {
		NewParallelMetaheuristicFromWorkers[intCandidate](workers)
	})
}

func TestParallelMetaheuristicOptimizeFailsAfterClose(t *testing.T) {
	tr := tracker.New[intCandidate]()
	m := NewParallelMetaheuristic[intCandidate](newScriptedWorker(tr, 0), 2)
	m.Close()

	_, ran, err := m.Optimize(10)
	assert.False(t, ran)
	assert.ErrorIs(t, err, annealkit.ErrClosed)
}

func TestParallelMetaheuristicSplitOfClosedPoolStaysClosed(t *testing.T) {
	tr := tracker.New[intCandidate]()
	m := NewParallelMetaheuristic[intCandidate](newScriptedWorker(tr, 0), 2)
	m.Close()

	split := m.Split().(*ParallelMetaheuristic[intCandidate])
	_, ran, err := split.Optimize(10)
	assert.False(t, ran)
	assert.ErrorIs(t, err, annealkit.ErrClosed)
}

func TestParallelMultistarterDelegatesToInnerMultistarters(t *testing.T) {
	tr := tracker.New[intCandidate]()
	innerSearch := newScriptedWorker(tr, 0)
	template := restart.New[intCandidate](innerSearch, restart.NewConstantSchedule(5))

	m := NewParallelMultistarter[intCandidate](template, 3)
	pair, ran, err := m.Optimize(4)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.GreaterOrEqual(t, pair.Cost, 0.0)
}

func TestTimedParallelMultistarterStopsAfterConfiguredTicksAndRecordsHistory(t *testing.T) {
	tr := tracker.New[intCandidate]()
	innerSearch := &sleepyWorker{scriptedWorker: *newScriptedWorker(tr, 0)}
	template := restart.New[intCandidate](innerSearch, restart.NewConstantSchedule(1_000_000))

	m := NewTimedParallelMultistarter[intCandidate](template, 2, WithTimeUnit[intCandidate](20*time.Millisecond))

	start := time.Now()
	_, ran, err := m.Optimize(3)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, ran)
	assert.True(t, tr.IsStopped())
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)

	history := m.GetSearchHistory()
	assert.NotEmpty(t, history)
}

// sleepyWorker is a scriptedWorker whose Optimize blocks until the
// tracker is stopped, simulating a long-running inner search so the
// timed orchestrator's ticker-driven stop is what ends the run.
type sleepyWorker struct {
	scriptedWorker
}

func (w *sleepyWorker) Optimize(maxEvals int) (annealkit.Pair[intCandidate], bool, error) {
	for !w.tr.IsStopped() {
		time.Sleep(time.Millisecond)
	}
	return annealkit.Pair[intCandidate]{Solution: intCandidate{v: 1}, Cost: 1}, true, nil
}

func (w *sleepyWorker) Split() annealkit.Metaheuristic[intCandidate] {
	return &sleepyWorker{scriptedWorker: *newScriptedWorker(tracker.New[intCandidate](), 0)}
}
