package annealsa

import (
	"sync"
	"testing"

	"github.com/katalvlaran/annealkit"
	"github.com/katalvlaran/annealkit/schedule"
	"github.com/katalvlaran/annealkit/tracker"
	"github.com/katalvlaran/annealkit/xrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scalar is a minimal candidate type: a single int whose cost is its
// absolute value, with a known minimum at zero. It exercises the driver
// without needing a combinatorial problem.
type scalar struct{ v int }

func (s scalar) Clone() scalar { return s }

type scalarProblem struct{ min int }

func (p scalarProblem) Cost(s scalar) float64  { return absF(s.v) }
func (p scalarProblem) Value(s scalar) float64 { return absF(s.v) }
func (p scalarProblem) IsMinCost(cost float64) bool {
	return cost == float64(p.min)
}
func (p scalarProblem) MinCost() (float64, bool) { return float64(p.min), true }

func absF(v int) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}

// scalarMutation steps v by +1 or -1, chosen by its own rng, remembering
// the displacement for Undo.
type scalarMutation struct {
	rng  *xrand.Source
	last int
}

func (m *scalarMutation) Mutate(t *scalar) {
	step := 1
	if m.rng.Intn(2) == 0 {
		step = -1
	}
	m.last = step
	t.v += step
}

func (m *scalarMutation) Undo(t *scalar) {
	t.v -= m.last
}

func (m *scalarMutation) Split() annealkit.Mutation[scalar] {
	return &scalarMutation{rng: m.rng.Split()}
}

type scalarInit struct{ start int }

func (i scalarInit) CreateCandidate() scalar          { return scalar{v: i.start} }
func (i scalarInit) Split() annealkit.Initializer[scalar] { return i }

func newTestDriver(start int) *Driver[scalar] {
	return New[scalar](
		scalarProblem{min: 0},
		&scalarMutation{rng: xrand.New(1)},
		scalarInit{start: start},
		schedule.NewExponentialCooling(10, 0.9, 5, xrand.New(2)),
		nil,
	)
}

func TestOptimizeReturnsImmediatelyWhenStartIsAlreadyOptimal(t *testing.T) {
	d := newTestDriver(0)
	pair, ran, err := d.Optimize(1000)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.True(t, pair.IsMinCost)
	assert.Equal(t, 0.0, pair.Cost)
	assert.Equal(t, int64(1), d.TotalRunLength())
}

func TestOptimizeShortCircuitsWhenTrackerAlreadyStopped(t *testing.T) {
	d := newTestDriver(5)
	d.Tracker().Stop()

	pair, ran, err := d.Optimize(100)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, scalar{}, pair.Solution)
	assert.Equal(t, int64(0), d.TotalRunLength())
}

func TestOptimizeShortCircuitsWhenFoundBestAlreadySet(t *testing.T) {
	tr := tracker.New[scalar]()
	tr.Update(0, scalar{v: 0}, true)

	d := New[scalar](
		scalarProblem{min: 0},
		&scalarMutation{rng: xrand.New(1)},
		scalarInit{start: 7},
		schedule.NewExponentialCooling(10, 0.9, 5, xrand.New(2)),
		tr,
	)

	_, ran, err := d.Optimize(100)
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestOptimizeRejectsNonPositiveMaxEvals(t *testing.T) {
	d := newTestDriver(5)
	_, ran, err := d.Optimize(0)
	assert.Error(t, err)
	assert.False(t, ran)
}

func TestOptimizeRespectsCooperativeStopMidRun(t *testing.T) {
	d := newTestDriver(1000)

	var stopOnce sync.Once
	d.mutation = &stoppingMutation{
		inner: &scalarMutation{rng: xrand.New(3)},
		after: 5,
		stop:  func() { stopOnce.Do(d.Tracker().Stop) },
	}

	pair, ran, err := d.Optimize(1_000_000)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.LessOrEqual(t, d.TotalRunLength(), int64(6))
	_ = pair
}

// stoppingMutation wraps another mutation and triggers a callback after a
// fixed number of Mutate calls, simulating a peer worker that has set the
// tracker's cooperative-stop flag partway through the run.
type stoppingMutation struct {
	inner annealkit.UndoableMutation[scalar]
	after int
	count int
	stop  func()
}

func (m *stoppingMutation) Mutate(t *scalar) {
	m.count++
	m.inner.Mutate(t)
	if m.count >= m.after {
		m.stop()
	}
}

func (m *stoppingMutation) Undo(t *scalar) { m.inner.Undo(t) }

func (m *stoppingMutation) Split() annealkit.Mutation[scalar] {
	return &stoppingMutation{inner: m.inner.Split().(annealkit.UndoableMutation[scalar]), after: m.after, stop: m.stop}
}

func TestReoptimizeStartsFromTrackerBest(t *testing.T) {
	tr := tracker.New[scalar]()
	tr.Update(3, scalar{v: 3}, false)

	d := New[scalar](
		scalarProblem{min: 0},
		&scalarMutation{rng: xrand.New(1)},
		scalarInit{start: 999},
		schedule.NewExponentialCooling(10, 0.9, 5, xrand.New(2)),
		tr,
	)

	_, ran, err := d.Reoptimize(50)
	require.NoError(t, err)
	assert.True(t, ran)
	// Tracker's best must never have worsened past its starting cost of 3.
	assert.LessOrEqual(t, tr.Cost(), 3.0)
}

func TestTotalRunLengthAccumulatesAcrossCalls(t *testing.T) {
	d := newTestDriver(50)
	_, _, err := d.Optimize(10)
	require.NoError(t, err)
	first := d.TotalRunLength()
	assert.Equal(t, int64(10), first)

	_, _, err = d.Reoptimize(10)
	require.NoError(t, err)
	assert.Equal(t, int64(20), d.TotalRunLength())
}

func TestSplitProducesIndependentDriverWithFreshTracker(t *testing.T) {
	d := newTestDriver(50)
	split := d.Split().(*Driver[scalar])

	assert.NotSame(t, d.Tracker(), split.Tracker())

	_, _, err := split.Optimize(5)
	require.NoError(t, err)
	// The parent's tracker must be unaffected by the split's run.
	assert.Equal(t, tracker.New[scalar]().Cost(), d.Tracker().Cost())
}
