package annealkit_test

import (
	"testing"

	"github.com/katalvlaran/annealkit"
	"github.com/stretchr/testify/require"
)

type countingProblem struct{}

func (countingProblem) CostInt(t int) int            { return t * t }
func (countingProblem) ValueInt(t int) int            { return -t * t }
func (countingProblem) IsMinCostInt(cost int) bool    { return cost == 0 }
func (countingProblem) MinCostInt() (int, bool)       { return 0, true }

func TestAsProblemAdaptsIntCostsToFloat64(t *testing.T) {
	p := annealkit.AsProblem[int](countingProblem{})

	require.Equal(t, 9.0, p.Cost(3))
	require.Equal(t, -9.0, p.Value(3))
	require.False(t, p.IsMinCost(9))
	require.True(t, p.IsMinCost(0))

	min, ok := p.MinCost()
	require.True(t, ok)
	require.Equal(t, 0.0, min)
}
