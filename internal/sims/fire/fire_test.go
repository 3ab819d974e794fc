package fire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cell-society/internal/core"
)

func TestCertainIgnitionSpreadsOneRing(t *testing.T) {
	m := New()
	require.NoError(t, m.Initialize(core.Config{
		Params: core.Params{"probCatch": 1.0},
		Initial: [][]int{
			{1, 1, 1},
			{1, 2, 1},
			{1, 1, 1},
		},
	}))

	m.Step()
	want := [][]int{
		{1, 2, 1},
		{2, 0, 2},
		{1, 2, 1},
	}
	assert.Equal(t, want, core.Ordinals(m.States()))

	m.Step()
	want = [][]int{
		{2, 0, 2},
		{0, 0, 0},
		{2, 0, 2},
	}
	assert.Equal(t, want, core.Ordinals(m.States()))
}

func TestZeroCatchProbabilityNeverSpreads(t *testing.T) {
	m := New()
	require.NoError(t, m.Initialize(core.Config{
		Params:  core.Params{"probCatch": 0},
		Initial: [][]int{{1, 2, 1}},
	}))
	m.Step()
	assert.Equal(t, [][]int{{1, 0, 1}}, core.Ordinals(m.States()))
	assert.True(t, m.IsStable())
}

func TestBurningCellIsUnstable(t *testing.T) {
	m := New()
	require.NoError(t, m.Initialize(core.Config{Initial: [][]int{{0, 2}}}))
	assert.False(t, m.IsStable())
	assert.Equal(t, 0, m.Generation())
}

func TestDefaultsAndOverrides(t *testing.T) {
	assert.Equal(t, 0.5, FromParams(nil).ProbCatch)
	assert.Equal(t, 0.9, FromParams(core.Params{"probCatch": 0.9}).ProbCatch)
}

func TestToroidalSpreadWrapsEdges(t *testing.T) {
	m := New()
	require.NoError(t, m.Initialize(core.Config{
		Params:   core.Params{"probCatch": 1.0},
		Initial:  [][]int{{2, 1, 1, 1}},
		Topology: core.TopologyConfig{Edge: "toroidal"},
	}))
	m.Step()
	assert.Equal(t, [][]int{{0, 2, 1, 2}}, core.Ordinals(m.States()))
}
