package gameoflife

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cell-society/internal/core"
)

func newManager(t *testing.T, grid [][]int, topo core.TopologyConfig) *Manager {
	t.Helper()
	m := New()
	require.NoError(t, m.Initialize(core.Config{Type: Name, Initial: grid, Topology: topo}))
	return m
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	}
	horizontal := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	m := newManager(t, vertical, core.TopologyConfig{})

	m.Step()
	assert.Equal(t, horizontal, core.Ordinals(m.States()))
	assert.False(t, m.IsStable())

	m.Step()
	assert.Equal(t, vertical, core.Ordinals(m.States()))
	assert.Equal(t, 2, m.Generation())
}

func TestIsolatedCellDiesAndStabilizes(t *testing.T) {
	m := newManager(t, [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, core.TopologyConfig{})
	assert.False(t, m.IsStable())

	m.Step()
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, core.Ordinals(m.States()))
	assert.True(t, m.IsStable())
}

func TestThinToroidalRowDoesNotCountItself(t *testing.T) {
	m := newManager(t, [][]int{{0, 1, 0, 0, 0}}, core.TopologyConfig{Edge: "toroidal"})
	assert.False(t, m.IsStable())

	m.Step()
	assert.Equal(t, [][]int{{0, 0, 0, 0, 0}}, core.Ordinals(m.States()))
	assert.True(t, m.IsStable())
}

func TestTwoByTwoTorus(t *testing.T) {
	full := newManager(t, [][]int{{1, 1}, {1, 1}}, core.TopologyConfig{Edge: "toroidal"})
	assert.True(t, full.IsStable())
	full.Step()
	assert.Equal(t, [][]int{{1, 1}, {1, 1}}, core.Ordinals(full.States()))

	lone := newManager(t, [][]int{{1, 0}, {0, 0}}, core.TopologyConfig{Edge: "toroidal"})
	lone.Step()
	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, core.Ordinals(lone.States()))
}

func TestBlockIsStill(t *testing.T) {
	block := [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	}
	m := newManager(t, block, core.TopologyConfig{Edge: "toroidal"})
	assert.True(t, m.IsStable())
	m.Step()
	assert.Equal(t, block, core.Ordinals(m.States()))
}

func TestSnapshotRoundTrip(t *testing.T) {
	grid := [][]int{{1, 0, 1}, {0, 1, 0}}
	m := newManager(t, grid, core.TopologyConfig{})
	assert.Equal(t, grid, core.Ordinals(m.States()))
	assert.Equal(t, core.Size{Rows: 2, Cols: 3}, m.Size())
	colors := m.Colors()
	assert.Equal(t, Alive.Color(), colors[0][0])
	assert.Equal(t, Dead.Color(), colors[0][1])
}

func TestInvalidInitialState(t *testing.T) {
	m := New()
	err := m.Initialize(core.Config{Initial: [][]int{{0, 2}}})
	var cfgErr *core.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "invalid initial state 2")
}

func TestRandomDeterministic(t *testing.T) {
	cfg := core.Config{Random: &core.RandomGrid{Width: 12, Height: 9}, Seed: 99}
	a, b := New(), New()
	require.NoError(t, a.Initialize(cfg))
	require.NoError(t, b.Initialize(cfg))
	for i := 0; i < 5; i++ {
		a.Step()
		a.IsStable()
		b.Step()
	}
	assert.Equal(t, core.Ordinals(a.States()), core.Ordinals(b.States()))
}
