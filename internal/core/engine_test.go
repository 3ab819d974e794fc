package core

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toggle is a toy model: ON cells switch off, OFF cells next to an ON cell
// switch on with probability half.
type toggle struct {
	Buffered[flag]
}

func (c *toggle) Clone() toggle      { return *c }
func (c *toggle) Color() color.NRGBA { return c.State().Color() }

type toggleRules struct {
	prepared int
}

func (r *toggleRules) Prepare(*Grid[toggle], *RNG) { r.prepared++ }

func (r *toggleRules) Stage(g *Grid[toggle], pos Position, rng *RNG) {
	c := g.At(pos)
	if c.State() == 1 {
		c.Stage(0)
		return
	}
	for _, n := range g.Adjacent(pos, 1) {
		if g.At(n).State() == 1 && rng.Bool() {
			c.Stage(1)
			return
		}
	}
}

type toggleManager struct {
	Engine[toggle, *toggle]
	rules toggleRules
}

func newToggle(t *testing.T, initial [][]int, seed int64) *toggleManager {
	t.Helper()
	cfg := Config{Initial: initial, Seed: seed}
	cells, err := BuildCells(cfg, 2, func(v int) toggle { return toggle{NewBuffered(flag(v))} }, nil)
	require.NoError(t, err)
	m := &toggleManager{}
	require.NoError(t, m.Attach("toggle", cfg, Topology{Neighbors: Cardinal}, cells, &m.rules, NewRNG(seed)))
	return m
}

func TestEngineLifecycle(t *testing.T) {
	var m toggleManager
	assert.False(t, m.Ready())
	assert.False(t, m.IsStable())
	assert.Nil(t, m.States())
	assert.Equal(t, Size{}, m.Size())
	m.Step()
	assert.Zero(t, m.Generation())

	ready := newToggle(t, [][]int{{0, 1, 0}}, 1)
	assert.True(t, ready.Ready())
	assert.Equal(t, Size{Rows: 1, Cols: 3}, ready.Size())
	assert.Equal(t, [][]int{{0, 1, 0}}, Ordinals(ready.States()))
}

func TestEngineStepCommitsAfterStaging(t *testing.T) {
	m := newToggle(t, [][]int{{1, 0, 1}}, 1)
	m.Step()
	got := Ordinals(m.States())
	assert.Equal(t, 0, got[0][0])
	assert.Equal(t, 0, got[0][2])
	assert.Equal(t, 1, m.Generation())
	assert.Equal(t, 1, m.rules.prepared)
}

func TestIsStableRunsOnAClone(t *testing.T) {
	a := newToggle(t, [][]int{{1, 0, 0, 0, 1}, {0, 0, 1, 0, 0}}, 99)
	b := newToggle(t, [][]int{{1, 0, 0, 0, 1}, {0, 0, 1, 0, 0}}, 99)
	before := Ordinals(a.States())
	assert.False(t, a.IsStable())
	assert.Equal(t, before, Ordinals(a.States()))
	assert.Zero(t, a.Generation())

	for i := 0; i < 4; i++ {
		a.IsStable()
		a.Step()
		b.Step()
		assert.Equal(t, Ordinals(b.States()), Ordinals(a.States()))
	}
}

func TestAllOffIsStable(t *testing.T) {
	m := newToggle(t, [][]int{{0, 0}, {0, 0}}, 1)
	assert.True(t, m.IsStable())
	assert.Equal(t, [][]color.NRGBA{{{}, {}}, {{}, {}}}, m.Colors())
}

func TestRegistry(t *testing.T) {
	Register("ToyModel", func() Manager { return &toggleManager{} })
	assert.Contains(t, Sims(), "ToyModel")

	m, err := New("toymodel")
	require.NoError(t, err)
	assert.NotNil(t, m)

	_, err = New("Nonexistent")
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, `configuration error: unknown simulation type "Nonexistent"`, err.Error())
}

func (m *toggleManager) Name() string                { return "ToyModel" }
func (m *toggleManager) Initialize(cfg Config) error { return nil }
