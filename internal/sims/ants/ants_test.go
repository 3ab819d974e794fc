package ants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cell-society/internal/core"
)

func newManager(t *testing.T, params core.Params, initial [][]int) *Manager {
	t.Helper()
	m := New()
	require.NoError(t, m.Initialize(core.Config{Params: params, Initial: initial, Seed: 2}))
	return m
}

func totalAnts(m *Manager) int {
	n := 0
	for c := range m.Grid().All() {
		n += len(c.Ants())
	}
	return n
}

func TestNestStartsPopulatedAndHatches(t *testing.T) {
	m := newManager(t, core.Params{"nestPopulation": 3}, [][]int{{3}})
	assert.Equal(t, 3, totalAnts(m))
	m.Step()
	assert.Equal(t, 4, totalAnts(m))
	assert.Equal(t, [][]int{{3}}, core.Ordinals(m.States()))
	assert.False(t, m.IsStable())
}

func TestAntsDieOfOldAge(t *testing.T) {
	m := newManager(t, core.Params{"antLifetime": 0}, [][]int{{0, 1}})
	assert.False(t, m.IsStable())
	m.Step()
	assert.Zero(t, totalAnts(m))
	assert.Equal(t, [][]int{{1, 1}}, core.Ordinals(m.States()))
	assert.True(t, m.IsStable())
}

func TestAntsAreConservedWithoutNestsOrDeaths(t *testing.T) {
	m := newManager(t, nil, [][]int{
		{0, 1, 1, 1},
		{1, 0, 1, 2},
		{1, 1, 0, 1},
	})
	for i := 0; i < 25; i++ {
		m.Step()
		require.Equal(t, 3, totalAnts(m), "generation %d", m.Generation())
	}
	counts := core.Count(m.States())
	assert.Equal(t, 1, counts["FOODSOURCE"])
	assert.LessOrEqual(t, counts["ANT"], 3)
}

func TestPheromoneEvaporates(t *testing.T) {
	m := newManager(t, core.Params{"evapRatio": 0.1}, [][]int{{1}})
	m.Grid().At(core.Position{}).pher = Levels{Food: 100, Nest: 50}
	m.Step()
	got := m.Grid().At(core.Position{}).Levels()
	assert.InDelta(t, 90, got.Food, 1e-9)
	assert.InDelta(t, 45, got.Nest, 1e-9)
}

func TestSourcesReplenish(t *testing.T) {
	m := newManager(t, core.Params{"nestPopulation": 0}, [][]int{{2, 1, 1, 3}})
	m.Step()
	m.Step()
	assert.InDelta(t, sourcePheromone*0.99, m.Grid().At(core.Position{Col: 0}).Levels().Food, 1e-6)
	assert.InDelta(t, sourcePheromone*0.99, m.Grid().At(core.Position{Col: 3}).Levels().Nest, 1e-6)
}

func TestArriveLaysTrailAndTogglesFood(t *testing.T) {
	food := &Cell{site: Food}
	got := arrive(AntInfo{}, 500, food)
	assert.True(t, got.HasFood)
	assert.InDelta(t, 498, food.nextPher.Nest, 1e-9)
	assert.Zero(t, food.nextPher.Food)

	nest := &Cell{site: Nest, nextPher: Levels{Food: 900}}
	got = arrive(AntInfo{HasFood: true}, 800, nest)
	assert.False(t, got.HasFood)
	assert.InDelta(t, 900, nest.nextPher.Food, 1e-9, "weaker drops never lower a level")

	ground := &Cell{site: Pheromone}
	got = arrive(AntInfo{HasFood: true}, 10, ground)
	assert.True(t, got.HasFood)
	assert.InDelta(t, 8, ground.nextPher.Food, 1e-9)
}

func TestRankByTrailIsStableDescending(t *testing.T) {
	g, err := core.NewGrid([][]Cell{{
		{pher: Levels{Food: 1}},
		{pher: Levels{Food: 5}},
		{pher: Levels{Food: 1, Nest: 7}},
		{pher: Levels{Food: 5}},
	}}, core.Topology{Neighbors: core.Moore})
	require.NoError(t, err)
	in := []core.Position{{Col: 0}, {Col: 1}, {Col: 2}, {Col: 3}}

	assert.Equal(t, []core.Position{{Col: 1}, {Col: 3}, {Col: 0}, {Col: 2}}, rankByTrail(g, in, true))
	assert.Equal(t, []core.Position{{Col: 2}, {Col: 0}, {Col: 1}, {Col: 3}}, rankByTrail(g, in, false))
	assert.Equal(t, []core.Position{{Col: 0}, {Col: 1}, {Col: 2}, {Col: 3}}, in)
}

func TestFullCellsAreSkipped(t *testing.T) {
	m := newManager(t, core.Params{"maxAnts": 1}, [][]int{{0, 0}})
	g := m.Grid()
	for i := 0; i < 10; i++ {
		m.Step()
		for c := range g.All() {
			assert.LessOrEqual(t, len(c.Ants()), 1)
		}
	}
	assert.Equal(t, 2, totalAnts(m))
}

func TestAntColorTracksCrowding(t *testing.T) {
	c := Cell{Buffered: core.NewBuffered(Ant), maxAnts: 4, ants: make([]AntInfo, 2)}
	assert.Equal(t, uint8(127), c.Color().A)
	c.ants = make([]AntInfo, 9)
	assert.Equal(t, uint8(255), c.Color().A)
}

func TestRandomGridIsDeterministic(t *testing.T) {
	cfg := core.Config{Random: &core.RandomGrid{Width: 20, Height: 20}, Seed: 8}
	a, b := New(), New()
	require.NoError(t, a.Initialize(cfg))
	require.NoError(t, b.Initialize(cfg))
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, core.Ordinals(a.States()), core.Ordinals(b.States()))
	assert.Equal(t, totalAnts(a), totalAnts(b))
	assert.Equal(t, a.Colors(), b.Colors())
}
