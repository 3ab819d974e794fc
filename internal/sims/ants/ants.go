// Package ants implements pheromone-guided foraging ants.
//
// A cell holds any number of ants plus food and nest pheromone levels. Ants
// never change the cell they leave; they are appended to the incoming list
// of their destination, and pheromone drops merge into the destination's
// next levels. Commit swaps the buffers in and derives the cell state.
package ants

import (
	"cmp"
	"image/color"
	"slices"

	"cell-society/internal/core"
)

// Name is the registry identifier.
const Name = "ForagingAnts"

const (
	sourcePheromone = 10000.0
	gradientPenalty = 2.0
	acceptance      = 0.5
)

// AntInfo is the record carried by a single ant.
type AntInfo struct {
	Age     int
	HasFood bool
}

// Levels are a cell's pheromone concentrations.
type Levels struct {
	Food float64
	Nest float64
}

func (l Levels) of(food bool) float64 {
	if food {
		return l.Food
	}
	return l.Nest
}

func (l Levels) evaporate(ratio float64) Levels {
	k := 1 - ratio
	return Levels{Food: l.Food * k, Nest: l.Nest * k}
}

// Cell is a foraging ants cell. site is Food or Nest for fixed sources and
// Pheromone for open ground.
type Cell struct {
	core.Buffered[State]
	site    State
	maxAnts int

	ants []AntInfo
	pher Levels

	incoming []AntInfo
	nextPher Levels
}

// Ants returns the committed ants. The slice must not be modified.
func (c *Cell) Ants() []AntInfo { return c.ants }

// Levels returns the committed pheromone concentrations.
func (c *Cell) Levels() Levels { return c.pher }

// Clone returns a deep copy.
func (c *Cell) Clone() Cell {
	out := *c
	out.ants = slices.Clone(c.ants)
	out.incoming = slices.Clone(c.incoming)
	return out
}

// Color shades ant cells by crowding.
func (c *Cell) Color() color.NRGBA {
	col := c.State().Color()
	if c.State() == Ant && c.maxAnts > 0 {
		ratio := min(float64(len(c.ants))/float64(c.maxAnts), 1)
		col.A = uint8(ratio * 255)
	}
	return col
}

// Commit moves the incoming ants and merged pheromone in and settles the
// state.
func (c *Cell) Commit() {
	c.ants, c.incoming = c.incoming, c.ants[:0]
	c.pher = c.nextPher
	c.Stage(c.settle())
	c.Buffered.Commit()
}

func (c *Cell) settle() State {
	switch {
	case c.site != Pheromone:
		return c.site
	case len(c.ants) > 0:
		return Ant
	}
	return Pheromone
}

// full reports whether the cell turns away further ants this generation.
// Sources never fill up.
func (c *Cell) full() bool {
	return c.site == Pheromone && len(c.ants)+len(c.incoming) >= c.maxAnts
}

// Manager runs the foraging ants model.
type Manager struct {
	core.Engine[Cell, *Cell]
	params Params
}

// New returns an uninitialized manager.
func New() *Manager { return &Manager{params: DefaultParams()} }

// Name returns the simulation identifier.
func (m *Manager) Name() string { return Name }

// Parameters reports the resolved parameters.
func (m *Manager) Parameters() core.ParameterSnapshot { return m.params.snapshot() }

// Initialize builds the grid from cfg. Nests start with the configured
// population and ANT cells with a single ant.
func (m *Manager) Initialize(cfg core.Config) error {
	m.params = FromParams(cfg.Params)
	rng := core.NewRNG(cfg.Seed)
	cells, err := core.BuildCells(cfg, int(numStates),
		func(v int) Cell { return m.newCell(State(v)) },
		func() Cell { return m.newCell(State(rng.Weighted(randomWeights[:]))) },
	)
	if err != nil {
		return err
	}
	def := core.Topology{Edge: core.EdgeFinite, Neighbors: core.Moore}
	return m.Attach(Name, cfg, def, cells, m, rng)
}

func (m *Manager) newCell(s State) Cell {
	c := Cell{Buffered: core.NewBuffered(s), site: Pheromone, maxAnts: m.params.MaxAnts}
	switch s {
	case Food:
		c.site = Food
		c.pher.Food = sourcePheromone
	case Nest:
		c.site = Nest
		c.pher.Nest = sourcePheromone
		c.ants = make([]AntInfo, m.params.NestPopulation)
	case Ant:
		c.ants = []AntInfo{{}}
	}
	return c
}

// Prepare tops up the sources, evaporates every cell into its next levels
// and clears the incoming buffers.
func (m *Manager) Prepare(g *core.Grid[Cell], _ *core.RNG) {
	for c := range g.All() {
		switch c.site {
		case Food:
			c.pher.Food = sourcePheromone
		case Nest:
			c.pher.Nest = sourcePheromone
		}
		c.nextPher = c.pher.evaporate(m.params.EvapRatio)
		c.incoming = c.incoming[:0]
	}
}

// Stage ages and moves every ant resident at pos. Nests also hatch one ant.
func (m *Manager) Stage(g *core.Grid[Cell], pos core.Position, rng *core.RNG) {
	c := g.At(pos)
	neighbors := g.NeighborSet(pos)
	for _, ant := range c.ants {
		ant.Age++
		if ant.Age > m.params.AntLifetime {
			continue
		}
		target, ok := m.choose(g, neighbors, ant, rng)
		if !ok {
			c.incoming = append(c.incoming, ant)
			continue
		}
		tc := g.At(target)
		tc.incoming = append(tc.incoming, arrive(ant, trail(g, pos, neighbors, ant.HasFood), tc))
	}
	if c.site == Nest {
		c.incoming = append(c.incoming, AntInfo{})
	}
}

// choose walks the neighbors from the strongest guiding trail down,
// accepting each with a probability that halves after every refusal.
// Ants carrying food follow the nest trail; others follow the food trail.
func (m *Manager) choose(g *core.Grid[Cell], neighbors []core.Position, ant AntInfo, rng *core.RNG) (core.Position, bool) {
	ranked := rankByTrail(g, neighbors, !ant.HasFood)
	p := acceptance
	for _, n := range ranked {
		if g.At(n).full() {
			continue
		}
		if rng.Chance(p) {
			return n, true
		}
		p /= 2
	}
	return core.Position{}, false
}

// rankByTrail orders positions by descending food or nest pheromone. Ties
// keep neighbor order.
func rankByTrail(g *core.Grid[Cell], neighbors []core.Position, food bool) []core.Position {
	ranked := slices.Clone(neighbors)
	slices.SortStableFunc(ranked, func(a, b core.Position) int {
		return cmp.Compare(g.At(b).pher.of(food), g.At(a).pher.of(food))
	})
	return ranked
}

// trail is the strongest level, around and including pos, of the pheromone
// an ant lays: food pheromone when carrying food, nest pheromone otherwise.
func trail(g *core.Grid[Cell], pos core.Position, neighbors []core.Position, hasFood bool) float64 {
	best := g.At(pos).pher.of(hasFood)
	for _, n := range neighbors {
		best = max(best, g.At(n).pher.of(hasFood))
	}
	return best
}

// arrive lays pheromone on the destination and updates the food flag.
func arrive(ant AntInfo, strength float64, dest *Cell) AntInfo {
	drop := strength - gradientPenalty
	if ant.HasFood {
		dest.nextPher.Food = max(dest.nextPher.Food, drop)
	} else {
		dest.nextPher.Nest = max(dest.nextPher.Nest, drop)
	}
	switch dest.site {
	case Food:
		ant.HasFood = true
	case Nest:
		ant.HasFood = false
	}
	return ant
}

// Stable reports whether no ant is alive anywhere.
func (m *Manager) Stable(g *core.Grid[Cell]) bool {
	for c := range g.All() {
		if len(c.ants) > 0 {
			return false
		}
	}
	return true
}

func init() {
	core.Register(Name, func() core.Manager { return New() })
}
