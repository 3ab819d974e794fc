// Package fire implements forest fire spread.
package fire

import (
	"image/color"

	"cell-society/internal/core"
)

// Name is the registry identifier.
const Name = "Fire"

// Cell is a fire model cell.
type Cell struct {
	core.Buffered[State]
}

// Clone returns an independent copy.
func (c *Cell) Clone() Cell { return *c }

// Color returns the display color of the committed state.
func (c *Cell) Color() color.NRGBA { return c.State().Color() }

// Manager runs the fire model.
type Manager struct {
	core.Engine[Cell, *Cell]
	params Params
}

// New returns an uninitialized manager.
func New() *Manager { return &Manager{params: DefaultParams()} }

// Name returns the simulation identifier.
func (m *Manager) Name() string { return Name }

// Initialize builds the grid from cfg. Random mode picks states uniformly.
func (m *Manager) Initialize(cfg core.Config) error {
	m.params = FromParams(cfg.Params)
	rng := core.NewRNG(cfg.Seed)
	cells, err := core.BuildCells(cfg, int(numStates),
		func(v int) Cell { return Cell{core.NewBuffered(State(v))} },
		func() Cell { return Cell{core.NewBuffered(State(rng.IntN(int(numStates))))} },
	)
	if err != nil {
		return err
	}
	def := core.Topology{Edge: core.EdgeFinite, Neighbors: core.Cardinal}
	return m.Attach(Name, cfg, def, cells, m, rng)
}

// Parameters reports the resolved parameters.
func (m *Manager) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Fire",
		Params: []core.Parameter{core.FloatParam("probCatch", "Catch probability", m.params.ProbCatch)},
	}}}
}

// Stage burns out fires and spreads them to trees.
func (m *Manager) Stage(g *core.Grid[Cell], pos core.Position, rng *core.RNG) {
	c := g.At(pos)
	if c.State() != Tree {
		c.Stage(Empty)
		return
	}
	for _, n := range g.NeighborSet(pos) {
		if g.At(n).State() == Burning && rng.Chance(m.params.ProbCatch) {
			c.Stage(Burning)
			return
		}
	}
	c.Stage(Tree)
}

func init() {
	core.Register(Name, func() core.Manager { return New() })
}
