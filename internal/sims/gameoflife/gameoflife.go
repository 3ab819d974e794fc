// Package gameoflife implements Conway's Game of Life.
package gameoflife

import (
	"image/color"

	"cell-society/internal/core"
)

// Name is the registry identifier.
const Name = "GameOfLife"

const reproductionNumber = 3

// Cell is a Game of Life cell.
type Cell struct {
	core.Buffered[State]
}

// Clone returns an independent copy.
func (c *Cell) Clone() Cell { return *c }

// Color returns the display color of the committed state.
func (c *Cell) Color() color.NRGBA { return c.State().Color() }

// Manager runs Game of Life over a grid.
type Manager struct {
	core.Engine[Cell, *Cell]
}

// New returns an uninitialized manager.
func New() *Manager { return &Manager{} }

// Name returns the simulation identifier.
func (m *Manager) Name() string { return Name }

// Initialize builds the grid from cfg. Random mode picks DEAD or ALIVE uniformly.
func (m *Manager) Initialize(cfg core.Config) error {
	rng := core.NewRNG(cfg.Seed)
	cells, err := core.BuildCells(cfg, int(numStates),
		func(v int) Cell { return Cell{core.NewBuffered(State(v))} },
		func() Cell { return Cell{core.NewBuffered(State(rng.IntN(int(numStates))))} },
	)
	if err != nil {
		return err
	}
	def := core.Topology{Edge: core.EdgeFinite, Neighbors: core.Moore}
	return m.Attach(Name, cfg, def, cells, m, rng)
}

// Parameters reports the (empty) parameter set.
func (m *Manager) Parameters() core.ParameterSnapshot { return core.ParameterSnapshot{} }

// Stage applies B3/S23 to the cell at pos.
func (m *Manager) Stage(g *core.Grid[Cell], pos core.Position, _ *core.RNG) {
	c := g.At(pos)
	live := 0
	for _, n := range g.NeighborSet(pos) {
		if g.At(n).State() == Alive {
			live++
		}
	}
	switch {
	case c.State() == Dead && live == reproductionNumber:
		c.Stage(Alive)
	case c.State() == Alive && (live < reproductionNumber-1 || live > reproductionNumber):
		c.Stage(Dead)
	default:
		c.Stage(c.State())
	}
}

func init() {
	core.Register(Name, func() core.Manager { return New() })
}
