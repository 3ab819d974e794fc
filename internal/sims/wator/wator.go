// Package wator implements the Wa-Tor predator-prey model.
//
// Every prey and predator carries a Fish record. Records move with their
// owner: whenever a cell is staged, the record it will hold next generation
// is staged alongside the state.
package wator

import (
	"image/color"

	"cell-society/internal/core"
)

// Name is the registry identifier.
const Name = "Wator"

// Fish is the lifecycle record of a prey or predator.
type Fish struct {
	// Breed counts down to the next reproduction.
	Breed int

	// SinceAte counts generations since a predator last fed.
	SinceAte int
}

// Cell is a Wa-Tor cell.
type Cell struct {
	core.Buffered[State]
	fish     Fish
	nextFish Fish
}

// Fish returns the committed record.
func (c *Cell) Fish() Fish { return c.fish }

func (c *Cell) Clone() Cell        { return *c }
func (c *Cell) Color() color.NRGBA { return c.State().Color() }

// put stages s together with the record the cell will hold.
func (c *Cell) put(s State, f Fish) {
	c.Stage(s)
	c.nextFish = f
}

// Commit promotes the staged state and record.
func (c *Cell) Commit() {
	if c.Staged() {
		c.fish = c.nextFish
	}
	c.nextFish = Fish{}
	c.Buffered.Commit()
}

// Unchanged also compares the record so aging counts as change.
func (c *Cell) Unchanged() bool {
	return c.Buffered.Unchanged() && (!c.Staged() || c.nextFish == c.fish)
}

// Manager runs the Wa-Tor model.
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
		func(v int) Cell { return m.newCell(State(v)) },
		func() Cell { return m.newCell(State(rng.IntN(int(numStates)))) },
	)
	if err != nil {
		return err
	}
	def := core.Topology{Edge: core.EdgeFinite, Neighbors: core.Cardinal}
	return m.Attach(Name, cfg, def, cells, m, rng)
}

// Parameters reports the resolved parameters.
func (m *Manager) Parameters() core.ParameterSnapshot { return m.params.snapshot() }

func (m *Manager) newCell(s State) Cell {
	return Cell{Buffered: core.NewBuffered(s), fish: m.newborn(s)}
}

func (m *Manager) newborn(s State) Fish {
	switch s {
	case Prey:
		return Fish{Breed: m.params.PreyBreedTime}
	case Predator:
		return Fish{Breed: m.params.PredatorBreedTime}
	}
	return Fish{}
}

// Stage moves, feeds and breeds the fish at pos. Cells already claimed this
// generation (eaten prey, occupied vacancies) are skipped, and empty cells
// are left for movers to claim.
func (m *Manager) Stage(g *core.Grid[Cell], pos core.Position, rng *core.RNG) {
	c := g.At(pos)
	if c.Staged() {
		return
	}
	switch c.State() {
	case Prey:
		m.stagePrey(g, pos, c, rng)
	case Predator:
		m.stagePredator(g, pos, c, rng)
	}
}

func (m *Manager) stagePrey(g *core.Grid[Cell], pos core.Position, c *Cell, rng *core.RNG) {
	f := c.fish
	empty := neighborsIn(g, pos, Empty)
	if len(empty) == 0 {
		f.Breed--
		c.put(Prey, f)
		return
	}
	target := g.At(core.Pick(rng, empty))
	if f.Breed <= 0 {
		c.put(Prey, m.newborn(Prey))
		target.put(Prey, m.newborn(Prey))
		return
	}
	f.Breed--
	target.put(Prey, f)
	c.put(Empty, Fish{})
}

func (m *Manager) stagePredator(g *core.Grid[Cell], pos core.Position, c *Cell, rng *core.RNG) {
	f := c.fish
	if f.SinceAte >= m.params.StarveTime {
		c.put(Empty, Fish{})
		return
	}
	empty := neighborsIn(g, pos, Empty)
	if prey := neighborsIn(g, pos, Prey); len(prey) > 0 {
		g.At(core.Pick(rng, prey)).put(Empty, Fish{})
		f.SinceAte = 0
		if f.Breed <= 0 && len(empty) > 0 {
			g.At(core.Pick(rng, empty)).put(Predator, m.newborn(Predator))
			f.Breed = m.params.PredatorBreedTime
		} else {
			f.Breed--
		}
		c.put(Predator, f)
		return
	}
	f.SinceAte++
	if len(empty) == 0 {
		f.Breed--
		c.put(Predator, f)
		return
	}
	target := g.At(core.Pick(rng, empty))
	if f.Breed <= 0 {
		f.Breed = m.params.PredatorBreedTime
		target.put(Predator, f)
		c.put(Predator, m.newborn(Predator))
		return
	}
	f.Breed--
	target.put(Predator, f)
	c.put(Empty, Fish{})
}

// neighborsIn lists unclaimed neighbors of pos holding s.
func neighborsIn(g *core.Grid[Cell], pos core.Position, s State) []core.Position {
	var out []core.Position
	for _, n := range g.NeighborSet(pos) {
		if nc := g.At(n); nc.State() == s && !nc.Staged() {
			out = append(out, n)
		}
	}
	return out
}

func init() {
	core.Register(Name, func() core.Manager { return New() })
}
