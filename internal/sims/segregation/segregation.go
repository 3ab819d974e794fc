// Package segregation implements Schelling's model of residential
// segregation. Dissatisfied residents relocate to a random cell drawn from
// the empty cells of the current generation.
package segregation

import (
	"image/color"

	"cell-society/internal/core"
)

// Name is the registry identifier.
const Name = "Segregation"

// Params holds the tunable values of the segregation model.
type Params struct {
	// Threshold is the minimum share of like neighbors a resident accepts.
	Threshold float64
}

// DefaultParams returns the standard parameters.
func DefaultParams() Params { return Params{Threshold: 0.5} }

// FromParams resolves the named configuration parameters over the defaults.
func FromParams(p core.Params) Params {
	return Params{Threshold: p.Float("threshold", DefaultParams().Threshold)}
}

// Cell is a segregation model cell.
type Cell struct {
	core.Buffered[State]
}

func (c *Cell) Clone() Cell        { return *c }
func (c *Cell) Color() color.NRGBA { return c.State().Color() }

// Manager runs the segregation model.
type Manager struct {
	core.Engine[Cell, *Cell]
	params Params

	// vacant holds the cells that were empty when the generation started and
	// have not been claimed yet.
	vacant []core.Position
}

// New returns an uninitialized manager.
func New() *Manager { return &Manager{params: DefaultParams()} }

// Name returns the simulation identifier.
func (m *Manager) Name() string { return Name }

// Initialize builds the grid from cfg.
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
	def := core.Topology{Edge: core.EdgeFinite, Neighbors: core.Moore}
	return m.Attach(Name, cfg, def, cells, m, rng)
}

// Parameters reports the resolved parameters.
func (m *Manager) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Segregation",
		Params: []core.Parameter{core.FloatParam("threshold", "Satisfaction threshold", m.params.Threshold)},
	}}}
}

// Prepare snapshots the empty cells for this generation.
func (m *Manager) Prepare(g *core.Grid[Cell], _ *core.RNG) {
	m.vacant = m.vacant[:0]
	for pos, c := range g.InOrder() {
		if c.State() == Empty {
			m.vacant = append(m.vacant, pos)
		}
	}
}

// Stage relocates residents whose share of like neighbors is below the
// threshold. Empty cells are only ever written by movers.
func (m *Manager) Stage(g *core.Grid[Cell], pos core.Position, rng *core.RNG) {
	c := g.At(pos)
	s := c.State()
	if s == Empty {
		return
	}
	if likeRatio(g, pos, s) >= m.params.Threshold || len(m.vacant) == 0 {
		c.Stage(s)
		return
	}
	i := rng.IntN(len(m.vacant))
	target := m.vacant[i]
	last := len(m.vacant) - 1
	m.vacant[i] = m.vacant[last]
	m.vacant = m.vacant[:last]

	g.At(target).Stage(s)
	c.Stage(Empty)
}

// likeRatio is the share of occupied neighbors holding s, or 0 when no
// neighbor is occupied.
func likeRatio(g *core.Grid[Cell], pos core.Position, s State) float64 {
	same, occupied := 0, 0
	for _, n := range g.NeighborSet(pos) {
		ns := g.At(n).State()
		if ns == Empty {
			continue
		}
		occupied++
		if ns == s {
			same++
		}
	}
	if occupied == 0 {
		return 0
	}
	return float64(same) / float64(occupied)
}

func init() {
	core.Register(Name, func() core.Manager { return New() })
}
