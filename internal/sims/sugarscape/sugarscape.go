// Package sugarscape implements the basic and advanced Sugarscape models.
//
// Every cell has a sugar patch; agents move over patches, harvest them and
// pay a metabolism cost each generation. Patches regrow before any agent
// acts. The advanced variant adds aging, a maximum lifespan and sexual
// reproduction.
package sugarscape

import (
	"image/color"

	"cell-society/internal/core"
)

// Registry identifiers.
const (
	BasicName    = "SugarscapeBasic"
	AdvancedName = "SugarscapeAdvanced"
)

// Cell is a Sugarscape cell: a patch, possibly occupied by an agent. A
// staged cell also stages the agent record and patch sugar it will hold.
type Cell struct {
	core.Buffered[State]
	patch PatchInfo
	agent AgentInfo

	nextAgent AgentInfo
	nextSugar int
}

// Agent returns the committed agent record. It is zero for vacant patches.
func (c *Cell) Agent() AgentInfo { return c.agent }

// Patch returns the committed patch record.
func (c *Cell) Patch() PatchInfo { return c.patch }

func (c *Cell) Clone() Cell { return *c }

// Color shades vacant patches by their sugar level.
func (c *Cell) Color() color.NRGBA {
	if c.State() == Agent {
		return c.State().Color()
	}
	col := c.State().Color()
	col.A = 0
	if c.patch.Max > 0 {
		col.A = uint8(255 * c.patch.Sugar / c.patch.Max)
	}
	return col
}

func (c *Cell) put(s State, a AgentInfo, sugar int) {
	c.Stage(s)
	c.nextAgent = a
	c.nextSugar = sugar
}

// Commit promotes the staged state, agent and patch sugar.
func (c *Cell) Commit() {
	if c.Staged() {
		c.agent = c.nextAgent
		c.patch.Sugar = c.nextSugar
	}
	c.nextAgent = AgentInfo{}
	c.nextSugar = 0
	c.Buffered.Commit()
}

func (c *Cell) vacant() bool { return c.State() == Patch && !c.Staged() }

// Manager runs either Sugarscape variant.
type Manager struct {
	core.Engine[Cell, *Cell]
	name     string
	advanced bool
	params   Params
}

// NewBasic returns an uninitialized basic Sugarscape manager.
func NewBasic() *Manager {
	return &Manager{name: BasicName, params: DefaultParams()}
}

// NewAdvanced returns an uninitialized advanced Sugarscape manager.
func NewAdvanced() *Manager {
	return &Manager{name: AdvancedName, advanced: true, params: DefaultParams()}
}

// Name returns the simulation identifier.
func (m *Manager) Name() string { return m.name }

// Parameters reports the resolved parameters.
func (m *Manager) Parameters() core.ParameterSnapshot { return m.params.snapshot(m.advanced) }

// Initialize builds the grid from cfg. Patches start full; agents draw their
// traits from the seeded stream.
func (m *Manager) Initialize(cfg core.Config) error {
	m.params = FromParams(cfg.Params)
	rng := core.NewRNG(cfg.Seed)
	build := func(s State) Cell {
		c := Cell{Buffered: core.NewBuffered(s), patch: PatchInfo{Sugar: m.params.MaxSugar, Max: m.params.MaxSugar}}
		if s == Agent {
			c.agent = m.newAgent(rng)
		}
		return c
	}
	cells, err := core.BuildCells(cfg, int(numStates),
		func(v int) Cell { return build(State(v)) },
		func() Cell { return build(State(rng.IntN(int(numStates)))) },
	)
	if err != nil {
		return err
	}
	def := core.Topology{Edge: core.EdgeFinite, Neighbors: core.Cardinal}
	return m.Attach(m.name, cfg, def, cells, m, rng)
}

func (m *Manager) newAgent(rng *core.RNG) AgentInfo {
	if m.advanced {
		return newAdvancedAgent(rng)
	}
	return newBasicAgent(rng)
}

// Prepare regrows every patch, occupied or not.
func (m *Manager) Prepare(g *core.Grid[Cell], _ *core.RNG) {
	for c := range g.All() {
		c.patch.grow(m.params.SugarGrowBack)
	}
}

// Stage acts for the agent at pos, if any. Vacant patches are only written
// by agents claiming them.
func (m *Manager) Stage(g *core.Grid[Cell], pos core.Position, rng *core.RNG) {
	c := g.At(pos)
	if c.Staged() || c.State() != Agent {
		return
	}
	a := c.agent
	if m.advanced {
		if a.deadAdvanced() {
			c.put(Patch, AgentInfo{}, c.patch.Sugar)
			return
		}
		a.Age++
	} else if a.deadBasic() {
		c.put(Patch, AgentInfo{}, c.patch.Sugar)
		return
	}

	var vacant, mates []core.Position
	for _, n := range g.Adjacent(pos, a.Vision) {
		nc := g.At(n)
		switch {
		case nc.vacant():
			vacant = append(vacant, n)
		case m.advanced && nc.State() == Agent && !nc.Staged() && a.canMateWith(nc.agent, m.params):
			mates = append(mates, n)
		}
	}

	if m.advanced && len(mates) > 0 && len(vacant) > 0 {
		m.reproduce(g, c, a, core.Pick(rng, mates), core.Pick(rng, vacant), rng)
		return
	}
	if len(vacant) == 0 {
		a.eat(c.patch.Sugar)
		c.put(Agent, a, 0)
		return
	}
	target := g.At(richest(g, vacant, rng))
	a.eat(target.patch.Sugar)
	target.put(Agent, a, 0)
	c.put(Patch, AgentInfo{}, c.patch.Sugar)
}

// reproduce places a child of the agent in c and the partner at mate on the
// vacant cell at nest. Both parents donate half their sugar to the child and
// then harvest their own patch.
func (m *Manager) reproduce(g *core.Grid[Cell], c *Cell, a AgentInfo, mate, nest core.Position, rng *core.RNG) {
	pc := g.At(mate)
	partner := pc.agent
	gift := a.donate() + partner.donate()
	child := offspring(rng, a, partner, gift)

	a.eat(c.patch.Sugar)
	c.put(Agent, a, 0)
	partner.eat(pc.patch.Sugar)
	pc.put(Agent, partner, 0)

	nc := g.At(nest)
	nc.put(Agent, child, nc.patch.Sugar)
}

// richest picks the candidate with the most sugar, breaking ties uniformly.
func richest(g *core.Grid[Cell], candidates []core.Position, rng *core.RNG) core.Position {
	best := -1
	var top []core.Position
	for _, p := range candidates {
		switch s := g.At(p).patch.Sugar; {
		case s > best:
			best = s
			top = append(top[:0], p)
		case s == best:
			top = append(top, p)
		}
	}
	return core.Pick(rng, top)
}

func init() {
	core.Register(BasicName, func() core.Manager { return NewBasic() })
	core.Register(AdvancedName, func() core.Manager { return NewAdvanced() })
}
