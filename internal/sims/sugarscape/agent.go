package sugarscape

import "cell-society/internal/core"

// Trait ranges, lower bound inclusive and upper bound exclusive.
const (
	basicSugarLo, basicSugarHi       = 5, 25
	metabolismLo, metabolismHi       = 1, 4
	visionLo, visionHi               = 1, 6
	advancedSugarLo, advancedSugarHi = 40, 80
	maxAgeLo, maxAgeHi               = 60, 100
)

// AgentInfo is the record carried by an agent. Age, MaxAge, InitialSugar and
// Female are only used by the advanced variant.
type AgentInfo struct {
	Sugar      int
	Metabolism int
	Vision     int

	Age          int
	MaxAge       int
	InitialSugar int
	Female       bool
}

// PatchInfo is the sugar held by a cell's ground.
type PatchInfo struct {
	Sugar int
	Max   int
}

func (p *PatchInfo) grow(rate int) {
	p.Sugar = min(p.Sugar+rate, p.Max)
}

func newBasicAgent(rng *core.RNG) AgentInfo {
	return AgentInfo{
		Sugar:      rng.Between(basicSugarLo, basicSugarHi),
		Metabolism: rng.Between(metabolismLo, metabolismHi),
		Vision:     rng.Between(visionLo, visionHi),
	}
}

func newAdvancedAgent(rng *core.RNG) AgentInfo {
	a := newBasicAgent(rng)
	a.Sugar = rng.Between(advancedSugarLo, advancedSugarHi)
	a.InitialSugar = a.Sugar
	a.MaxAge = rng.Between(maxAgeLo, maxAgeHi)
	a.Female = rng.Bool()
	return a
}

// eat harvests sugar and pays the metabolism cost.
func (a *AgentInfo) eat(sugar int) {
	a.Sugar += sugar - a.Metabolism
}

func (a AgentInfo) deadBasic() bool { return a.Sugar < 0 }

func (a AgentInfo) deadAdvanced() bool { return a.Age > a.MaxAge || a.Sugar < 0 }

func (a AgentInfo) fertile(p Params) bool {
	return a.Age >= p.FertileLower && a.Age <= p.FertileUpper && a.Sugar >= a.InitialSugar
}

func (a AgentInfo) canMateWith(b AgentInfo, p Params) bool {
	return a.fertile(p) && b.fertile(p) && a.Female != b.Female
}

// donate gives away half of the agent's sugar.
func (a *AgentInfo) donate() int {
	half := a.Sugar / 2
	a.Sugar -= half
	return half
}

// offspring builds a child with averaged traits and a fresh lifespan.
func offspring(rng *core.RNG, mother, father AgentInfo, sugar int) AgentInfo {
	child := newAdvancedAgent(rng)
	child.Vision = (mother.Vision + father.Vision) / 2
	child.Metabolism = (mother.Metabolism + father.Metabolism) / 2
	child.Sugar = sugar
	return child
}
