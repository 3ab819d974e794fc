package ants

import "cell-society/internal/core"

// Params holds the tunable values of the foraging ants model.
type Params struct {
	AntLifetime    int
	NestPopulation int

	// MaxAnts caps the ants a ground cell accepts.
	MaxAnts int

	// EvapRatio is the fraction of pheromone lost each generation.
	EvapRatio float64
}

// DefaultParams returns the standard parameters.
func DefaultParams() Params {
	return Params{AntLifetime: 500, EvapRatio: 0.01, MaxAnts: 10, NestPopulation: 50}
}

// FromParams resolves the named configuration parameters over the defaults.
func FromParams(p core.Params) Params {
	d := DefaultParams()
	return Params{
		AntLifetime:    p.Int("antLifetime", d.AntLifetime),
		EvapRatio:      p.Float("evapRatio", d.EvapRatio),
		MaxAnts:        p.Int("maxAnts", d.MaxAnts),
		NestPopulation: p.Int("nestPopulation", d.NestPopulation),
	}
}

func (p Params) snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Colony",
			Params: []core.Parameter{
				core.IntParam("antLifetime", "Ant lifetime", p.AntLifetime),
				core.IntParam("maxAnts", "Ants per cell", p.MaxAnts),
				core.IntParam("nestPopulation", "Nest population", p.NestPopulation),
			},
		},
		{
			Name:   "Pheromone",
			Params: []core.Parameter{core.FloatParam("evapRatio", "Evaporation ratio", p.EvapRatio)},
		},
	}}
}
