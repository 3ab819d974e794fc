package wator

import "cell-society/internal/core"

// Params holds the tunable values of the Wa-Tor model.
type Params struct {
	PreyBreedTime     int
	PredatorBreedTime int

	// StarveTime is the number of generations a predator survives without eating.
	StarveTime int
}

// DefaultParams returns the standard parameters.
func DefaultParams() Params {
	return Params{PreyBreedTime: 4, PredatorBreedTime: 5, StarveTime: 4}
}

// FromParams resolves the named configuration parameters over the defaults.
func FromParams(p core.Params) Params {
	d := DefaultParams()
	return Params{
		PreyBreedTime:     p.Int("preyBreedTime", d.PreyBreedTime),
		PredatorBreedTime: p.Int("predatorBreedTime", d.PredatorBreedTime),
		StarveTime:        p.Int("starveTime", d.StarveTime),
	}
}

func (p Params) snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Wa-Tor",
		Params: []core.Parameter{
			core.IntParam("preyBreedTime", "Prey breed time", p.PreyBreedTime),
			core.IntParam("predatorBreedTime", "Predator breed time", p.PredatorBreedTime),
			core.IntParam("starveTime", "Starve time", p.StarveTime),
		},
	}}}
}
