package sugarscape

import "cell-society/internal/core"

// Params holds the tunable values shared by both Sugarscape variants.
type Params struct {
	MaxSugar      int
	SugarGrowBack int

	// FertileLower and FertileUpper bound the fertile ages of advanced agents.
	FertileLower int
	FertileUpper int
}

// DefaultParams returns the standard parameters.
func DefaultParams() Params {
	return Params{MaxSugar: 4, SugarGrowBack: 1, FertileLower: 20, FertileUpper: 60}
}

// FromParams resolves the named configuration parameters over the defaults.
func FromParams(p core.Params) Params {
	d := DefaultParams()
	return Params{
		MaxSugar:      p.Int("maxSugar", d.MaxSugar),
		SugarGrowBack: p.Int("sugarGrowBack", d.SugarGrowBack),
		FertileLower:  p.Int("fertileLower", d.FertileLower),
		FertileUpper:  p.Int("fertileUpper", d.FertileUpper),
	}
}

func (p Params) snapshot(advanced bool) core.ParameterSnapshot {
	patch := core.ParameterGroup{
		Name: "Patches",
		Params: []core.Parameter{
			core.IntParam("maxSugar", "Max sugar", p.MaxSugar),
			core.IntParam("sugarGrowBack", "Grow back rate", p.SugarGrowBack),
		},
	}
	if !advanced {
		return core.ParameterSnapshot{Groups: []core.ParameterGroup{patch}}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{patch, {
		Name:    "Agents",
		Summary: "fertile age window",
		Params: []core.Parameter{
			core.IntParam("fertileLower", "Fertile from", p.FertileLower),
			core.IntParam("fertileUpper", "Fertile until", p.FertileUpper),
		},
	}}}
}
