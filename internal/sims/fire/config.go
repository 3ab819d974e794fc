package fire

import "cell-society/internal/core"

// Params holds the tunable values of the fire model.
type Params struct {
	// ProbCatch is the chance a tree ignites from each burning neighbor.
	ProbCatch float64
}

// DefaultParams returns the standard parameters.
func DefaultParams() Params {
	return Params{ProbCatch: 0.5}
}

// FromParams resolves the named configuration parameters over the defaults.
func FromParams(p core.Params) Params {
	d := DefaultParams()
	return Params{ProbCatch: p.Float("probCatch", d.ProbCatch)}
}
