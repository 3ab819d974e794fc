package ants

import "image/color"

// State is a foraging ants cell state.
type State uint8

const (
	Ant State = iota
	Pheromone
	Food
	Nest
	numStates
)

var stateNames = [numStates]string{"ANT", "PHEROMONE", "FOODSOURCE", "NEST"}

var palette = [numStates]color.NRGBA{
	Ant:       {R: 255, G: 0, B: 0, A: 255},
	Pheromone: {R: 255, G: 255, B: 255, A: 255},
	Food:      {R: 0, G: 255, B: 0, A: 255},
	Nest:      {R: 255, G: 255, B: 0, A: 255},
}

// randomWeights is the random-mode distribution: mostly open ground with a
// sprinkling of food sources and nests.
var randomWeights = [numStates]float64{
	Ant:       0,
	Pheromone: 0.97,
	Food:      0.02,
	Nest:      0.01,
}

func (s State) String() string     { return stateNames[s] }
func (s State) Ordinal() int       { return int(s) }
func (s State) Color() color.NRGBA { return palette[s] }
