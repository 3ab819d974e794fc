package wator

import "image/color"

// State is a Wa-Tor cell state.
type State uint8

const (
	Empty State = iota
	Predator
	Prey
	numStates
)

var stateNames = [numStates]string{"EMPTY", "PREDATOR", "PREY"}

var palette = [numStates]color.NRGBA{
	Empty:    {R: 0, G: 0, B: 255, A: 255},
	Predator: {R: 255, G: 165, B: 0, A: 255},
	Prey:     {R: 0, G: 128, B: 0, A: 255},
}

func (s State) String() string     { return stateNames[s] }
func (s State) Ordinal() int       { return int(s) }
func (s State) Color() color.NRGBA { return palette[s] }
