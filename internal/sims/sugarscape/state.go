package sugarscape

import "image/color"

// State is a Sugarscape cell state.
type State uint8

const (
	Patch State = iota
	Agent
	numStates
)

var stateNames = [numStates]string{"PATCH", "AGENT"}

var palette = [numStates]color.NRGBA{
	Patch: {R: 0, G: 255, B: 0, A: 255},
	Agent: {R: 255, G: 0, B: 0, A: 255},
}

func (s State) String() string     { return stateNames[s] }
func (s State) Ordinal() int       { return int(s) }
func (s State) Color() color.NRGBA { return palette[s] }
