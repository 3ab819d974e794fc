package segregation

import "image/color"

// State is a Segregation cell state.
type State uint8

const (
	Empty State = iota
	GroupA
	GroupB
	numStates
)

var stateNames = [numStates]string{"EMPTY", "GROUP_A", "GROUP_B"}

var palette = [numStates]color.NRGBA{
	Empty:  {R: 255, G: 255, B: 255, A: 255},
	GroupA: {R: 0, G: 0, B: 255, A: 255},
	GroupB: {R: 255, G: 0, B: 0, A: 255},
}

func (s State) String() string     { return stateNames[s] }
func (s State) Ordinal() int       { return int(s) }
func (s State) Color() color.NRGBA { return palette[s] }
