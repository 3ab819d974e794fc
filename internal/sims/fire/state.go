package fire

import "image/color"

// State is a Fire cell state.
type State uint8

const (
	Empty State = iota
	Tree
	Burning
	numStates
)

var stateNames = [numStates]string{"EMPTY", "TREE", "BURNING"}

var palette = [numStates]color.NRGBA{
	Empty:   {R: 255, G: 255, B: 0, A: 255},
	Tree:    {R: 0, G: 128, B: 0, A: 255},
	Burning: {R: 255, G: 0, B: 0, A: 255},
}

func (s State) String() string { return stateNames[s] }

// Ordinal returns the configuration index of s.
func (s State) Ordinal() int { return int(s) }

// Color returns the display color of s.
func (s State) Color() color.NRGBA { return palette[s] }
