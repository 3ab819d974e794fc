package gameoflife

import "image/color"

// State is a Game of Life cell state.
type State uint8

const (
	Dead State = iota
	Alive
	numStates
)

var stateNames = [numStates]string{"DEAD", "ALIVE"}

var palette = [numStates]color.NRGBA{
	Dead:  {R: 255, G: 255, B: 255, A: 255},
	Alive: {R: 0, G: 0, B: 0, A: 255},
}

func (s State) String() string { return stateNames[s] }

// Ordinal returns the configuration index of s.
func (s State) Ordinal() int { return int(s) }

// Color returns the display color of s.
func (s State) Color() color.NRGBA { return palette[s] }
