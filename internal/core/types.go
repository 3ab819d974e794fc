package core

import (
	"image/color"
	"sort"
	"strings"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Manager defines the contract every cellular automaton model implements.
// A Manager is unusable until Initialize succeeds.
type Manager interface {
	Name() string
	Initialize(cfg Config) error
	Step()
	IsStable() bool
	States() [][]State
	Colors() [][]color.NRGBA
	Size() Size
	Generation() int
}

// Factory constructs an uninitialized Manager.
type Factory func() Manager

var sims = map[string]Factory{}
var names = map[string]string{}

// Register adds a manager factory under the provided name. Lookups ignore case.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	key := strings.ToLower(name)
	sims[key] = f
	names[key] = name
}

// Sims exposes the registered model names in sorted order.
func Sims() []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// New returns a fresh manager for the named model.
func New(name string) (Manager, error) {
	f, ok := sims[strings.ToLower(name)]
	if !ok {
		return nil, Errorf("unknown simulation type %q", name)
	}
	return f(), nil
}
