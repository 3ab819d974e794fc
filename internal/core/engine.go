package core

import (
	"image/color"

	"github.com/sirupsen/logrus"
)

// Cell is the two-phase protocol implemented by a pointer to a model's cell.
type Cell[T any] interface {
	*T
	Current() State
	Unchanged() bool
	Commit()
	Clone() T
	Color() color.NRGBA
}

// Rules stages the successor of the cell at pos. Staging reads committed
// state only and writes pending buffers of cells the rule is entitled to
// mutate.
type Rules[T any] interface {
	Stage(g *Grid[T], pos Position, rng *RNG)
}

// Preparer is implemented by rules that need a once-per-generation pass
// before any cell is staged.
type Preparer[T any] interface {
	Prepare(g *Grid[T], rng *RNG)
}

// StabilityRule replaces the default fixed-point check.
type StabilityRule[T any] interface {
	Stable(g *Grid[T]) bool
}

// Engine drives the synchronous step cycle shared by every model. Model
// managers embed it and supply their Rules through Attach.
type Engine[T any, PT Cell[T]] struct {
	grid       *Grid[T]
	rules      Rules[T]
	rng        *RNG
	generation int
	log        *logrus.Entry
}

// Attach resets the engine around a freshly built cell matrix.
func (e *Engine[T, PT]) Attach(name string, cfg Config, def Topology, cells [][]T, rules Rules[T], rng *RNG) error {
	topo, err := cfg.Topology.Resolve(def)
	if err != nil {
		return err
	}
	grid, err := NewGrid(cells, topo)
	if err != nil {
		return err
	}
	e.grid = grid
	e.rules = rules
	e.rng = rng
	e.generation = 0
	e.log = logrus.WithField("sim", name)
	e.log.WithFields(logrus.Fields{
		"rows":      grid.Rows(),
		"cols":      grid.Cols(),
		"edge":      topo.Edge.String(),
		"neighbors": topo.Neighbors,
		"seed":      rng.Seed(),
	}).Info("initialized")
	return nil
}

// Ready reports whether the engine holds a grid.
func (e *Engine[T, PT]) Ready() bool { return e.grid != nil }

// Grid exposes the live grid.
func (e *Engine[T, PT]) Grid() *Grid[T] { return e.grid }

// Generation returns the number of completed steps.
func (e *Engine[T, PT]) Generation() int { return e.generation }

// Size returns the grid dimensions.
func (e *Engine[T, PT]) Size() Size {
	if e.grid == nil {
		return Size{}
	}
	return Size{Rows: e.grid.Rows(), Cols: e.grid.Cols()}
}

// Step stages every cell in row-major order, then commits them all.
func (e *Engine[T, PT]) Step() {
	if e.grid == nil {
		return
	}
	e.stageAll(e.grid, e.rng)
	for c := range e.grid.All() {
		PT(c).Commit()
	}
	e.generation++
	e.log.WithField("generation", e.generation).Debug("step")
}

func (e *Engine[T, PT]) stageAll(g *Grid[T], rng *RNG) {
	if p, ok := e.rules.(Preparer[T]); ok {
		p.Prepare(g, rng)
	}
	for pos := range g.InOrder() {
		e.rules.Stage(g, pos, rng)
	}
}

// IsStable reports whether a full staging pass would leave every cell
// unchanged. The pass runs on a clone with its own RNG stream, so the live
// grid and the step sequence are unaffected.
func (e *Engine[T, PT]) IsStable() bool {
	if e.grid == nil {
		return false
	}
	if sr, ok := e.rules.(StabilityRule[T]); ok {
		return e.report(sr.Stable(e.grid))
	}
	probe := e.grid.Clone(func(c *T) T { return PT(c).Clone() })
	e.stageAll(probe, e.rng.Derive("stability", int64(e.generation)))
	for c := range probe.All() {
		if !PT(c).Unchanged() {
			return false
		}
	}
	return e.report(true)
}

func (e *Engine[T, PT]) report(stable bool) bool {
	if stable {
		e.log.WithField("generation", e.generation).Debug("stable")
	}
	return stable
}

// States returns a row-major snapshot of committed states.
func (e *Engine[T, PT]) States() [][]State {
	return snapshot(e.grid, func(c *T) State { return PT(c).Current() })
}

// Colors returns a row-major snapshot of display colors.
func (e *Engine[T, PT]) Colors() [][]color.NRGBA {
	return snapshot(e.grid, func(c *T) color.NRGBA { return PT(c).Color() })
}

func snapshot[T, V any](g *Grid[T], f func(*T) V) [][]V {
	if g == nil {
		return nil
	}
	out := make([][]V, g.Rows())
	for r := range out {
		out[r] = make([]V, g.Cols())
	}
	for pos, c := range g.InOrder() {
		out[pos.Row][pos.Col] = f(c)
	}
	return out
}
