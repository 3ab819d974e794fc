package core

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Position is a (row, col) coordinate on a grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Edge selects how neighbor lookups treat the grid boundary.
type Edge uint8

const (
	// EdgeFinite drops neighbors that fall outside the grid.
	EdgeFinite Edge = iota
	// EdgeToroidal wraps coordinates around the opposite side.
	EdgeToroidal
)

func (e Edge) String() string {
	if e == EdgeToroidal {
		return "toroidal"
	}
	return "finite"
}

// ParseEdge maps a configuration identifier to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "finite", "bounded":
		return EdgeFinite, nil
	case "toroidal", "wrapping", "torus":
		return EdgeToroidal, nil
	}
	return EdgeFinite, Errorf("unknown grid edge %q", s)
}

// Neighbor count policies.
const (
	Cardinal  = 4
	Hexagonal = 6
	Moore     = 8
)

// Topology is the neighbor-adjacency policy of a grid.
type Topology struct {
	Edge      Edge
	Neighbors int
}

func validNeighborPolicy(n int) bool {
	return n == Cardinal || n == Hexagonal || n == Moore
}

// Row and column shifts, cardinal first, then the hexagonal pair, then the
// remaining diagonals. Policies take a prefix of this table.
var (
	rowShifts = [8]int{-1, 0, 1, 0, 1, 1, -1, -1}
	colShifts = [8]int{0, 1, 0, -1, 1, -1, 1, -1}
)

// Grid stores a rectangular arena of cells in row-major order. Callers get
// borrowed pointers into the arena; cells are never shared between positions.
type Grid[T any] struct {
	rows, cols int
	cells      []T
	topo       Topology
}

// NewGrid copies the provided matrix into a new grid. Rows must all have the
// same non-zero length.
func NewGrid[T any](matrix [][]T, topo Topology) (*Grid[T], error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, Errorf("grid must have at least one row and one column")
	}
	if !validNeighborPolicy(topo.Neighbors) {
		return nil, Errorf("neighbor policy must be 4, 6 or 8, got %d", topo.Neighbors)
	}
	rows, cols := len(matrix), len(matrix[0])
	cells := make([]T, 0, rows*cols)
	for r, row := range matrix {
		if len(row) != cols {
			return nil, Errorf("grid is not rectangular: row %d has %d cells, want %d", r, len(row), cols)
		}
		cells = append(cells, row...)
	}
	return &Grid[T]{rows: rows, cols: cols, cells: cells, topo: topo}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Topology returns the grid's neighbor policy.
func (g *Grid[T]) Topology() Topology { return g.topo }

// Index returns the arena index for p.
func (g *Grid[T]) Index(p Position) int { return p.Row*g.cols + p.Col }

// At returns the cell stored at p.
func (g *Grid[T]) At(p Position) *T { return &g.cells[g.Index(p)] }

// Contains reports whether p lies inside the grid.
func (g *Grid[T]) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Wrap applies toroidal wrapping to p.
func (g *Grid[T]) Wrap(p Position) Position {
	return Position{
		Row: (p.Row%g.rows + g.rows) % g.rows,
		Col: (p.Col%g.cols + g.cols) % g.cols,
	}
}

// Neighbors returns the positions around base at distances 1..rangeMultiplier,
// nearest ring first. count selects how many entries of the direction table
// are used (4 cardinal, 6 hexagonal, 8 Moore). Finite grids omit positions
// outside the bounds; toroidal grids always return count*rangeMultiplier
// positions, which may repeat on very small grids.
func (g *Grid[T]) Neighbors(base Position, count, rangeMultiplier int) []Position {
	if count > len(rowShifts) {
		count = len(rowShifts)
	}
	if count <= 0 || rangeMultiplier <= 0 {
		return nil
	}
	out := make([]Position, 0, count*rangeMultiplier)
	for level := 1; level <= rangeMultiplier; level++ {
		for i := 0; i < count; i++ {
			p := Position{Row: base.Row + rowShifts[i]*level, Col: base.Col + colShifts[i]*level}
			if g.topo.Edge == EdgeToroidal {
				out = append(out, g.Wrap(p))
				continue
			}
			if g.Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Adjacent returns Neighbors using the grid's own neighbor policy.
func (g *Grid[T]) Adjacent(base Position, rangeMultiplier int) []Position {
	return g.Neighbors(base, g.topo.Neighbors, rangeMultiplier)
}

// NeighborSet returns the distinct immediate neighbors of base under the
// grid's policy, in first-seen order and never including base itself. On
// toroidal grids narrower than three cells several offsets wrap onto the
// same position; rules that count or pick among neighbors use this instead
// of Adjacent.
func (g *Grid[T]) NeighborSet(base Position) []Position {
	all := g.Adjacent(base, 1)
	out := all[:0]
	for _, p := range all {
		if p == base || slices.Contains(out, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// InOrder yields every cell in row-major order. The sequence can be ranged
// over any number of times.
func (g *Grid[T]) InOrder() iter.Seq2[Position, *T] {
	return func(yield func(Position, *T) bool) {
		for i := range g.cells {
			if !yield(Position{Row: i / g.cols, Col: i % g.cols}, &g.cells[i]) {
				return
			}
		}
	}
}

// All yields every cell with no ordering guarantee, for model-wide scans.
func (g *Grid[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Clone returns an independent grid whose cells are produced by copyCell.
func (g *Grid[T]) Clone(copyCell func(*T) T) *Grid[T] {
	cells := make([]T, len(g.cells))
	for i := range g.cells {
		cells[i] = copyCell(&g.cells[i])
	}
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells, topo: g.topo}
}
