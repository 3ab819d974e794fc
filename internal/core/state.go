package core

import (
	"fmt"
	"image/color"
)

// State is the colorable tag identifying a cell's category.
type State interface {
	fmt.Stringer
	Ordinal() int
	Color() color.NRGBA
}

// Tag constrains per-model state enums.
type Tag interface {
	comparable
	State
}

// Buffered holds a cell's current state plus an optional staged successor.
// A successor may be staged at most once per generation; Commit promotes it.
// Cells that were never staged keep their current state.
type Buffered[S Tag] struct {
	state  S
	next   S
	staged bool
}

// NewBuffered returns a buffer holding s with nothing staged.
func NewBuffered[S Tag](s S) Buffered[S] {
	return Buffered[S]{state: s}
}

// State returns the committed state.
func (b *Buffered[S]) State() S { return b.state }

// Current returns the committed state as a State.
func (b *Buffered[S]) Current() State { return b.state }

// Staged reports whether a successor is pending.
func (b *Buffered[S]) Staged() bool { return b.staged }

// Next returns the pending successor, if any.
func (b *Buffered[S]) Next() (S, bool) { return b.next, b.staged }

// Stage records s as the successor. Staging twice in one generation is a
// programming error.
func (b *Buffered[S]) Stage(s S) {
	if b.staged {
		panic(fmt.Sprintf("core: state %v staged twice (pending %v)", s, b.next))
	}
	b.next = s
	b.staged = true
}

// Unchanged reports whether committing would leave the state as it is.
func (b *Buffered[S]) Unchanged() bool { return !b.staged || b.next == b.state }

// Commit promotes the pending successor and clears the buffer.
func (b *Buffered[S]) Commit() {
	if b.staged {
		b.state = b.next
	}
	var zero S
	b.next = zero
	b.staged = false
}

// Count tallies how many cells hold each state name.
func Count(states [][]State) map[string]int {
	counts := make(map[string]int)
	for _, row := range states {
		for _, s := range row {
			counts[s.String()]++
		}
	}
	return counts
}

// Ordinals converts a state snapshot into ordinal indices.
func Ordinals(states [][]State) [][]int {
	out := make([][]int, len(states))
	for r, row := range states {
		out[r] = make([]int, len(row))
		for c, s := range row {
			out[r][c] = s.Ordinal()
		}
	}
	return out
}
