package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(r *RNG, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(1000)
	}
	return out
}

func TestRNGIsDeterministic(t *testing.T) {
	assert.Equal(t, draw(NewRNG(7), 20), draw(NewRNG(7), 20))
	assert.NotEqual(t, draw(NewRNG(7), 20), draw(NewRNG(8), 20))
}

func TestDeriveLeavesParentUntouched(t *testing.T) {
	a, b := NewRNG(3), NewRNG(3)
	d := a.Derive("stability", 4)
	draw(d, 50)
	assert.Equal(t, draw(b, 10), draw(a, 10))

	assert.Equal(t, draw(a.Derive("x", 1), 5), draw(b.Derive("x", 1), 5))
	assert.NotEqual(t, draw(a.Derive("x", 1), 5), draw(a.Derive("x", 2), 5))
	assert.Equal(t, int64(3), d.Seed())
}

func TestRNGHelpers(t *testing.T) {
	r := NewRNG(1)
	assert.Zero(t, r.IntN(0))
	assert.Equal(t, 4, r.Between(4, 4))
	for i := 0; i < 100; i++ {
		v := r.Between(2, 5)
		assert.True(t, v >= 2 && v < 5)
	}
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))
	for i := 0; i < 50; i++ {
		assert.Equal(t, 1, r.Weighted([]float64{0, 3, 0}))
	}
	assert.Equal(t, "b", Pick(r, []string{"b"}))
}
