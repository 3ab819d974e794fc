package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsNormalized(t *testing.T) {
	got := Options{Scale: 0, TPS: -3, HUDWidth: -1}.normalized()
	assert.Equal(t, Options{Scale: 1, TPS: 0, HUDWidth: 0}, got)

	def := DefaultOptions()
	assert.Equal(t, def, def.normalized())
}

func TestRateAdjustment(t *testing.T) {
	assert.Equal(t, 20, faster(10))
	assert.Equal(t, 0, faster(0))
	assert.Equal(t, 5, slower(10))
	assert.Equal(t, 1, slower(1))
	assert.Equal(t, 60, slower(0))
}
