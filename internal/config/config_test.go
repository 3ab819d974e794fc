package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cell-society/internal/core"
)

func TestLoadExplicitGrid(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "fire.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Fire", cfg.Type)
	assert.Equal(t, "Single spark", cfg.Title)
	assert.Equal(t, "cell-society", cfg.Author)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, core.TopologyConfig{Edge: "finite", Neighbors: 4}, cfg.Topology)
	assert.Equal(t, 1.0, cfg.Params.Float("probCatch", 0))
	assert.Nil(t, cfg.Random)
	assert.Equal(t, [][]int{{1, 1, 1}, {1, 2, 1}, {1, 1, 1}}, cfg.Initial)
}

func TestLoadRandom(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "wator_random.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Random)
	assert.Equal(t, core.RandomGrid{Width: 30, Height: 20}, *cfg.Random)
	assert.Equal(t, 3, cfg.Params.Int("starveTime", 0))
	assert.Nil(t, cfg.Initial)
}

func TestLoadRejectsRaggedGrid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "ragged.yaml"))
	var cerr *core.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "not rectangular")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "type: Fire\ngrid: [\"1\"]\ncolour: red\n",
		"no type":       "grid: [\"1\"]\n",
		"bad digit":     "type: Fire\ngrid: [\"1x\"]\n",
		"both sources":  "type: Fire\ngrid: [\"1\"]\nrandom: {width: 2, height: 2}\n",
		"no cells":      "type: Fire\n",
		"bad edge":      "type: Fire\ngrid: [\"1\"]\ntopology: {edge: sphere}\n",
		"bad neighbors": "type: Fire\ngrid: [\"1\"]\ntopology: {neighbors: 5}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseIgnoresSpacesInRows(t *testing.T) {
	cfg, err := Parse([]byte("type: GameOfLife\ngrid:\n  - \"0 1 0\"\n  - \"1 1 1\"\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {1, 1, 1}}, cfg.Initial)
}
