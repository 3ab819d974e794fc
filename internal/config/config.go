// Package config loads simulation configuration files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cell-society/internal/core"
)

// File is the YAML layout of a configuration file.
//
//	type: Fire
//	title: Small forest
//	seed: 7
//	topology: {edge: toroidal, neighbors: 8}
//	parameters: {probCatch: 0.7}
//	grid:
//	  - "1112"
//	  - "1111"
//
// grid rows are strings of state digits. random replaces grid with a
// generated width x height board.
type File struct {
	Type       string             `yaml:"type"`
	Title      string             `yaml:"title"`
	Author     string             `yaml:"author"`
	Seed       int64              `yaml:"seed"`
	Topology   TopologySection    `yaml:"topology"`
	Parameters map[string]float64 `yaml:"parameters"`
	Grid       []string           `yaml:"grid"`
	Random     *RandomSection     `yaml:"random"`
}

// TopologySection selects the boundary and neighbor policy.
type TopologySection struct {
	Edge      string `yaml:"edge"`
	Neighbors int    `yaml:"neighbors"`
}

// RandomSection requests a randomly generated board.
type RandomSection struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (core.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return core.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration data. Unknown keys are rejected.
func Parse(data []byte) (core.Config, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return core.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return f.Config()
}

// Config converts the file into a validated engine configuration.
func (f File) Config() (core.Config, error) {
	if strings.TrimSpace(f.Type) == "" {
		return core.Config{}, core.Errorf("missing simulation type")
	}
	if f.Random != nil && len(f.Grid) > 0 {
		return core.Config{}, core.Errorf("grid and random are mutually exclusive")
	}
	cfg := core.Config{
		Type:     strings.TrimSpace(f.Type),
		Title:    f.Title,
		Author:   f.Author,
		Params:   core.Params(f.Parameters),
		Topology: core.TopologyConfig{Edge: f.Topology.Edge, Neighbors: f.Topology.Neighbors},
		Seed:     f.Seed,
	}
	if f.Random != nil {
		cfg.Random = &core.RandomGrid{Width: f.Random.Width, Height: f.Random.Height}
	} else {
		rows, err := parseRows(f.Grid)
		if err != nil {
			return core.Config{}, err
		}
		cfg.Initial = rows
	}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

func parseRows(lines []string) ([][]int, error) {
	rows := make([][]int, 0, len(lines))
	for r, line := range lines {
		line = strings.Join(strings.Fields(line), "")
		row := make([]int, 0, len(line))
		for c, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, core.Errorf("row %d column %d: %q is not a state digit", r, c, ch)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
