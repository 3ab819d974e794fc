package core

// Params holds named numeric parameters. Missing keys resolve to per-model
// defaults.
type Params map[string]float64

// Float returns the value for key, or def when the key is absent.
func (p Params) Float(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Int returns the value for key truncated to an int, or def when absent.
func (p Params) Int(key string, def int) int {
	if v, ok := p[key]; ok {
		return int(v)
	}
	return def
}

// RandomGrid requests randomly generated cells of the given dimensions.
type RandomGrid struct {
	Width  int
	Height int
}

// TopologyConfig is the externally supplied boundary style. Zero values fall
// back to the model's default.
type TopologyConfig struct {
	Edge      string
	Neighbors int
}

// Config is the parsed configuration record consumed by Manager.Initialize.
type Config struct {
	Type   string
	Title  string
	Author string

	Params Params

	// Initial holds explicit state ordinals, row-major. Ignored when Random is set.
	Initial [][]int
	Random  *RandomGrid

	Topology TopologyConfig
	Seed     int64
}

// Validate checks the shape of the configuration.
func (c Config) Validate() error {
	if c.Random != nil {
		if c.Random.Width <= 0 || c.Random.Height <= 0 {
			return Errorf("random grid dimensions must be positive, got %dx%d", c.Random.Width, c.Random.Height)
		}
	} else {
		if len(c.Initial) == 0 {
			return Errorf("configuration has neither initial states nor random generation")
		}
		width := len(c.Initial[0])
		for r, row := range c.Initial {
			if len(row) != width {
				return Errorf("grid is not rectangular: row %d has %d cells, want %d", r, len(row), width)
			}
		}
		if width == 0 {
			return Errorf("grid rows are empty")
		}
	}
	if c.Topology.Edge != "" {
		if _, err := ParseEdge(c.Topology.Edge); err != nil {
			return err
		}
	}
	if c.Topology.Neighbors != 0 && !validNeighborPolicy(c.Topology.Neighbors) {
		return Errorf("neighbor policy must be 4, 6 or 8, got %d", c.Topology.Neighbors)
	}
	return nil
}

// Resolve merges the configured topology over a model default.
func (t TopologyConfig) Resolve(def Topology) (Topology, error) {
	out := def
	if t.Edge != "" {
		e, err := ParseEdge(t.Edge)
		if err != nil {
			return out, err
		}
		out.Edge = e
	}
	if t.Neighbors != 0 {
		if !validNeighborPolicy(t.Neighbors) {
			return out, Errorf("neighbor policy must be 4, 6 or 8, got %d", t.Neighbors)
		}
		out.Neighbors = t.Neighbors
	}
	return out, nil
}

// BuildCells constructs the cell matrix described by cfg. fromOrdinal builds
// a cell for an explicit state index in [0, states); random builds a cell for
// random mode.
func BuildCells[T any](cfg Config, states int, fromOrdinal func(int) T, random func() T) ([][]T, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Random != nil {
		cells := make([][]T, cfg.Random.Height)
		for r := range cells {
			cells[r] = make([]T, cfg.Random.Width)
			for c := range cells[r] {
				cells[r][c] = random()
			}
		}
		return cells, nil
	}
	cells := make([][]T, len(cfg.Initial))
	for r, row := range cfg.Initial {
		cells[r] = make([]T, len(row))
		for c, v := range row {
			if v < 0 || v >= states {
				return nil, Errorf("invalid initial state %d at %v: want 0..%d", v, Position{Row: r, Col: c}, states-1)
			}
			cells[r][c] = fromOrdinal(v)
		}
	}
	return cells, nil
}
