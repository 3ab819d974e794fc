package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cell-society/internal/chart"
	"cell-society/internal/config"
	"cell-society/internal/core"
	"cell-society/internal/render"
)

var (
	configPath  string // YAML configuration file
	seed        int64  // Overrides the configured seed
	edge        string // Overrides the configured grid edge
	neighbors   int    // Overrides the configured neighbor policy
	generations int    // Maximum generations to run
	untilStable bool   // Stop as soon as the grid is stable
	chartPath   string // Population chart output
	pngPath     string // Final grid snapshot output
	scale       int    // Pixels per cell for image output
	tps         int    // Generations per second in the viewer
	hudWidth    int    // Viewer side panel width
)

// runOptions controls a headless run.
type runOptions struct {
	Generations int
	UntilStable bool
	ChartPath   string
	PNGPath     string
	Scale       int
}

// runCmd steps a simulation without a window
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation headless and report populations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		opts := runOptions{
			Generations: generations,
			UntilStable: untilStable,
			ChartPath:   chartPath,
			PNGPath:     pngPath,
			Scale:       scale,
		}
		if err := runSimulation(cfg, opts, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// loadConfig reads --config and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (core.Config, error) {
	if configPath == "" {
		return core.Config{}, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return core.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("edge") {
		cfg.Topology.Edge = edge
	}
	if flags.Changed("neighbors") {
		cfg.Topology.Neighbors = neighbors
	}
	return cfg, nil
}

// newManager resolves and initializes the manager named by cfg.Type.
func newManager(cfg core.Config) (core.Manager, error) {
	mgr, err := core.New(cfg.Type)
	if err != nil {
		return nil, err
	}
	if err := mgr.Initialize(cfg); err != nil {
		return nil, fmt.Errorf("initializing %s: %w", mgr.Name(), err)
	}
	return mgr, nil
}

func runSimulation(cfg core.Config, opts runOptions, out io.Writer) error {
	mgr, err := newManager(cfg)
	if err != nil {
		return err
	}
	rec := chart.NewRecorder()
	rec.Record(mgr.Generation(), mgr.States())
	stable := false
	for mgr.Generation() < opts.Generations {
		if opts.UntilStable && mgr.IsStable() {
			stable = true
			break
		}
		mgr.Step()
		rec.Record(mgr.Generation(), mgr.States())
	}
	logrus.WithFields(logrus.Fields{
		"sim":        mgr.Name(),
		"generation": mgr.Generation(),
		"stable":     stable,
	}).Info("run complete")

	printSummary(out, mgr, stable)

	if opts.ChartPath != "" {
		if err := writeFile(opts.ChartPath, func(w io.Writer) error { return rec.Render(w, mgr.Name()) }); err != nil {
			return err
		}
	}
	if opts.PNGPath != "" {
		if err := writeFile(opts.PNGPath, func(w io.Writer) error { return render.WritePNG(w, mgr.Colors(), opts.Scale) }); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(out io.Writer, mgr core.Manager, stable bool) {
	size := mgr.Size()
	fmt.Fprintf(out, "%s %dx%d generation %d", mgr.Name(), size.Rows, size.Cols, mgr.Generation())
	if stable {
		fmt.Fprint(out, " (stable)")
	}
	fmt.Fprintln(out)
	counts := core.Count(mgr.States())
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-12s %d\n", name, counts[name])
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "YAML simulation configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for random initialization and stepping (overrides config)")
	cmd.Flags().StringVar(&edge, "edge", "", "Grid edge: finite or toroidal (overrides config)")
	cmd.Flags().IntVar(&neighbors, "neighbors", 0, "Neighbor policy: 4, 6 or 8 (overrides config)")
	cmd.Flags().IntVar(&scale, "scale", 8, "Pixels per cell")
}

func init() {
	addConfigFlags(runCmd)
	runCmd.Flags().IntVar(&generations, "generations", 100, "Maximum number of generations")
	runCmd.Flags().BoolVar(&untilStable, "until-stable", false, "Stop once a step would change nothing")
	runCmd.Flags().StringVar(&chartPath, "chart", "", "Write a population chart PNG to this path")
	runCmd.Flags().StringVar(&pngPath, "png", "", "Write the final grid as PNG to this path")
	rootCmd.AddCommand(runCmd)
}
