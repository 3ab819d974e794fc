// Package cli wires the simulation engine to the command line.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	// Register every model.
	_ "cell-society/internal/sims/ants"
	_ "cell-society/internal/sims/fire"
	_ "cell-society/internal/sims/gameoflife"
	_ "cell-society/internal/sims/segregation"
	_ "cell-society/internal/sims/sugarscape"
	_ "cell-society/internal/sims/wator"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cellsociety",
	Short: "Cellular automaton simulations on a 2D grid",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
