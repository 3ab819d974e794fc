package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cell-society/internal/app"
)

// viewCmd opens the interactive viewer
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open a window animating the simulation (space pauses, N steps, arrows change speed, R resets, Q quits)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		mgr, err := newManager(cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := app.Run(mgr, cfg, app.Options{Scale: scale, TPS: tps, HUDWidth: hudWidth}); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	addConfigFlags(viewCmd)
	def := app.DefaultOptions()
	viewCmd.Flags().IntVar(&tps, "tps", def.TPS, "Generations per second (0 steps every frame)")
	viewCmd.Flags().IntVar(&hudWidth, "hud", def.HUDWidth, "Width of the status panel in pixels (0 hides it)")
	rootCmd.AddCommand(viewCmd)
}
