package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cell-society/internal/core"
)

// modelsCmd lists the registered models and their default parameters
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available simulations and their parameters",
	Run: func(cmd *cobra.Command, args []string) {
		listModels(cmd.OutOrStdout())
	},
}

func listModels(out io.Writer) {
	for _, name := range core.Sims() {
		fmt.Fprintln(out, name)
		mgr, err := core.New(name)
		if err != nil {
			continue
		}
		pp, ok := mgr.(core.ParameterProvider)
		if !ok {
			continue
		}
		for _, group := range pp.Parameters().Groups {
			fmt.Fprintf(out, "  %s\n", group.Heading())
			for _, p := range group.Params {
				fmt.Fprintf(out, "    %-18s %-6s %s\n", p.Key, p.Type, p.Value)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
