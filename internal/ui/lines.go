package ui

import (
	"fmt"
	"slices"
	"strings"

	"cell-society/internal/core"
)

// Lines builds the text shown in the side panel: a header describing the
// run, the live population per state and the resolved parameters.
func Lines(mgr core.Manager, cfg core.Config) []string {
	if mgr == nil {
		return nil
	}
	out := []string{mgr.Name()}
	if cfg.Title != "" {
		out = append(out, cfg.Title)
	}
	if cfg.Author != "" {
		out = append(out, "by "+cfg.Author)
	}
	out = append(out, "", fmt.Sprintf("generation %d", mgr.Generation()))

	counts := map[core.State]int{}
	for _, row := range mgr.States() {
		for _, s := range row {
			counts[s]++
		}
	}
	states := make([]core.State, 0, len(counts))
	for s := range counts {
		states = append(states, s)
	}
	slices.SortFunc(states, func(a, b core.State) int { return strings.Compare(a.String(), b.String()) })
	for _, s := range states {
		out = append(out, fmt.Sprintf("  %-10s %d", s.String(), counts[s]))
	}

	if p, ok := mgr.(core.ParameterProvider); ok {
		for _, group := range p.Parameters().Groups {
			out = append(out, "", group.Heading())
			for _, param := range group.Params {
				out = append(out, fmt.Sprintf("  %s: %s", param.Label, param.Value))
			}
		}
	}
	return out
}
