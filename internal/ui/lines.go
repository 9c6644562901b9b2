package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

// hudLines flattens the sim status and parameter groups into display lines.
func hudLines(sim core.Sim, groups []core.ParameterGroup) []string {
	lines := []string{
		fmt.Sprintf("%s  gen %d  pop %d", sim.Name(), sim.Generation(), sim.Population()),
	}
	for _, g := range groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-18s %s", p.Label, p.Value))
		}
	}
	return lines
}

// collectGroups merges the sim's own parameters with the caller's extras.
func collectGroups(sim core.Sim, extra []core.ParameterGroup) []core.ParameterGroup {
	var groups []core.ParameterGroup
	if provider, ok := sim.(core.ParameterProvider); ok {
		groups = append(groups, provider.Parameters().Groups...)
	}
	return append(groups, extra...)
}
