package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/trivessel/vessel"
)

// renderTable lays the solution out as a bordered step table. The
// header carries each vessel's capacity, like the classic hand-drawn
// rendition; row i holds the vessel levels after i operations.
func renderTable(caps vessel.Capacities, path []vessel.State) string {
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers("Step",
			fmt.Sprintf("%3d", caps[0]),
			fmt.Sprintf("%3d", caps[1]),
			fmt.Sprintf("%3d", caps[2]))

	for i, state := range path {
		t.Row(fmt.Sprintf("%3d.", i),
			fmt.Sprintf("%3d", state[0]),
			fmt.Sprintf("%3d", state[1]),
			fmt.Sprintf("%3d", state[2]))
	}

	return t.Render()
}
