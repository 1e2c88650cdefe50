package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// ChartRow is one labeled, colored bar in a BarChart.
type ChartRow struct {
	Label string
	Value int
	Color color.Color
}

// BarChart renders horizontal bars scaled to the largest value.
type BarChart struct {
	Rows  []ChartRow
	Width int
}

// NewBarChart creates a bar chart.
func NewBarChart(rows []ChartRow, width int) BarChart {
	return BarChart{Rows: rows, Width: width}
}

// View renders the chart, one row per line.
func (c BarChart) View() string {
	max := 0
	labelWidth := 0
	for _, r := range c.Rows {
		if r.Value > max {
			max = r.Value
		}
		if w := lipgloss.Width(r.Label); w > labelWidth {
			labelWidth = w
		}
	}
	if max == 0 {
		max = 1
	}

	barSpace := c.Width - labelWidth - 8
	if barSpace < 4 {
		barSpace = 4
	}

	var lines []string
	for _, r := range c.Rows {
		filled := r.Value * barSpace / max
		if r.Value > 0 && filled == 0 {
			filled = 1
		}

		label := lipgloss.NewStyle().
			Foreground(r.Color).
			Render(fmt.Sprintf("%-*s", labelWidth, r.Label))

		bar := lipgloss.NewStyle().
			Foreground(r.Color).
			Render(strings.Repeat("█", filled))

		count := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %d", r.Value))

		lines = append(lines, label+"  "+bar+count)
	}

	return strings.Join(lines, "\n")
}
