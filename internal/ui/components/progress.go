package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// ProgressBar is a horizontal fill bar. Fill tints the filled portion;
// nil falls back to the theme's secondary color, so only callers that
// want a per-type tint (step charts, sliders) set it.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a progress bar with the default fill color.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar. The track shrinks to fit the label and percent
// suffix inside Width, with a 4-cell floor.
func (p ProgressBar) View() string {
	var out string
	if p.Label != "" {
		out = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := 0
	if p.ShowPercent {
		suffix = 6 // " 100%"
	}
	track := p.Width - lipgloss.Width(out) - suffix
	if track < 4 {
		track = 4
	}

	filled := min(max(int(float64(track)*p.Percent), 0), track)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	out += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	out += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", track-filled))

	if p.ShowPercent {
		out += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	return out
}
