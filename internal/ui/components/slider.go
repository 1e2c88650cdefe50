package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// Slider adjusts a numeric value within a range using left/right keys.
type Slider struct {
	Label   string
	Value   float64
	Min     float64
	Max     float64
	Step    float64
	Format  string // fmt verb for the value, e.g. "%.1f" or "%.0f"
	Focused bool
	Width   int
}

// NewSlider creates a slider with the given range and step.
func NewSlider(label string, value, min, max, step float64, format string, width int) Slider {
	return Slider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: format,
		Width:  width,
	}
}

// Update handles left/right adjustment when focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value -= s.Step
		if s.Value < s.Min {
			s.Value = s.Min
		}
	case "right", "l":
		s.Value += s.Step
		if s.Value > s.Max {
			s.Value = s.Max
		}
	}

	return s, nil
}

// View renders the slider as a labeled bar with the current value.
func (s Slider) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		valueStyle = valueStyle.Foreground(theme.Accent)
	}

	marker := "  "
	if s.Focused {
		marker = "▸ "
	}

	value := fmt.Sprintf(s.Format, s.Value)
	label := marker + s.Label

	percent := 0.0
	if s.Max > s.Min {
		percent = (s.Value - s.Min) / (s.Max - s.Min)
	}

	barWidth := s.Width - lipgloss.Width(label) - lipgloss.Width(value) - 4
	if barWidth < 4 {
		barWidth = 4
	}
	bar := ProgressBar{Percent: percent, Width: barWidth}
	if s.Focused {
		bar.Fill = theme.Accent
	}

	return labelStyle.Render(label) + "  " + bar.View() + "  " + valueStyle.Render(value)
}
