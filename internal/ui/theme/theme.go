package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — cool and focused, built around a "thinking" indigo
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Step type colors, one hue per kind of reasoning step
var (
	Reasoning   = lipgloss.Color("#60A5FA") // Blue
	Calculation = lipgloss.Color("#FB923C") // Orange
	Conclusion  = lipgloss.Color("#34D399") // Emerald
	Assumption  = lipgloss.Color("#C084FC") // Violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// StepColor returns the accent color for a step type name.
func StepColor(stepType string) color.Color {
	switch stepType {
	case "calculation":
		return Calculation
	case "conclusion":
		return Conclusion
	case "assumption":
		return Assumption
	default:
		return Reasoning
	}
}

// StepIcon returns the marker glyph for a step type name.
func StepIcon(stepType string) string {
	switch stepType {
	case "calculation":
		return "∑"
	case "conclusion":
		return "✓"
	case "assumption":
		return "≡"
	default:
		return "◆"
	}
}
