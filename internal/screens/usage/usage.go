package usage

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/llm"
	"github.com/ipveka/ThoughtChain/internal/screen"
	"github.com/ipveka/ThoughtChain/internal/ui/layout"
	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// UsageScreen lists the model calls made this session with token counts
// and an estimated cost.
type UsageScreen struct {
	log    *llm.SessionLog
	offset int
}

var _ screen.Screen = (*UsageScreen)(nil)
var _ screen.KeyHintProvider = (*UsageScreen)(nil)

// New creates a UsageScreen reading from the given session log.
func New(log *llm.SessionLog) *UsageScreen {
	return &UsageScreen{log: log}
}

func (u *UsageScreen) Title() string {
	return "Session Usage"
}

func (u *UsageScreen) Init() tea.Cmd {
	return nil
}

func (u *UsageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (u *UsageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if u.offset > 0 {
				u.offset--
			}
		case "down", "j":
			u.offset++
		}
	}
	return u, nil
}

func (u *UsageScreen) View(width, height int) string {
	entries := u.log.Entries()

	if len(entries) == 0 {
		empty := theme.Hint.Render("No model calls yet this session.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	var lines []string

	lines = append(lines,
		theme.Hint.Render("session "+u.log.ID()),
		"")

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(
		fmt.Sprintf("%-8s  %-10s  %-22s  %7s  %7s  %7s  %s",
			"time", "purpose", "model", "in", "out", "ms", "ok"))
	lines = append(lines, header)

	var totalCost float64
	costKnown := true
	for _, e := range entries {
		status := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !e.Success {
			status = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		row := fmt.Sprintf("%-8s  %-10s  %-22s  %7d  %7d  %7d  %s",
			e.Timestamp.Format("15:04:05"),
			e.Purpose,
			truncate(e.Model, 22),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			status,
		)
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(row))

		if c := llm.LookupCost(e.Model); c != nil {
			totalCost += c.Cost(e.InputTokens, e.OutputTokens)
		} else {
			costKnown = false
		}
	}

	calls, in, out := u.log.Totals()
	lines = append(lines, "")
	summary := fmt.Sprintf("%d calls · %d input tokens · %d output tokens", calls, in, out)
	if costKnown {
		summary += fmt.Sprintf(" · est. $%.4f", totalCost)
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(summary))

	if u.offset > len(lines)-1 {
		u.offset = len(lines) - 1
	}
	visible := lines[u.offset:]
	if len(visible) > height {
		visible = visible[:height]
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(visible, "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
