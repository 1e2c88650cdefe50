package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// Tabs is a horizontal single-select switcher.
type Tabs struct {
	Labels   []string
	Selected int
}

// NewTabs creates a tab row with the first tab selected.
func NewTabs(labels []string) Tabs {
	return Tabs{Labels: labels}
}

// Update handles left/right tab switching.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		if t.Selected > 0 {
			t.Selected--
		}
	case "right", "l", "tab":
		if t.Selected < len(t.Labels)-1 {
			t.Selected++
		}
	}

	return t, nil
}

// View renders the tab row.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("[ "+label+" ]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  "+label+"  "))
		}
	}
	return strings.Join(parts, " ")
}
