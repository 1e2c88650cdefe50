package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. Icon is an optional glyph
// shown before the label; Hint is a one-line description rendered under
// the item while it is selected.
type MenuItem struct {
	Label    string
	Icon     string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu with up/down selection.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the selection past disabled items and fires the selected
// item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.nextEnabled(m.Selected, -1)
	case "down", "j":
		m.Selected = m.nextEnabled(m.Selected, +1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// nextEnabled walks from the current index in the given direction and
// returns the first enabled index, or the current one if there is none.
func (m Menu) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return from
}

// View renders the menu, one item per line, with the selected item's hint
// beneath it.
func (m Menu) View() string {
	selectedStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(theme.Text)
	hintStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		icon := item.Icon
		if icon == "" {
			icon = " "
		}

		if i == m.Selected {
			b.WriteString(selectedStyle.Render("  ▸ "+icon+" "+item.Label) + "\n")
			if item.Hint != "" {
				b.WriteString(hintStyle.Render("      "+item.Hint) + "\n")
			}
		} else {
			b.WriteString(normalStyle.Render("    "+icon+" "+item.Label) + "\n")
		}
	}
	return b.String()
}
