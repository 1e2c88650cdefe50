package examplepick

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/examples"
	"github.com/ipveka/ThoughtChain/internal/router"
	"github.com/ipveka/ThoughtChain/internal/screen"
	"github.com/ipveka/ThoughtChain/internal/screens/problem"
	"github.com/ipveka/ThoughtChain/internal/ui/components"
	"github.com/ipveka/ThoughtChain/internal/ui/layout"
	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

var kindTabs = []struct {
	Label string
	Kind  cot.ProblemType
}{
	{"All", ""},
	{"Math", cot.TypeMath},
	{"Logic", cot.TypeLogic},
	{"Riddles", cot.TypeRiddle},
}

// ExamplePickScreen browses the built-in example bank.
type ExamplePickScreen struct {
	generator cot.Generator
	tabs      components.Tabs
	menu      components.Menu
	problems  []examples.Problem
}

var _ screen.Screen = (*ExamplePickScreen)(nil)
var _ screen.KeyHintProvider = (*ExamplePickScreen)(nil)

// New creates the example browser.
func New(generator cot.Generator) *ExamplePickScreen {
	labels := make([]string, len(kindTabs))
	for i, t := range kindTabs {
		labels[i] = t.Label
	}

	s := &ExamplePickScreen{
		generator: generator,
		tabs:      components.NewTabs(labels),
	}
	s.rebuildMenu()
	return s
}

func (s *ExamplePickScreen) rebuildMenu() {
	kind := kindTabs[s.tabs.Selected].Kind
	if kind == "" {
		s.problems = examples.All()
	} else {
		s.problems = examples.ByKind(kind)
	}

	items := make([]components.MenuItem, len(s.problems))
	for i, p := range s.problems {
		p := p
		items[i] = components.MenuItem{
			Label: menuLabel(p),
			Action: func() tea.Cmd {
				gen := s.generator
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: problem.NewWithText(gen, p.Question),
					}
				}
			},
		}
	}
	s.menu = components.NewMenu(items)
}

func menuLabel(p examples.Problem) string {
	q := p.Question
	if len(q) > 58 {
		q = q[:55] + "..."
	}
	return fmt.Sprintf("%s  (%s · %s)", q, p.Category, p.Difficulty)
}

func (s *ExamplePickScreen) Title() string {
	return "Examples"
}

func (s *ExamplePickScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamplePickScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Solve"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamplePickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "right", "tab", "shift+tab":
			before := s.tabs.Selected
			s.tabs, _ = s.tabs.Update(msg)
			if s.tabs.Selected != before {
				s.rebuildMenu()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ExamplePickScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Pick an example to think through")
	sections = append(sections, title, "")
	sections = append(sections, s.tabs.View(), "")
	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
