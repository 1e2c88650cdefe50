package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/llm"
	"github.com/ipveka/ThoughtChain/internal/router"
	"github.com/ipveka/ThoughtChain/internal/screen"
	"github.com/ipveka/ThoughtChain/internal/screens/examplepick"
	"github.com/ipveka/ThoughtChain/internal/screens/problem"
	"github.com/ipveka/ThoughtChain/internal/screens/usage"
	"github.com/ipveka/ThoughtChain/internal/ui/components"
	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	generator  cot.Generator
	sessionLog *llm.SessionLog
	modelID    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(generator cot.Generator, sessionLog *llm.SessionLog, modelID string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SOLVE A PROBLEM", Icon: "◆", Hint: "Type a problem and watch the reasoning unfold", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: problem.New(generator)}
			}
		}},
		{Label: "EXAMPLE PROBLEMS", Icon: "≡", Hint: "Pick from built-in math, logic, and riddle problems", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examplepick.New(generator)}
			}
		}},
		{Label: "SESSION USAGE", Icon: "∑", Hint: "Model calls, token counts, and estimated cost", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: usage.New(sessionLog)}
			}
		}},
		{Label: "QUIT", Icon: "✗", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		generator:  generator,
		sessionLog: sessionLog,
		modelID:    modelID,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("ThoughtChain")
	subtitle := theme.Subtitle.Render("Chain of thought, visualized in your terminal")
	sections = append(sections, title, subtitle, "")

	menuCard := theme.Card.Render(h.menu.View())
	sections = append(sections, menuCard)

	if h.sessionLog != nil {
		calls, in, out := h.sessionLog.Totals()
		if calls > 0 {
			stats := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("this session: %d runs · %d in / %d out tokens", calls, in, out))
			sections = append(sections, "", stats)
		}
	}

	model := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("model: " + h.modelID)
	sections = append(sections, "", model)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	content = strings.TrimRight(content, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
