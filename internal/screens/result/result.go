package result

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/screen"
	"github.com/ipveka/ThoughtChain/internal/ui/components"
	"github.com/ipveka/ThoughtChain/internal/ui/layout"
	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

// ResultScreen renders a finished reasoning chain: the typed steps, a
// summary of step kinds, and optionally the raw model output.
type ResultScreen struct {
	result  *cot.Result
	showRaw bool
	offset  int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for the given result.
func New(result *cot.Result) *ResultScreen {
	return &ResultScreen{result: result}
}

func (r *ResultScreen) Title() string {
	return "Reasoning"
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	rawLabel := "Raw output"
	if r.showRaw {
		rawLabel = "Steps"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: rawLabel},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		r.offset++
	case "r":
		r.showRaw = !r.showRaw
		r.offset = 0
	}

	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth > 76 {
		contentWidth = 76
	}
	if contentWidth < 40 {
		contentWidth = 40
	}

	var body string
	if r.showRaw {
		body = r.rawView(contentWidth)
	} else {
		body = r.stepsView(contentWidth)
	}

	lines := strings.Split(body, "\n")
	if r.offset > len(lines)-1 {
		r.offset = len(lines) - 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
	visible := lines[r.offset:]
	if len(visible) > height {
		visible = visible[:height]
	}

	content := strings.Join(visible, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

// stepsView renders the typed step cards plus the summary section.
func (r *ResultScreen) stepsView(width int) string {
	res := r.result
	var sections []string

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%s · %s · %d steps · %d tokens",
		res.Type, res.Elapsed.Round(10*time.Millisecond), len(res.Steps), res.Usage.TotalTokens,
	))
	sections = append(sections, meta, "", flowStrip(res.Steps, width), "")

	for _, step := range res.Steps {
		sections = append(sections, renderStep(step, width), "")
	}

	sections = append(sections, r.summaryView(width))

	return strings.Join(sections, "\n")
}

// flowStrip draws the chain as a line of colored nodes, one per step,
// joined by dim connectors. Wide chains drop the connectors so the strip
// stays on one line.
func flowStrip(steps []cot.Step, width int) string {
	connector := " ── "
	if len(steps)*6 > width {
		connector = " · "
	}
	dim := lipgloss.NewStyle().Foreground(theme.Border)

	var nodes []string
	for _, step := range steps {
		node := lipgloss.NewStyle().
			Foreground(theme.StepColor(string(step.Type))).
			Bold(true).
			Render(theme.StepIcon(string(step.Type)))
		nodes = append(nodes, node)
	}
	return strings.Join(nodes, dim.Render(connector))
}

// stepTimeline charts each step's word count, so a glance shows where
// the model spent its output.
func stepTimeline(steps []cot.Step, width int) string {
	rows := make([]components.ChartRow, len(steps))
	for i, step := range steps {
		rows[i] = components.ChartRow{
			Label: fmt.Sprintf("%d", step.Index+1),
			Value: len(strings.Fields(step.Text)),
			Color: theme.StepColor(string(step.Type)),
		}
	}
	return components.NewBarChart(rows, width).View()
}

func renderStep(step cot.Step, width int) string {
	color := theme.StepColor(string(step.Type))
	icon := theme.StepIcon(string(step.Type))

	header := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(fmt.Sprintf("%s Step %d · %s", icon, step.Index+1, step.Type))

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		Render(step.Text)

	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(2).
		Render(header + "\n" + body)

	return card
}

// summaryView renders the step-kind chart and the conclusion callout.
func (r *ResultScreen) summaryView(width int) string {
	res := r.result
	counts := res.CountByType()

	var rows []components.ChartRow
	for _, st := range cot.StepTypes {
		rows = append(rows, components.ChartRow{
			Label: string(st),
			Value: counts[st],
			Color: theme.StepColor(string(st)),
		})
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Step breakdown")

	chart := components.NewBarChart(rows, width-8).View()

	timelineTitle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Words per step")

	sections := []string{title, "", chart, "", timelineTitle, "", stepTimeline(res.Steps, width-8)}

	if conclusion := res.Conclusion(); conclusion != "" {
		callout := lipgloss.NewStyle().
			Foreground(theme.Conclusion).
			Bold(true).
			Width(width - 8).
			Render("✓ " + conclusion)
		sections = append(sections, "", callout)
	}

	return theme.Card.Width(width).Render(strings.Join(sections, "\n"))
}

// rawView renders the unparsed model output.
func (r *ResultScreen) rawView(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Raw model output")

	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width - 8).
		Render("Prompt: " + r.result.Prompt)

	raw := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 8).
		Render(r.result.RawText)

	return theme.Card.Width(width).Render(title + "\n\n" + prompt + "\n\n" + raw)
}
