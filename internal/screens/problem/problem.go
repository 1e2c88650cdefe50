package problem

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/cot"
	"github.com/ipveka/ThoughtChain/internal/router"
	"github.com/ipveka/ThoughtChain/internal/screen"
	"github.com/ipveka/ThoughtChain/internal/screens/result"
	"github.com/ipveka/ThoughtChain/internal/ui/components"
	"github.com/ipveka/ThoughtChain/internal/ui/layout"
	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

const (
	// Outer guard only. The provider chain enforces the configured
	// per-request timeout; this just keeps the screen from spinning
	// forever if that is disabled.
	generateTimeout = 90 * time.Second

	spinnerInterval = 100 * time.Millisecond
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Focusable fields, cycled with tab.
const (
	focusInput = iota
	focusTemperature
	focusTopP
	focusMaxTokens
	focusGenerate
	focusCount
)

// ProblemScreen lets the user enter a problem, tune sampling parameters,
// and kick off generation.
type ProblemScreen struct {
	generator cot.Generator

	input       components.TextArea
	temperature components.Slider
	topP        components.Slider
	maxTokens   components.Slider

	focus      int
	generating bool
	frame      int
	errText    string
	width      int
}

var _ screen.Screen = (*ProblemScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemScreen)(nil)

// New creates an empty problem entry screen.
func New(generator cot.Generator) *ProblemScreen {
	return NewWithText(generator, "")
}

// NewWithText creates a problem screen prefilled with the given problem.
func NewWithText(generator cot.Generator, text string) *ProblemScreen {
	input := components.NewTextArea("Type your problem here...", 500)
	if text != "" {
		input.SetValue(text)
	}

	defaults := cot.DefaultParams()
	sliderWidth := 56

	return &ProblemScreen{
		generator:   generator,
		input:       input,
		temperature: components.NewSlider("Temperature", defaults.Temperature, 0, 1, 0.1, "%.1f", sliderWidth),
		topP:        components.NewSlider("Top-p      ", defaults.TopP, 0, 1, 0.1, "%.1f", sliderWidth),
		maxTokens:   components.NewSlider("Max tokens ", float64(defaults.MaxTokens), cot.MinMaxTokens, cot.MaxMaxTokens, 50, "%.0f", sliderWidth),
	}
}

func (p *ProblemScreen) Title() string {
	return "New Problem"
}

func (p *ProblemScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *ProblemScreen) KeyHints() []layout.KeyHint {
	if p.generating {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProblemScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultReadyMsg:
		p.generating = false
		if msg.Err != nil {
			p.errText = friendlyError(msg.Err)
			return p, nil
		}
		res := msg.Result
		return p, func() tea.Msg {
			return router.PushScreenMsg{Screen: result.New(res)}
		}

	case spinnerTickMsg:
		if !p.generating {
			return p, nil
		}
		p.frame++
		return p, spinnerTick()

	case tea.KeyMsg:
		if p.generating {
			return p, nil
		}
		return p.handleKey(msg)
	}

	if p.focus == focusInput && !p.generating {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *ProblemScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		p.setFocus((p.focus + 1) % focusCount)
		return p, nil
	case "shift+tab":
		p.setFocus((p.focus + focusCount - 1) % focusCount)
		return p, nil
	case "ctrl+g":
		return p, p.generate()
	case "enter":
		if p.focus == focusGenerate {
			return p, p.generate()
		}
	}

	var cmd tea.Cmd
	switch p.focus {
	case focusInput:
		p.input, cmd = p.input.Update(msg)
	case focusTemperature:
		p.temperature, cmd = p.temperature.Update(msg)
	case focusTopP:
		p.topP, cmd = p.topP.Update(msg)
	case focusMaxTokens:
		p.maxTokens, cmd = p.maxTokens.Update(msg)
	}
	return p, cmd
}

func (p *ProblemScreen) setFocus(f int) {
	p.focus = f

	if f == focusInput {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
	p.temperature.Focused = f == focusTemperature
	p.topP.Focused = f == focusTopP
	p.maxTokens.Focused = f == focusMaxTokens
}

func (p *ProblemScreen) params() cot.Params {
	return cot.Params{
		Temperature: p.temperature.Value,
		TopP:        p.topP.Value,
		MaxTokens:   int(p.maxTokens.Value),
	}
}

func (p *ProblemScreen) generate() tea.Cmd {
	text := strings.TrimSpace(p.input.Value())
	if text == "" {
		p.errText = "Enter a problem first."
		return nil
	}

	p.generating = true
	p.errText = ""

	gen := p.generator
	params := p.params()

	return tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
			defer cancel()
			res, err := gen.Generate(ctx, text, params)
			return resultReadyMsg{Result: res, Err: err}
		},
	)
}

func (p *ProblemScreen) View(width, height int) string {
	p.width = width

	inputWidth := width - 20
	if inputWidth > 70 {
		inputWidth = 70
	}
	if inputWidth < 30 {
		inputWidth = 30
	}
	p.input.SetSize(inputWidth, 5)

	var sections []string

	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("What should I think through?")
	sections = append(sections, label, "")
	sections = append(sections, p.input.View())

	if text := strings.TrimSpace(p.input.Value()); text != "" {
		kind := cot.DetectProblemType(text)
		badge := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("detected: " + string(kind))
		sections = append(sections, badge)
	}

	sections = append(sections, "")
	sections = append(sections, p.temperature.View())
	sections = append(sections, p.topP.View())
	sections = append(sections, p.maxTokens.View())
	sections = append(sections, "")

	button := components.NewButton("Generate", p.focus == focusGenerate, nil)
	sections = append(sections, button.View())

	if p.generating {
		spinner := spinnerFrames[p.frame%len(spinnerFrames)]
		thinking := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(spinner + " Thinking through the problem...")
		sections = append(sections, "", thinking)
	}

	if p.errText != "" {
		errLine := lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("✗ " + p.errText)
		sections = append(sections, "", errLine)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
