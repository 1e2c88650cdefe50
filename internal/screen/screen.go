package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ipveka/ThoughtChain/internal/ui/layout"
)

// Screen is one view in the navigation stack: the welcome animation, the
// home menu, the problem form, a result, and so on. The app model owns
// the chrome; a screen only ever renders its content area.
type Screen interface {
	// Init runs once when the screen becomes active.
	Init() tea.Cmd

	// Update reacts to a message and returns the screen to keep showing,
	// usually the receiver itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into a content area of the given size. Width and
	// height exclude the header and footer rows, which the app draws.
	View(width, height int) string

	// Title is shown in the header while the screen is on top.
	Title() string
}

// KeyHintProvider lets a screen put its own key bindings in the footer.
// Screens that skip it get the stack-depth defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
