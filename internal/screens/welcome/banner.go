package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/ipveka/ThoughtChain/internal/ui/theme"
)

const bannerArt = `
 ╔╦╗┬ ┬┌─┐┬ ┬┌─┐┬ ┬┌┬┐╔═╗┬ ┬┌─┐┬┌┐┌
  ║ ├─┤│ ││ ││ ┬├─┤ │ ║  ├─┤├─┤││││
  ╩ ┴ ┴└─┘└─┘└─┘┴ ┴ ┴ ╚═╝┴ ┴┴ ┴┴┘└┘`

const bannerCompact = "T H O U G H T C H A I N"

// RenderBanner returns the ThoughtChain banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
