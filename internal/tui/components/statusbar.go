package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps carries the pieces of the bottom status bar
type StatusBarProps struct {
	Width int
	Email string // empty when signed out
	Hint  string // context-sensitive key hints
}

// RenderStatusBar renders the single-line bar at the bottom of the
// screen: identity on the left, key hints on the right
func RenderStatusBar(props StatusBarProps) string {
	identity := " signed out"
	if props.Email != "" {
		identity = " " + props.Email
	}

	hint := props.Hint
	if hint != "" {
		hint += " "
	}

	gapWidth := max(props.Width-lipgloss.Width(identity)-lipgloss.Width(hint), 0)
	bar := identity + strings.Repeat(" ", gapWidth) + hint

	return StatusBarStyle.Width(props.Width).Render(bar)
}
