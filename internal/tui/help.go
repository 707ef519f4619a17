package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/agora-events/agora/internal/tui/components"
)

// viewHelp renders the key binding reference
func (m Model) viewHelp() string {
	keys := m.keys()

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Navigation", [][2]string{
			{keys.NextEvent + "/" + keys.PrevEvent, "move down/up the list"},
			{keys.NextCategory + "/" + keys.PrevCategory, "switch category"},
			{keys.ViewEvent, "open event"},
			{keys.Back, "go back"},
		}},
		{"Tickets", [][2]string{
			{keys.Register, "register / pay pending"},
			{keys.MyTickets, "my tickets"},
			{keys.Refund, "refund a confirmed ticket"},
			{"x", "abandon a pending ticket"},
		}},
		{"Other", [][2]string{
			{keys.Logout, "sign out"},
			{keys.ShowHelp, "toggle this help"},
			{keys.Quit, "quit"},
		}},
	}

	var lines []string
	for _, section := range sections {
		lines = append(lines, components.TitleStyle.Render(section.title))
		for _, row := range section.rows {
			lines = append(lines, fmt.Sprintf("  %-10s %s",
				row[0], components.SubtleStyle.Render(row[1])))
		}
		lines = append(lines, "")
	}

	box := components.HelpBoxStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
