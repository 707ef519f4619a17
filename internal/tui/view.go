package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/agora-events/agora/internal/tui/components"
	"github.com/agora-events/agora/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var content string
	switch m.UiState.Mode() {
	case state.AuthEmailMode, state.AuthCodeMode:
		content = m.viewCenteredForm()
	case state.RegisterFormMode, state.ConfirmPayMode, state.RefundConfirmMode:
		content = m.viewCenteredForm()
	case state.DetailMode:
		content = m.viewDetail()
	case state.TicketsMode:
		content = m.viewTickets()
	case state.HelpMode:
		content = m.viewHelp()
	default:
		content = m.viewBrowse()
	}

	view.Content = content
	return view
}

// viewCenteredForm renders the active huh form in a centered box
func (m Model) viewCenteredForm() string {
	if m.form == nil {
		return ""
	}

	box := components.FormBoxStyle
	switch m.UiState.Mode() {
	case state.ConfirmPayMode:
		box = components.ConfirmBoxStyle
	case state.RefundConfirmMode:
		box = components.RefundBoxStyle
	}

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box.Render(m.form.View()),
	)
}

// viewBrowse renders the tab bar, category pills, event list and
// status bar
func (m Model) viewBrowse() string {
	width := m.UiState.Width()

	tabs := components.RenderTabs(
		[]string{"Browse", "My Tickets"},
		m.UiState.Tab(), width, m.renderNotification(),
	)

	pills := components.CategoryPills(
		m.AppState.Categories(), m.UiState.SelectedCategory(), nil,
	)
	categoryBar := components.RenderCategoryBar(pills)

	var cards []string
	events := m.AppState.Events()
	if len(events) == 0 {
		cards = append(cards, components.SubtleStyle.Render("  No events in this category yet."))
	} else {
		start := m.UiState.ScrollOffset()
		end := min(start+m.visibleRows(), len(events))
		for i := start; i < end; i++ {
			cards = append(cards, components.RenderEventCard(components.EventCardProps{
				Summary:  events[i],
				Selected: i == m.UiState.SelectedEvent(),
				Width:    min(width-4, 76),
			}))
		}
	}

	list := lipgloss.JoinVertical(lipgloss.Left, cards...)
	body := lipgloss.JoinVertical(lipgloss.Left, tabs, categoryBar, list)

	return m.withStatusBar(body, "enter view  r register  t tickets  ? help  q quit")
}

// viewDetail renders the loaded event
func (m Model) viewDetail() string {
	event := m.AppState.CurrentEvent()
	if event == nil {
		return m.viewBrowse()
	}

	detail := components.RenderEventDetail(components.EventDetailProps{
		Event:        event,
		Registration: m.AppState.OwnRegistration(),
		Width:        min(m.UiState.Width()-4, 80),
	})

	body := lipgloss.JoinVertical(lipgloss.Left, m.renderNotification(), detail)
	return m.withStatusBar(body, "r register  esc back  q quit")
}

// viewTickets renders the viewer's registrations
func (m Model) viewTickets() string {
	width := m.UiState.Width()

	tabs := components.RenderTabs(
		[]string{"Browse", "My Tickets"},
		m.UiState.Tab(), width, m.renderNotification(),
	)

	var rows []string
	tickets := m.AppState.Tickets()
	if len(tickets) == 0 {
		rows = append(rows, components.SubtleStyle.Render("  No tickets yet. Register for an event to get one."))
	} else {
		start := m.UiState.ScrollOffset()
		end := min(start+m.visibleRows(), len(tickets))
		for i := start; i < end; i++ {
			rows = append(rows, components.RenderTicketRow(components.TicketRowProps{
				Detail:   tickets[i],
				Selected: i == m.UiState.SelectedTicket(),
				Width:    min(width-4, 76),
			}))
		}
	}

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	body := lipgloss.JoinVertical(lipgloss.Left, tabs, list)

	return m.withStatusBar(body, "enter event  R refund  x abandon  esc back")
}

// renderNotification renders the current notification banner, empty
// when there is none
func (m Model) renderNotification() string {
	notification := m.Notifications.Current()
	if notification == nil {
		return ""
	}

	switch notification.Level {
	case state.LevelError:
		return components.ErrorBannerStyle.Render(notification.Message)
	case state.LevelWarning:
		return components.WarningBannerStyle.Render(notification.Message)
	default:
		return components.InfoBannerStyle.Render(notification.Message)
	}
}

// withStatusBar pins the status bar to the bottom of the screen
func (m Model) withStatusBar(body, hint string) string {
	width := m.UiState.Width()
	height := m.UiState.Height()

	bar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Email: m.AppState.Email(),
		Hint:  hint,
	})

	bodyHeight := lipgloss.Height(body)
	gap := max(height-bodyHeight-1, 0)
	filler := strings.Repeat("\n", gap)

	return lipgloss.JoinVertical(lipgloss.Left, body, filler, bar)
}
