package components

import (
	"charm.land/lipgloss/v2"

	"github.com/agora-events/agora/internal/models"
	"github.com/agora-events/agora/internal/tui/theme"
)

// RenderEventBadge renders the status marker shown on event cards
func RenderEventBadge(status models.EventStatus) string {
	switch status {
	case models.EventCancelled:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger)).Bold(true).Render("✗ cancelled")
	case models.EventSoldOut:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warn)).Bold(true).Render("● sold out")
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Confirm)).Render("✓ open")
	}
}

// RenderRegistrationBadge renders the payment status marker on tickets
func RenderRegistrationBadge(status models.RegistrationStatus) string {
	switch status {
	case models.RegistrationConfirmed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Confirm)).Bold(true).Render("✓ confirmed")
	case models.RegistrationPending:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warn)).Render("○ pending payment")
	case models.RegistrationFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger)).Render("✗ failed")
	case models.RegistrationRefunded:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render("↩ refunded")
	default:
		return string(status)
	}
}
