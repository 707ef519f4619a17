package components

import (
	"charm.land/lipgloss/v2"

	"github.com/agora-events/agora/internal/models"
)

// TicketRowProps carries one registration joined with its event
type TicketRowProps struct {
	Detail   *models.RegistrationDetail
	Selected bool
	Width    int
}

// RenderTicketRow renders one row of the "My Tickets" list
func RenderTicketRow(props TicketRowProps) string {
	detail := props.Detail

	title := TitleStyle.Render(detail.EventTitle)
	badge := RenderRegistrationBadge(detail.Status)
	meta := SubtleStyle.Render(
		detail.StartsAt.Format("Mon Jan 2 15:04") + "  " + detail.Venue,
	)

	price := "Free"
	if detail.AmountCents > 0 {
		price = FormatCents(detail.AmountCents)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge)
	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		SubtleStyle.Render(detail.TierName), "  ", price)
	body := lipgloss.JoinVertical(lipgloss.Left, header, meta, footer)

	style := CardStyle
	if props.Selected {
		style = SelectedCardStyle
	}
	if props.Width > 0 {
		style = style.Width(props.Width)
	}
	return style.Render(body)
}
