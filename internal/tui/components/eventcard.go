package components

import (
	"charm.land/lipgloss/v2"

	"github.com/agora-events/agora/internal/models"
)

// EventCardProps carries everything needed to render one event card
type EventCardProps struct {
	Summary  *models.EventSummary
	Selected bool
	Width    int
}

// RenderEventCard renders a single event as a bordered card for the
// browse list
func RenderEventCard(props EventCardProps) string {
	summary := props.Summary

	title := TitleStyle.Render(summary.Title)
	badge := RenderEventBadge(summary.Status())

	meta := SubtleStyle.Render(
		summary.StartsAt.Format("Mon Jan 2 15:04") + "  " + summary.Venue,
	)

	price := FormatPrice(summary.FromCents, summary.Free)

	// Seeded categories keep name and glyph key in sync; custom ones
	// fall back to the placeholder inside the pill
	categoryPill := Pill{
		Label:      summary.CategoryName,
		Icon:       GlyphIcon{Name: summary.CategoryName},
		Active:     props.Selected,
		Background: summary.CategoryColor,
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge)
	footer := lipgloss.JoinHorizontal(lipgloss.Center, categoryPill.View(), "  ", price)
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
