package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/agora-events/agora/internal/models"
)

// EventDetailProps carries the loaded event plus the viewer's own
// registration, if any
type EventDetailProps struct {
	Event        *models.Event
	Registration *models.Registration
	Width        int
}

// RenderEventDetail renders the full event view: header, markdown
// description, tier table and the viewer's registration state
func RenderEventDetail(props EventDetailProps) string {
	event := props.Event

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		TitleStyle.Render(event.Title),
		"  ",
		RenderEventBadge(event.Status()),
	)

	meta := SubtleStyle.Render(fmt.Sprintf("%s  %s  by %s",
		event.StartsAt.Format("Mon Jan 2 2006 15:04"),
		event.Venue,
		event.Organizer,
	))

	descWidth := max(props.Width-8, 20)
	description := RenderDescription(DescriptionProps{
		Description: event.Description,
		Width:       descWidth,
	})

	sections := []string{header, meta, "", description, "", renderTiers(event)}

	if props.Registration != nil {
		sections = append(sections, "", renderOwnRegistration(props.Registration))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	style := DetailBoxStyle
	if props.Width > 0 {
		style = style.Width(props.Width)
	}
	return style.Render(body)
}

func renderTiers(event *models.Event) string {
	rows := make([]string, 0, len(event.Tiers)+1)
	rows = append(rows, TitleStyle.Render("Tickets"))

	for _, tier := range event.Tiers {
		price := "Free"
		if tier.PriceCents > 0 {
			price = FormatCents(tier.PriceCents)
		}

		availability := "unlimited"
		if remaining := tier.Remaining(); remaining >= 0 {
			availability = fmt.Sprintf("%d left", remaining)
		}

		note := ""
		if tier.Refundable {
			note = SubtleStyle.Render("  refundable")
		}

		rows = append(rows, fmt.Sprintf("  %-12s %-10s %s%s",
			tier.Name, price, SubtleStyle.Render(availability), note))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderOwnRegistration(registration *models.Registration) string {
	line := fmt.Sprintf("Your ticket: %s  %s",
		registration.TierName,
		RenderRegistrationBadge(registration.Status),
	)
	if registration.AmountCents > 0 {
		line += SubtleStyle.Render("  " + FormatCents(registration.AmountCents))
	}
	return line
}
