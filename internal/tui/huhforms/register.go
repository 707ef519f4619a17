package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/agora-events/agora/internal/models"
)

// TierOptions builds the select options for an event's ticket tiers.
// Sold-out tiers stay visible but are marked, the service rejects them.
func TierOptions(event *models.Event) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(event.Tiers))
	for _, tier := range event.Tiers {
		label := tier.Name
		if tier.PriceCents > 0 {
			label += fmt.Sprintf("  $%d.%02d", tier.PriceCents/100, tier.PriceCents%100)
		} else {
			label += "  Free"
		}
		if remaining := tier.Remaining(); remaining == 0 {
			label += "  (sold out)"
		}
		options = append(options, huh.NewOption(label, tier.Name))
	}
	return options
}

// CreateRegisterForm creates a huh form for picking a ticket tier
func CreateRegisterForm(event *models.Event, tierName *string) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[string]().
			Key("tier").
			Title("Register for " + event.Title).
			Options(TierOptions(event)...).
			Value(tierName),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateConfirmPaymentForm creates a yes/no form for paying a pending
// registration
func CreateConfirmPaymentForm(registration *models.Registration, confirmed *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewConfirm().
			Key("pay").
			Title(fmt.Sprintf("Pay $%d.%02d for %s?",
				registration.AmountCents/100, registration.AmountCents%100,
				registration.TierName)).
			Affirmative("Pay now").
			Negative("Not yet").
			Value(confirmed),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateRefundForm creates a yes/no form for refunding a confirmed
// registration
func CreateRefundForm(detail *models.RegistrationDetail, confirmed *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewConfirm().
			Key("refund").
			Title("Refund your ticket for " + detail.EventTitle + "?").
			Affirmative("Refund").
			Negative("Keep it").
			Value(confirmed),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
