package models

import "time"

// Registration represents one attendee's registration for an event
// Free registrations are confirmed immediately; paid ones start pending
// and move to confirmed or failed when the payment settles.
type Registration struct {
	ID          string
	EventID     string
	Email       string
	TierName    string
	AmountCents int64 // Total charged to the attendee
	FeeCents    int64 // Platform share of AmountCents
	Status      RegistrationStatus
	CreatedAt   time.Time
	ConfirmedAt *time.Time
}

// OrganizerCents returns the amount routed to the organizer after the platform fee
func (r *Registration) OrganizerCents() int64 {
	return r.AmountCents - r.FeeCents
}

// RegistrationDetail is a DTO for the "my registrations" view,
// joining the registration with its event's display fields
type RegistrationDetail struct {
	Registration
	EventTitle string
	Venue      string
	StartsAt   time.Time
}
