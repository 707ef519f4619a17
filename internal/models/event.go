package models

import "time"

// Event represents a listed event in the registry
type Event struct {
	ID             string
	Title          string
	Description    string // Markdown, rendered in the detail view
	Organizer      string
	Venue          string
	StartsAt       time.Time
	CategoryID     int
	MaxSupply      int // 0 = unlimited
	CurrentSupply  int
	PlatformFeeBps int // 0 = use the platform default
	Cancelled      bool
	CreatedAt      time.Time
	Tiers          []*Tier
}

// Tier represents one ticket tier of an event with its own pricing and supply
type Tier struct {
	ID         int
	EventID    string
	Name       string // e.g. "General", "VIP"
	PriceCents int64  // 0 = free
	TierLimit  int    // 0 = unlimited within the event supply
	Sold       int
	Refundable bool
}

// EventSummary is a DTO for the event list view
// Contains only the fields needed for the card plus category display data
type EventSummary struct {
	ID            string
	Title         string
	Venue         string
	StartsAt      time.Time
	CategoryID    int
	CategoryName  string
	CategoryColor string
	MaxSupply     int
	CurrentSupply int
	Cancelled     bool
	FromCents     int64 // Cheapest tier price, for "from $X" display
	Free          bool  // True when every tier is free
}

// Status derives the display status of an event from its supply and flags
func (e *Event) Status() EventStatus {
	if e.Cancelled {
		return EventCancelled
	}
	if e.MaxSupply > 0 && e.CurrentSupply >= e.MaxSupply {
		return EventSoldOut
	}
	return EventActive
}

// Status derives the display status of a summary row
func (s *EventSummary) Status() EventStatus {
	if s.Cancelled {
		return EventCancelled
	}
	if s.MaxSupply > 0 && s.CurrentSupply >= s.MaxSupply {
		return EventSoldOut
	}
	return EventActive
}

// Remaining returns how many tickets are left in the tier, or -1 when unlimited
func (t *Tier) Remaining() int {
	if t.TierLimit == 0 {
		return -1
	}
	left := t.TierLimit - t.Sold
	if left < 0 {
		return 0
	}
	return left
}
