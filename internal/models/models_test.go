package models

import (
	"testing"
	"time"
)

// ============================================================================
// Event Status Tests
// ============================================================================

func TestEventStatus_Derivation(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  EventStatus
	}{
		{
			name:  "active with open supply",
			event: Event{MaxSupply: 100, CurrentSupply: 40},
			want:  EventActive,
		},
		{
			name:  "active with unlimited supply",
			event: Event{MaxSupply: 0, CurrentSupply: 99999},
			want:  EventActive,
		},
		{
			name:  "sold out at exact capacity",
			event: Event{MaxSupply: 50, CurrentSupply: 50},
			want:  EventSoldOut,
		},
		{
			name:  "cancelled wins over sold out",
			event: Event{MaxSupply: 50, CurrentSupply: 50, Cancelled: true},
			want:  EventCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventSummary_StatusMatchesEvent(t *testing.T) {
	event := Event{MaxSupply: 10, CurrentSupply: 10}
	summary := EventSummary{MaxSupply: 10, CurrentSupply: 10}

	if event.Status() != summary.Status() {
		t.Errorf("Event.Status() = %v, EventSummary.Status() = %v, want equal",
			event.Status(), summary.Status())
	}
}

// ============================================================================
// Tier Tests
// ============================================================================

func TestTier_Remaining(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		want int
	}{
		{"unlimited tier", Tier{TierLimit: 0, Sold: 500}, -1},
		{"open tier", Tier{TierLimit: 100, Sold: 30}, 70},
		{"exhausted tier", Tier{TierLimit: 100, Sold: 100}, 0},
		{"oversold clamps to zero", Tier{TierLimit: 100, Sold: 105}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.Remaining(); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Registration Tests
// ============================================================================

func TestRegistration_OrganizerCents(t *testing.T) {
	reg := Registration{AmountCents: 10000, FeeCents: 500}
	if got := reg.OrganizerCents(); got != 9500 {
		t.Errorf("OrganizerCents() = %d, want 9500", got)
	}
}

func TestRegistration_OrganizerCents_FreeEvent(t *testing.T) {
	reg := Registration{AmountCents: 0, FeeCents: 0}
	if got := reg.OrganizerCents(); got != 0 {
		t.Errorf("OrganizerCents() = %d, want 0 for a free registration", got)
	}
}

// ============================================================================
// Session Tests
// ============================================================================

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	live := Session{ExpiresAt: now.Add(time.Hour)}
	if live.Expired(now) {
		t.Error("session expiring in an hour should not be expired")
	}

	dead := Session{ExpiresAt: now.Add(-time.Minute)}
	if !dead.Expired(now) {
		t.Error("session past expiry should be expired")
	}
}
