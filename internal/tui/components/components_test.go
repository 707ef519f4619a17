package components

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/agora-events/agora/internal/config/colors"
	"github.com/agora-events/agora/internal/models"
)

func TestMain(m *testing.M) {
	InitStyles(*colors.Default())
	os.Exit(m.Run())
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{2500, "$25.00"},
		{12345, "$123.45"},
	}

	for _, tt := range tests {
		if got := FormatCents(tt.cents); got != tt.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(0, true); got != "Free" {
		t.Errorf("FormatPrice(free) = %q, want Free", got)
	}
	if got := FormatPrice(2500, false); got != "From $25.00" {
		t.Errorf("FormatPrice(2500) = %q, want From $25.00", got)
	}
}

func TestCategoryPills(t *testing.T) {
	categories := []*models.Category{
		{ID: 1, Name: "Music", Glyph: "music", Color: "#D1FAE5"},
		{ID: 2, Name: "Tech", Glyph: "tech", Color: "#DBEAFE"},
	}

	pills := CategoryPills(categories, 1, nil)

	if len(pills) != 3 {
		t.Fatalf("len(pills) = %d, want 3 (All + 2 categories)", len(pills))
	}
	if pills[0].Label != AllCategoriesLabel {
		t.Errorf("first pill label = %q, want %q", pills[0].Label, AllCategoriesLabel)
	}
	if pills[0].Active {
		t.Error("All pill should be inactive when a category is selected")
	}
	if !pills[1].Active {
		t.Error("selected category pill should be active")
	}
	if pills[2].Active {
		t.Error("unselected category pill should be inactive")
	}
	if pills[1].Background != "#D1FAE5" {
		t.Errorf("category pill background = %q, want category color", pills[1].Background)
	}
}

func TestRenderCategoryBar(t *testing.T) {
	categories := []*models.Category{
		{ID: 1, Name: "Music", Glyph: "music", Color: "#D1FAE5"},
	}

	bar := RenderCategoryBar(CategoryPills(categories, 0, nil))
	plain := stripANSI(bar)

	if !strings.Contains(plain, "All") {
		t.Errorf("bar %q should contain the All pill", plain)
	}
	if !strings.Contains(plain, "Music") {
		t.Errorf("bar %q should contain the Music pill", plain)
	}
}

func TestRenderEventCard(t *testing.T) {
	summary := &models.EventSummary{
		ID:            "ev-1",
		Title:         "Synthwave Night",
		Venue:         "Warehouse 9",
		StartsAt:      time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
		CategoryName:  "Music",
		CategoryColor: "#D1FAE5",
		FromCents:     2500,
	}

	card := RenderEventCard(EventCardProps{Summary: summary, Width: 60})
	plain := stripANSI(card)

	for _, want := range []string{"Synthwave Night", "Warehouse 9", "From $25.00", "open"} {
		if !strings.Contains(plain, want) {
			t.Errorf("card should contain %q:\n%s", want, plain)
		}
	}

	selected := RenderEventCard(EventCardProps{Summary: summary, Selected: true, Width: 60})
	if card == selected {
		t.Error("selected card should render differently")
	}
}

func TestRenderEventCard_Statuses(t *testing.T) {
	cancelled := &models.EventSummary{Title: "Gone", Cancelled: true}
	if !strings.Contains(stripANSI(RenderEventCard(EventCardProps{Summary: cancelled})), "cancelled") {
		t.Error("cancelled card should carry the cancelled badge")
	}

	soldOut := &models.EventSummary{Title: "Full", MaxSupply: 5, CurrentSupply: 5}
	if !strings.Contains(stripANSI(RenderEventCard(EventCardProps{Summary: soldOut})), "sold out") {
		t.Error("sold out card should carry the sold out badge")
	}
}

func TestRenderEventDetail(t *testing.T) {
	event := &models.Event{
		ID:        "ev-1",
		Title:     "Synthwave Night",
		Organizer: "org@example.com",
		Venue:     "Warehouse 9",
		StartsAt:  time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
		Tiers: []*models.Tier{
			{Name: "General", PriceCents: 2500, TierLimit: 10, Sold: 4, Refundable: true},
			{Name: "VIP", PriceCents: 10000, TierLimit: 2},
		},
	}

	detail := stripANSI(RenderEventDetail(EventDetailProps{Event: event, Width: 70}))

	for _, want := range []string{"Synthwave Night", "General", "VIP", "$25.00", "6 left", "refundable"} {
		if !strings.Contains(detail, want) {
			t.Errorf("detail should contain %q:\n%s", want, detail)
		}
	}

	registration := &models.Registration{
		TierName:    "General",
		AmountCents: 2500,
		Status:      models.RegistrationConfirmed,
	}
	withTicket := stripANSI(RenderEventDetail(EventDetailProps{
		Event: event, Registration: registration, Width: 70,
	}))
	if !strings.Contains(withTicket, "Your ticket") {
		t.Error("detail should show the viewer's registration when present")
	}
}

func TestRenderTicketRow(t *testing.T) {
	detail := &models.RegistrationDetail{
		Registration: models.Registration{
			TierName:    "General",
			AmountCents: 2500,
			Status:      models.RegistrationPending,
		},
		EventTitle: "Synthwave Night",
		Venue:      "Warehouse 9",
		StartsAt:   time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
	}

	row := stripANSI(RenderTicketRow(TicketRowProps{Detail: detail, Width: 60}))
	for _, want := range []string{"Synthwave Night", "General", "$25.00", "pending"} {
		if !strings.Contains(row, want) {
			t.Errorf("ticket row should contain %q:\n%s", want, row)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	signedOut := stripANSI(RenderStatusBar(StatusBarProps{Width: 40, Hint: "? help"}))
	if !strings.Contains(signedOut, "signed out") {
		t.Errorf("bar %q should show signed out state", signedOut)
	}

	signedIn := stripANSI(RenderStatusBar(StatusBarProps{Width: 40, Email: "a@example.com"}))
	if !strings.Contains(signedIn, "a@example.com") {
		t.Errorf("bar %q should show the signed-in email", signedIn)
	}
}

func TestRenderTabs(t *testing.T) {
	out := stripANSI(RenderTabs([]string{"Browse", "My Tickets"}, 0, 60, ""))
	if !strings.Contains(out, "Browse") || !strings.Contains(out, "My Tickets") {
		t.Errorf("tabs output missing tab names:\n%s", out)
	}
}
