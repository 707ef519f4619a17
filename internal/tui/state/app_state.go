package state

import (
	"github.com/agora-events/agora/internal/models"
)

// AppState manages the application's domain data.
// This includes the category list, the visible event summaries, the
// loaded event detail, and the signed-in user's session and tickets.
type AppState struct {
	// session is nil until sign-in completes
	session *models.Session

	// pendingEmail holds the address awaiting code verification
	pendingEmail string

	// categories contains all categories, ordered by name
	categories []*models.Category

	// events contains the summaries for the current category filter
	events []*models.EventSummary

	// currentEvent is the fully loaded event for the detail view
	currentEvent *models.Event

	// ownRegistration is the viewer's registration for currentEvent, if any
	ownRegistration *models.Registration

	// tickets contains the viewer's registrations across all events
	tickets []*models.RegistrationDetail
}

// NewAppState creates an empty AppState.
func NewAppState() *AppState {
	return &AppState{}
}

// Session returns the active session, nil when signed out.
func (s *AppState) Session() *models.Session { return s.session }

// SetSession records a session after successful verification.
func (s *AppState) SetSession(session *models.Session) { s.session = session }

// Email returns the signed-in address, empty when signed out.
func (s *AppState) Email() string {
	if s.session == nil {
		return ""
	}
	return s.session.Email
}

// PendingEmail returns the address awaiting its sign-in code.
func (s *AppState) PendingEmail() string         { return s.pendingEmail }
func (s *AppState) SetPendingEmail(email string) { s.pendingEmail = email }

// ClearSession drops the session and everything scoped to it.
func (s *AppState) ClearSession() {
	s.session = nil
	s.pendingEmail = ""
	s.tickets = nil
	s.ownRegistration = nil
}

// Categories returns the category list.
func (s *AppState) Categories() []*models.Category { return s.categories }

func (s *AppState) SetCategories(categories []*models.Category) {
	s.categories = categories
}

// CategoryIDAt maps a pill index to a category ID, 0 meaning all.
func (s *AppState) CategoryIDAt(pillIdx int) int {
	if pillIdx <= 0 || pillIdx > len(s.categories) {
		return 0
	}
	return s.categories[pillIdx-1].ID
}

// Events returns the visible event summaries.
func (s *AppState) Events() []*models.EventSummary { return s.events }

func (s *AppState) SetEvents(events []*models.EventSummary) {
	s.events = events
}

// EventAt returns the summary at idx, nil when out of range.
func (s *AppState) EventAt(idx int) *models.EventSummary {
	if idx < 0 || idx >= len(s.events) {
		return nil
	}
	return s.events[idx]
}

// CurrentEvent returns the loaded detail event, nil outside detail view.
func (s *AppState) CurrentEvent() *models.Event { return s.currentEvent }

// OwnRegistration returns the viewer's registration for the current
// event, nil when not registered.
func (s *AppState) OwnRegistration() *models.Registration { return s.ownRegistration }

// SetCurrentEvent records the loaded event and the viewer's
// registration for it.
func (s *AppState) SetCurrentEvent(event *models.Event, registration *models.Registration) {
	s.currentEvent = event
	s.ownRegistration = registration
}

// ClearCurrentEvent drops the detail view data.
func (s *AppState) ClearCurrentEvent() {
	s.currentEvent = nil
	s.ownRegistration = nil
}

// Tickets returns the viewer's registrations.
func (s *AppState) Tickets() []*models.RegistrationDetail { return s.tickets }

func (s *AppState) SetTickets(tickets []*models.RegistrationDetail) {
	s.tickets = tickets
}

// TicketAt returns the registration detail at idx, nil when out of range.
func (s *AppState) TicketAt(idx int) *models.RegistrationDetail {
	if idx < 0 || idx >= len(s.tickets) {
		return nil
	}
	return s.tickets[idx]
}
