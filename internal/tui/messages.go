package tui

import (
	"github.com/agora-events/agora/internal/models"
)

// categoriesLoadedMsg carries the category list for the pill row
type categoriesLoadedMsg struct {
	categories []*models.Category
	err        error
}

// eventsLoadedMsg carries the event summaries for the browse list
type eventsLoadedMsg struct {
	events []*models.EventSummary
	err    error
}

// eventLoadedMsg carries a full event plus the viewer's registration
type eventLoadedMsg struct {
	event        *models.Event
	registration *models.Registration
	err          error
}

// codeRequestedMsg is sent after a sign-in code has been issued.
// With no mail transport configured the code is surfaced in the UI.
type codeRequestedMsg struct {
	email string
	code  string
	err   error
}

// sessionMsg carries the session issued after code verification
type sessionMsg struct {
	session *models.Session
	err     error
}

// registeredMsg carries the result of a registration attempt
type registeredMsg struct {
	registration *models.Registration
	err          error
}

// paymentMsg is sent after a confirm or fail of a pending registration
type paymentMsg struct {
	err error
}

// refundedMsg is sent after a refund attempt
type refundedMsg struct {
	err error
}

// ticketsLoadedMsg carries the viewer's registrations
type ticketsLoadedMsg struct {
	tickets []*models.RegistrationDetail
	err     error
}

// loggedOutMsg is sent after the session has been revoked
type loggedOutMsg struct {
	err error
}
