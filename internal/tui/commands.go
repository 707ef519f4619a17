package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/agora-events/agora/internal/services/registration"
)

// loadCategories fetches the category list for the pill row
func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := m.app.EventService.ListCategories(m.ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

// loadEvents fetches summaries for the given category, 0 meaning all
func (m Model) loadEvents(categoryID int) tea.Cmd {
	return func() tea.Msg {
		events, err := m.app.EventService.ListEvents(m.ctx, categoryID)
		return eventsLoadedMsg{events: events, err: err}
	}
}

// loadEvent fetches one event and the viewer's registration for it
func (m Model) loadEvent(eventID string) tea.Cmd {
	email := m.AppState.Email()
	return func() tea.Msg {
		event, err := m.app.EventService.GetEvent(m.ctx, eventID)
		if err != nil {
			return eventLoadedMsg{err: err}
		}
		registration, err := m.app.RegistrationService.GetForEvent(m.ctx, eventID, email)
		if err != nil {
			return eventLoadedMsg{err: err}
		}
		return eventLoadedMsg{event: event, registration: registration}
	}
}

// requestCode asks the auth service to issue a sign-in code
func (m Model) requestCode(email string) tea.Cmd {
	return func() tea.Msg {
		code, err := m.app.AuthService.RequestCode(m.ctx, email)
		return codeRequestedMsg{email: email, code: code, err: err}
	}
}

// verifyCode exchanges the emailed code for a session
func (m Model) verifyCode(email, code string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.app.AuthService.VerifyCode(m.ctx, email, code)
		return sessionMsg{session: session, err: err}
	}
}

// register books a ticket for the signed-in user
func (m Model) register(eventID, tierName string) tea.Cmd {
	req := registration.RegisterRequest{
		EventID:  eventID,
		Email:    m.AppState.Email(),
		TierName: tierName,
	}
	return func() tea.Msg {
		created, err := m.app.RegistrationService.Register(m.ctx, req)
		return registeredMsg{registration: created, err: err}
	}
}

// confirmPayment settles a pending registration
func (m Model) confirmPayment(registrationID string) tea.Cmd {
	return func() tea.Msg {
		return paymentMsg{err: m.app.RegistrationService.ConfirmPayment(m.ctx, registrationID)}
	}
}

// failPayment abandons a pending registration and releases its seat
func (m Model) failPayment(registrationID string) tea.Cmd {
	return func() tea.Msg {
		return paymentMsg{err: m.app.RegistrationService.FailPayment(m.ctx, registrationID)}
	}
}

// refund refunds a confirmed registration
func (m Model) refund(registrationID string) tea.Cmd {
	return func() tea.Msg {
		return refundedMsg{err: m.app.RegistrationService.Refund(m.ctx, registrationID)}
	}
}

// loadTickets fetches the viewer's registrations
func (m Model) loadTickets() tea.Cmd {
	email := m.AppState.Email()
	return func() tea.Msg {
		tickets, err := m.app.RegistrationService.ListByEmail(m.ctx, email)
		return ticketsLoadedMsg{tickets: tickets, err: err}
	}
}

// logout revokes the session
func (m Model) logout() tea.Cmd {
	token := ""
	if session := m.AppState.Session(); session != nil {
		token = session.Token
	}
	return func() tea.Msg {
		return loggedOutMsg{err: m.app.AuthService.Logout(m.ctx, token)}
	}
}
