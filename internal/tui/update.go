package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/agora-events/agora/internal/models"
	"github.com/agora-events/agora/internal/tui/components"
	"github.com/agora-events/agora/internal/tui/huhforms"
	"github.com/agora-events/agora/internal/tui/state"
)

// formMode reports whether the current mode routes input to a huh form
func (m Model) formMode() bool {
	switch m.UiState.Mode() {
	case state.AuthEmailMode, state.AuthCodeMode, state.RegisterFormMode,
		state.ConfirmPayMode, state.RefundConfirmMode:
		return true
	}
	return false
}

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case categoriesLoadedMsg:
		if msg.err != nil {
			m.Notifications.Set(state.LevelError, msg.err.Error())
			return m, nil
		}
		m.AppState.SetCategories(msg.categories)
		return m, nil

	case eventsLoadedMsg:
		if msg.err != nil {
			m.Notifications.Set(state.LevelError, msg.err.Error())
			return m, nil
		}
		m.AppState.SetEvents(msg.events)
		m.UiState.SetSelectedEvent(m.UiState.SelectedEvent(), len(msg.events))
		return m, nil

	case eventLoadedMsg:
		if msg.err != nil {
			m.Notifications.Set(state.LevelError, msg.err.Error())
			return m, nil
		}
		m.AppState.SetCurrentEvent(msg.event, msg.registration)
		m.UiState.SetMode(state.DetailMode)
		return m, nil

	case codeRequestedMsg:
		return m.handleCodeRequested(msg)

	case sessionMsg:
		return m.handleSession(msg)

	case registeredMsg:
		return m.handleRegistered(msg)

	case paymentMsg:
		if msg.err != nil {
			m.Notifications.Set(state.LevelError, msg.err.Error())
		}
		m.form = nil
		if event := m.AppState.CurrentEvent(); event != nil {
			m.UiState.SetMode(state.DetailMode)
			return m, tea.Batch(m.loadEvent(event.ID), m.loadTickets())
		}
		m.UiState.SetMode(state.TicketsMode)
		return m, m.loadTickets()

	case refundedMsg:
		if msg.err != nil {
			m.Notifications.Set(state.LevelError, msg.err.Error())
		} else {
			m.Notifications.Set(state.LevelInfo, "Ticket refunded")
		}
		m.UiState.SetMode(state.TicketsMode)
		m.form = nil
		return m, m.loadTickets()

	case ticketsLoadedMsg:
		if msg.err != nil {
			m.Notifications.Set(state.LevelError, msg.err.Error())
			return m, nil
		}
		m.AppState.SetTickets(msg.tickets)
		m.UiState.SetSelectedTicket(m.UiState.SelectedTicket(), len(msg.tickets))
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.Notifications.Set(state.LevelError, msg.err.Error())
		}
		m.AppState.ClearSession()
		m.UiState.SetMode(state.AuthEmailMode)
		m.values.email = ""
		m.form = huhforms.CreateEmailForm(&m.values.email).WithTheme(m.theme())
		return m, m.form.Init()

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.formMode() {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	// Remaining messages (cursor blinks etc.) belong to the active form
	if m.formMode() && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

// updateForm forwards a message to the active form and reacts to
// completion or abort
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.handleFormCompleted()
	case huh.StateAborted:
		return m.handleFormAborted()
	}
	return m, cmd
}

// handleFormCompleted dispatches on which form just finished
func (m Model) handleFormCompleted() (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.AuthEmailMode:
		return m, m.requestCode(m.values.email)

	case state.AuthCodeMode:
		return m, m.verifyCode(m.AppState.PendingEmail(), m.values.code)

	case state.RegisterFormMode:
		event := m.AppState.CurrentEvent()
		if event == nil {
			m.UiState.SetMode(state.BrowseMode)
			m.form = nil
			return m, nil
		}
		return m, m.register(event.ID, m.values.tier)

	case state.ConfirmPayMode:
		registration := m.AppState.OwnRegistration()
		if registration == nil || !m.values.confirm {
			// Declined: the registration stays pending
			m.UiState.SetMode(state.DetailMode)
			m.form = nil
			return m, nil
		}
		return m, m.confirmPayment(registration.ID)

	case state.RefundConfirmMode:
		ticket := m.AppState.TicketAt(m.UiState.SelectedTicket())
		if ticket == nil || !m.values.confirm {
			m.UiState.SetMode(state.TicketsMode)
			m.form = nil
			return m, nil
		}
		return m, m.refund(ticket.ID)
	}

	m.form = nil
	return m, nil
}

// handleFormAborted returns to the mode behind the aborted form
func (m Model) handleFormAborted() (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.AuthEmailMode:
		return m, tea.Quit

	case state.AuthCodeMode:
		m.UiState.SetMode(state.AuthEmailMode)
		m.values.email = ""
		m.form = huhforms.CreateEmailForm(&m.values.email).WithTheme(m.theme())
		return m, m.form.Init()

	case state.RegisterFormMode, state.ConfirmPayMode:
		m.UiState.SetMode(state.DetailMode)
		m.form = nil
		return m, nil

	case state.RefundConfirmMode:
		m.UiState.SetMode(state.TicketsMode)
		m.form = nil
		return m, nil
	}

	m.form = nil
	return m, nil
}

// handleCodeRequested swaps in the code entry form once a code exists
func (m Model) handleCodeRequested(msg codeRequestedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Set(state.LevelError, msg.err.Error())
		m.values.email = ""
		m.form = huhforms.CreateEmailForm(&m.values.email).WithTheme(m.theme())
		return m, m.form.Init()
	}

	m.AppState.SetPendingEmail(msg.email)
	// No mail transport is wired up, so the code is shown in-app
	m.Notifications.Set(state.LevelInfo, "Sign-in code: "+msg.code)
	m.UiState.SetMode(state.AuthCodeMode)
	m.values.code = ""
	m.form = huhforms.CreateCodeForm(&m.values.code, msg.email).WithTheme(m.theme())
	return m, m.form.Init()
}

// handleSession finishes sign-in and loads the browse screen
func (m Model) handleSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Set(state.LevelError, msg.err.Error())
		m.values.code = ""
		m.form = huhforms.CreateCodeForm(&m.values.code, m.AppState.PendingEmail()).WithTheme(m.theme())
		return m, m.form.Init()
	}

	m.AppState.SetSession(msg.session)
	m.Notifications.Set(state.LevelInfo, "Signed in as "+msg.session.Email)
	m.UiState.SetMode(state.BrowseMode)
	m.form = nil
	categoryID := m.AppState.CategoryIDAt(m.UiState.SelectedCategory())
	return m, tea.Batch(m.loadEvents(categoryID), m.loadTickets())
}

// handleRegistered reacts to a registration attempt
func (m Model) handleRegistered(msg registeredMsg) (tea.Model, tea.Cmd) {
	m.form = nil
	if msg.err != nil {
		m.Notifications.Set(state.LevelError, msg.err.Error())
		m.UiState.SetMode(state.DetailMode)
		return m, nil
	}

	event := m.AppState.CurrentEvent()

	if msg.registration.Status == models.RegistrationConfirmed {
		m.Notifications.Set(state.LevelInfo, "Ticket confirmed")
		m.UiState.SetMode(state.DetailMode)
		if event != nil {
			return m, tea.Batch(m.loadEvent(event.ID), m.loadTickets())
		}
		return m, m.loadTickets()
	}

	// Paid tier: registration is pending until payment is confirmed
	m.AppState.SetCurrentEvent(event, msg.registration)
	m.UiState.SetMode(state.ConfirmPayMode)
	m.values.confirm = false
	m.form = huhforms.CreateConfirmPaymentForm(msg.registration, &m.values.confirm).WithTheme(m.theme())
	return m, m.form.Init()
}

// handleKey dispatches navigation keys outside form modes
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Any keypress dismisses the current notification
	m.Notifications.Clear()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Logout):
		return m, m.logout()
	case key.Matches(msg, m.keymap.ShowHelp):
		if m.UiState.Mode() != state.HelpMode {
			m.UiState.SetMode(state.HelpMode)
			return m, nil
		}
	}

	switch m.UiState.Mode() {
	case state.BrowseMode:
		return m.handleBrowseKey(msg)
	case state.DetailMode:
		return m.handleDetailKey(msg)
	case state.TicketsMode:
		return m.handleTicketsKey(msg)
	case state.HelpMode:
		// Any key closes help
		if m.UiState.Tab() == state.TicketsTab {
			m.UiState.SetMode(state.TicketsMode)
		} else {
			m.UiState.SetMode(state.BrowseMode)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.PrevCategory):
		return m.selectCategory(m.UiState.SelectedCategory() - 1)
	case key.Matches(msg, m.keymap.NextCategory):
		return m.selectCategory(m.UiState.SelectedCategory() + 1)

	case key.Matches(msg, m.keymap.PrevEvent):
		m.UiState.SetSelectedEvent(m.UiState.SelectedEvent()-1, len(m.AppState.Events()))
		m.UiState.EnsureVisible(m.UiState.SelectedEvent(), m.visibleRows())
		return m, nil
	case key.Matches(msg, m.keymap.NextEvent):
		m.UiState.SetSelectedEvent(m.UiState.SelectedEvent()+1, len(m.AppState.Events()))
		m.UiState.EnsureVisible(m.UiState.SelectedEvent(), m.visibleRows())
		return m, nil

	case key.Matches(msg, m.keymap.ViewEvent):
		if summary := m.AppState.EventAt(m.UiState.SelectedEvent()); summary != nil {
			return m, m.loadEvent(summary.ID)
		}
		return m, nil

	case key.Matches(msg, m.keymap.MyTickets):
		m.UiState.SetTab(state.TicketsTab)
		m.UiState.SetMode(state.TicketsMode)
		return m, m.loadTickets()
	}
	return m, nil
}

// selectCategory moves the pill selection and activates the target
// pill, which triggers the filtered reload
func (m Model) selectCategory(idx int) (tea.Model, tea.Cmd) {
	categories := m.AppState.Categories()
	m.UiState.SetSelectedCategory(idx, len(categories))

	onSelect := func(pillIdx int) func() tea.Cmd {
		return func() tea.Cmd {
			return m.loadEvents(m.AppState.CategoryIDAt(pillIdx))
		}
	}
	pills := components.CategoryPills(categories, m.UiState.SelectedCategory(), onSelect)
	return m, pills[m.UiState.SelectedCategory()].Activate()
}

func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.AppState.ClearCurrentEvent()
		m.UiState.SetMode(state.BrowseMode)
		return m, nil

	case key.Matches(msg, m.keymap.Register):
		event := m.AppState.CurrentEvent()
		if event == nil {
			return m, nil
		}

		if own := m.AppState.OwnRegistration(); own != nil {
			if own.Status == models.RegistrationPending {
				// Already holding a seat: offer payment instead
				m.UiState.SetMode(state.ConfirmPayMode)
				m.values.confirm = false
				m.form = huhforms.CreateConfirmPaymentForm(own, &m.values.confirm).WithTheme(m.theme())
				return m, m.form.Init()
			}
			m.Notifications.Set(state.LevelWarning, "You already have a ticket for this event")
			return m, nil
		}

		if event.Status() != models.EventActive {
			m.Notifications.Set(state.LevelWarning, "This event is not open for registration")
			return m, nil
		}

		m.UiState.SetMode(state.RegisterFormMode)
		m.values.tier = ""
		m.form = huhforms.CreateRegisterForm(event, &m.values.tier).WithTheme(m.theme())
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) handleTicketsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.MyTickets):
		m.UiState.SetTab(state.BrowseTab)
		m.UiState.SetMode(state.BrowseMode)
		return m, nil

	case key.Matches(msg, m.keymap.PrevEvent):
		m.UiState.SetSelectedTicket(m.UiState.SelectedTicket()-1, len(m.AppState.Tickets()))
		m.UiState.EnsureVisible(m.UiState.SelectedTicket(), m.visibleRows())
		return m, nil
	case key.Matches(msg, m.keymap.NextEvent):
		m.UiState.SetSelectedTicket(m.UiState.SelectedTicket()+1, len(m.AppState.Tickets()))
		m.UiState.EnsureVisible(m.UiState.SelectedTicket(), m.visibleRows())
		return m, nil

	case key.Matches(msg, m.keymap.ViewEvent):
		if ticket := m.AppState.TicketAt(m.UiState.SelectedTicket()); ticket != nil {
			m.UiState.SetTab(state.BrowseTab)
			return m, m.loadEvent(ticket.EventID)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Refund):
		ticket := m.AppState.TicketAt(m.UiState.SelectedTicket())
		if ticket == nil {
			return m, nil
		}
		if ticket.Status != models.RegistrationConfirmed {
			m.Notifications.Set(state.LevelWarning, "Only confirmed tickets can be refunded")
			return m, nil
		}
		m.UiState.SetMode(state.RefundConfirmMode)
		m.values.confirm = false
		m.form = huhforms.CreateRefundForm(ticket, &m.values.confirm).WithTheme(m.theme())
		return m, m.form.Init()

	case key.Matches(msg, m.keymap.Abandon):
		// Abandon a pending registration and release the seat
		ticket := m.AppState.TicketAt(m.UiState.SelectedTicket())
		if ticket == nil || ticket.Status != models.RegistrationPending {
			return m, nil
		}
		return m, m.failPayment(ticket.ID)
	}
	return m, nil
}
