package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	AuthEmailMode    Mode = iota // Entering the sign-in email
	AuthCodeMode                 // Entering the emailed sign-in code
	BrowseMode                   // Default navigation over the event list
	DetailMode                   // Viewing a single event
	RegisterFormMode             // Picking a ticket tier with huh
	ConfirmPayMode               // Confirming payment for a pending registration
	TicketsMode                  // Viewing own registrations
	RefundConfirmMode            // Confirming a refund
	HelpMode                     // Displaying help screen
)

// Tab indices for the top-level tab bar
const (
	BrowseTab = iota
	TicketsTab
)

// UIState manages the user interface state.
// This includes navigation (category/event selection), terminal
// dimensions, and the current interaction mode.
type UIState struct {
	// mode is the current interaction mode
	mode Mode

	// tab is the selected top-level tab (browse or tickets)
	tab int

	// selectedCategory indexes the category pill row, 0 = All
	selectedCategory int

	// selectedEvent indexes the visible event list
	selectedEvent int

	// selectedTicket indexes the own-registrations list
	selectedTicket int

	// width and height are the terminal dimensions in characters
	width  int
	height int

	// scrollOffset is the index of the first visible list entry
	scrollOffset int
}

// NewUIState creates a new UIState in the email entry mode.
func NewUIState() *UIState {
	return &UIState{mode: AuthEmailMode}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) Tab() int { return s.tab }

// SetTab switches the top-level tab and resets list selection
func (s *UIState) SetTab(tab int) {
	if tab != s.tab {
		s.scrollOffset = 0
	}
	s.tab = tab
}

func (s *UIState) SelectedCategory() int { return s.selectedCategory }

// SetSelectedCategory clamps the pill selection to [0, count] where
// index 0 is the All pill
func (s *UIState) SetSelectedCategory(idx, categoryCount int) {
	if idx < 0 {
		idx = 0
	}
	if idx > categoryCount {
		idx = categoryCount
	}
	if idx != s.selectedCategory {
		s.selectedEvent = 0
		s.scrollOffset = 0
	}
	s.selectedCategory = idx
}

func (s *UIState) SelectedEvent() int { return s.selectedEvent }

// SetSelectedEvent clamps the event selection to the visible list
func (s *UIState) SetSelectedEvent(idx, eventCount int) {
	if eventCount == 0 {
		s.selectedEvent = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= eventCount {
		idx = eventCount - 1
	}
	s.selectedEvent = idx
}

func (s *UIState) SelectedTicket() int { return s.selectedTicket }

// SetSelectedTicket clamps the ticket selection to the list
func (s *UIState) SetSelectedTicket(idx, ticketCount int) {
	if ticketCount == 0 {
		s.selectedTicket = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= ticketCount {
		idx = ticketCount - 1
	}
	s.selectedTicket = idx
}

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal dimensions from a window size message
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) ScrollOffset() int { return s.scrollOffset }

// EnsureVisible adjusts the scroll offset so the selection stays on
// screen given how many rows fit
func (s *UIState) EnsureVisible(selected, visibleRows int) {
	if visibleRows <= 0 {
		return
	}
	if selected < s.scrollOffset {
		s.scrollOffset = selected
	}
	if selected >= s.scrollOffset+visibleRows {
		s.scrollOffset = selected - visibleRows + 1
	}
}
