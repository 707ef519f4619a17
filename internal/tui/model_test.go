package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/agora-events/agora/internal/app"
	"github.com/agora-events/agora/internal/config"
	"github.com/agora-events/agora/internal/database"
	"github.com/agora-events/agora/internal/models"
	"github.com/agora-events/agora/internal/services/event"
	"github.com/agora-events/agora/internal/testutil"
	"github.com/agora-events/agora/internal/tui/state"
)

// setupModel builds a model backed by an in-memory database with one
// seeded category and event
func setupModel(t *testing.T) (Model, *app.App) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	application := app.New(repo, "test-salt")

	categoryID := testutil.CreateTestCategory(t, db, "Music")
	if _, err := application.EventService.CreateEvent(context.Background(), event.CreateEventRequest{
		Title:      "Synthwave Night",
		Organizer:  "org@example.com",
		Venue:      "Warehouse 9",
		StartsAt:   time.Now().Add(48 * time.Hour),
		CategoryID: categoryID,
		Tiers:      []event.TierRequest{{Name: "General", PriceCents: 0}},
	}); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}

	return InitialModel(context.Background(), application, cfg), application
}

// signIn fast-forwards the model past authentication
func signIn(t *testing.T, m Model) Model {
	t.Helper()

	session := &models.Session{
		Token:     "tok",
		Email:     "amelia@example.com",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	updated, _ := m.Update(sessionMsg{session: session})
	signed := updated.(Model)
	if signed.UiState.Mode() != state.BrowseMode {
		t.Fatalf("mode after sign-in = %v, want BrowseMode", signed.UiState.Mode())
	}
	return signed
}

// runCmd executes a command and feeds its message back into the model
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func TestInitialModel_StartsAtEmailEntry(t *testing.T) {
	m, _ := setupModel(t)

	if m.UiState.Mode() != state.AuthEmailMode {
		t.Errorf("initial mode = %v, want AuthEmailMode", m.UiState.Mode())
	}
	if m.form == nil {
		t.Error("initial model should carry the email form")
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := setupModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	if m.UiState.Width() != 100 || m.UiState.Height() != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.UiState.Width(), m.UiState.Height())
	}
}

func TestSignInLoadsEvents(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)

	// The sign-in batch loads events; simulate its arrival directly
	m = runCmd(t, m, m.loadEvents(0))

	if len(m.AppState.Events()) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(m.AppState.Events()))
	}
	if m.AppState.Events()[0].Title != "Synthwave Night" {
		t.Errorf("event title = %q", m.AppState.Events()[0].Title)
	}
}

func TestCategoryPillActivationFilters(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)
	m = runCmd(t, m, m.loadCategories())
	m = runCmd(t, m, m.loadEvents(0))

	// Move to the Music pill: activation reloads the filtered list
	updated, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "l", Code: 'l'}))
	m = updated.(Model)

	if m.UiState.SelectedCategory() != 1 {
		t.Fatalf("selected category = %d, want 1", m.UiState.SelectedCategory())
	}
	m = runCmd(t, m, cmd)
	if len(m.AppState.Events()) != 1 {
		t.Errorf("filtered events = %d, want 1 (event is in Music)", len(m.AppState.Events()))
	}

	// Selecting past the last pill clamps and still reloads
	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Text: "l", Code: 'l'}))
	m = updated.(Model)
	if m.UiState.SelectedCategory() != 1 {
		t.Errorf("selected category after clamp = %d, want 1", m.UiState.SelectedCategory())
	}
}

func TestOpenEventDetail(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)
	m = runCmd(t, m, m.loadEvents(0))

	updated, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	m = runCmd(t, updated.(Model), cmd)

	if m.UiState.Mode() != state.DetailMode {
		t.Errorf("mode = %v, want DetailMode", m.UiState.Mode())
	}
	if m.AppState.CurrentEvent() == nil {
		t.Fatal("current event should be loaded")
	}
	if m.AppState.CurrentEvent().Title != "Synthwave Night" {
		t.Errorf("loaded title = %q", m.AppState.CurrentEvent().Title)
	}
}

func TestDetailBackReturnsToBrowse(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)
	m = runCmd(t, m, m.loadEvents(0))

	updated, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	m = runCmd(t, updated.(Model), cmd)

	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc}))
	m = updated.(Model)

	if m.UiState.Mode() != state.BrowseMode {
		t.Errorf("mode after back = %v, want BrowseMode", m.UiState.Mode())
	}
	if m.AppState.CurrentEvent() != nil {
		t.Error("current event should be cleared on back")
	}
}

func TestTicketsTab(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)

	updated, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "t", Code: 't'}))
	m = runCmd(t, updated.(Model), cmd)

	if m.UiState.Mode() != state.TicketsMode {
		t.Errorf("mode = %v, want TicketsMode", m.UiState.Mode())
	}
	if m.UiState.Tab() != state.TicketsTab {
		t.Errorf("tab = %d, want TicketsTab", m.UiState.Tab())
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)

	updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Text: "?", Code: '?'}))
	m = updated.(Model)
	if m.UiState.Mode() != state.HelpMode {
		t.Fatalf("mode = %v, want HelpMode", m.UiState.Mode())
	}

	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc}))
	m = updated.(Model)
	if m.UiState.Mode() != state.BrowseMode {
		t.Errorf("mode after closing help = %v, want BrowseMode", m.UiState.Mode())
	}
}

func TestCodeRequestedShowsCodeAndSwitchesMode(t *testing.T) {
	m, _ := setupModel(t)

	updated, _ := m.Update(codeRequestedMsg{email: "amelia@example.com", code: "123456"})
	m = updated.(Model)

	if m.UiState.Mode() != state.AuthCodeMode {
		t.Errorf("mode = %v, want AuthCodeMode", m.UiState.Mode())
	}
	if m.AppState.PendingEmail() != "amelia@example.com" {
		t.Errorf("pending email = %q", m.AppState.PendingEmail())
	}
	notification := m.Notifications.Current()
	if notification == nil || notification.Level != state.LevelInfo {
		t.Fatal("an info notification with the code should be set")
	}
}

func TestLoggedOutResetsToEmailEntry(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)

	updated, _ := m.Update(loggedOutMsg{})
	m = updated.(Model)

	if m.UiState.Mode() != state.AuthEmailMode {
		t.Errorf("mode = %v, want AuthEmailMode", m.UiState.Mode())
	}
	if m.AppState.Session() != nil {
		t.Error("session should be cleared")
	}
	if m.form == nil {
		t.Error("email form should be recreated")
	}
}

func TestErrorMessagesBecomeNotifications(t *testing.T) {
	m, _ := setupModel(t)
	m = signIn(t, m)

	updated, _ := m.Update(eventsLoadedMsg{err: context.DeadlineExceeded})
	m = updated.(Model)

	notification := m.Notifications.Current()
	if notification == nil || notification.Level != state.LevelError {
		t.Fatal("a load error should surface as an error notification")
	}

	// The next keypress dismisses it
	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Text: "j", Code: 'j'}))
	m = updated.(Model)
	if m.Notifications.Current() != nil {
		t.Error("keypress should clear the notification")
	}
}

func TestViewRendersWithoutSize(t *testing.T) {
	m, _ := setupModel(t)

	view := m.View()
	if view.Content != "Loading..." {
		t.Errorf("View() before sizing = %q, want Loading...", view.Content)
	}
}
