package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/agora-events/agora/internal/app"
	"github.com/agora-events/agora/internal/config"
	"github.com/agora-events/agora/internal/tui/components"
	"github.com/agora-events/agora/internal/tui/huhforms"
	"github.com/agora-events/agora/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context
	app *app.App
	cfg *config.Config

	AppState      *state.AppState
	UiState       *state.UIState
	Notifications *state.NotificationState

	keymap KeyMap

	// form is the active huh form, nil outside form modes
	form *huh.Form

	// values backs the active form's fields. It lives behind a pointer
	// so huh's writes survive the model being copied on every update.
	values *formValues
}

// formValues holds the bindable targets for every huh form
type formValues struct {
	email   string
	code    string
	tier    string
	confirm bool
}

// InitialModel creates the TUI model and initializes styles from config
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		ctx:           ctx,
		app:           application,
		cfg:           cfg,
		AppState:      state.NewAppState(),
		UiState:       state.NewUIState(),
		Notifications: state.NewNotificationState(),
		keymap:        NewKeyMap(cfg.KeyMappings),
		values:        &formValues{},
	}
	m.form = huhforms.CreateEmailForm(&m.values.email).
		WithTheme(huhforms.CreateAgoraTheme(cfg.ColorScheme))
	return m
}

// Init starts the email form and loads the category pills
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.loadCategories())
}

// theme returns the huh theme for new forms
func (m Model) theme() huh.Theme {
	return huhforms.CreateAgoraTheme(m.cfg.ColorScheme)
}

// keys returns the configured key mappings
func (m Model) keys() config.KeyMappings {
	return m.cfg.KeyMappings
}

// visibleRows reports how many list cards fit in the current height.
// Cards are 5 rows tall with their border.
func (m Model) visibleRows() int {
	return max((m.UiState.Height()-6)/5, 1)
}
