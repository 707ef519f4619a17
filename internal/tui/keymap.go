package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/agora-events/agora/internal/config"
)

// KeyMap holds the resolved key bindings for navigation modes.
// Form modes use huh's own keymap instead.
type KeyMap struct {
	PrevEvent    key.Binding
	NextEvent    key.Binding
	PrevCategory key.Binding
	NextCategory key.Binding
	ViewEvent    key.Binding
	Register     key.Binding
	MyTickets    key.Binding
	Refund       key.Binding
	Abandon      key.Binding
	Back         key.Binding
	ShowHelp     key.Binding
	Logout       key.Binding
	Quit         key.Binding
}

// NewKeyMap builds bindings from the configured key mappings
func NewKeyMap(mappings config.KeyMappings) KeyMap {
	return KeyMap{
		PrevEvent: key.NewBinding(
			key.WithKeys(mappings.PrevEvent, "up"),
			key.WithHelp(mappings.PrevEvent, "up"),
		),
		NextEvent: key.NewBinding(
			key.WithKeys(mappings.NextEvent, "down"),
			key.WithHelp(mappings.NextEvent, "down"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys(mappings.PrevCategory, "left"),
			key.WithHelp(mappings.PrevCategory, "previous category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys(mappings.NextCategory, "right"),
			key.WithHelp(mappings.NextCategory, "next category"),
		),
		ViewEvent: key.NewBinding(
			key.WithKeys(mappings.ViewEvent),
			key.WithHelp(mappings.ViewEvent, "open"),
		),
		Register: key.NewBinding(
			key.WithKeys(mappings.Register),
			key.WithHelp(mappings.Register, "register"),
		),
		MyTickets: key.NewBinding(
			key.WithKeys(mappings.MyTickets),
			key.WithHelp(mappings.MyTickets, "my tickets"),
		),
		Refund: key.NewBinding(
			key.WithKeys(mappings.Refund),
			key.WithHelp(mappings.Refund, "refund"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "abandon pending"),
		),
		Back: key.NewBinding(
			key.WithKeys(mappings.Back),
			key.WithHelp(mappings.Back, "back"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(mappings.ShowHelp),
			key.WithHelp(mappings.ShowHelp, "help"),
		),
		Logout: key.NewBinding(
			key.WithKeys(mappings.Logout),
			key.WithHelp(mappings.Logout, "sign out"),
		),
		Quit: key.NewBinding(
			key.WithKeys(mappings.Quit, "ctrl+c"),
			key.WithHelp(mappings.Quit, "quit"),
		),
	}
}
