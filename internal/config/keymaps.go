package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevEvent    string `yaml:"prev_event"`
	NextEvent    string `yaml:"next_event"`
	PrevCategory string `yaml:"prev_category"`
	NextCategory string `yaml:"next_category"`

	// Events
	ViewEvent string `yaml:"view_event"`
	Register  string `yaml:"register"`

	// Registrations
	MyTickets string `yaml:"my_tickets"`
	Refund    string `yaml:"refund"`

	// Other
	Back     string `yaml:"back"`
	ShowHelp string `yaml:"show_help"`
	Logout   string `yaml:"logout"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevEvent:    "k",
		NextEvent:    "j",
		PrevCategory: "h",
		NextCategory: "l",

		ViewEvent: "enter",
		Register:  "r",

		MyTickets: "t",
		Refund:    "R",

		Back:     "esc",
		ShowHelp: "?",
		Logout:   "ctrl+l",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PrevEvent == "" {
		k.PrevEvent = defaults.PrevEvent
	}
	if k.NextEvent == "" {
		k.NextEvent = defaults.NextEvent
	}
	if k.PrevCategory == "" {
		k.PrevCategory = defaults.PrevCategory
	}
	if k.NextCategory == "" {
		k.NextCategory = defaults.NextCategory
	}
	if k.ViewEvent == "" {
		k.ViewEvent = defaults.ViewEvent
	}
	if k.Register == "" {
		k.Register = defaults.Register
	}
	if k.MyTickets == "" {
		k.MyTickets = defaults.MyTickets
	}
	if k.Refund == "" {
		k.Refund = defaults.Refund
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Logout == "" {
		k.Logout = defaults.Logout
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
