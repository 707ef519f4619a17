package theme

import "github.com/agora-events/agora/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Confirm        string
	Warn           string
	Danger         string
	SelectedBorder string
	SelectedBg     string
	CardBorder     string
	CardBg         string
	PillBg         string
	StatusBarBg    string
	StatusBarText  string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Confirm = colors.Confirm
	Warn = colors.Warn
	Danger = colors.Danger
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	PillBg = colors.PillBackground
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
