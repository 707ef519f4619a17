package colors

// Monochrome returns a grayscale scheme for low-color terminals
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:  "#FFFFFF",
		Confirm: "#D4D4D4",
		Warn:    "#A3A3A3",
		Danger:  "#FFFFFF",

		CardBorder:     "#525252",
		CardBackground: "",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#262626",
		PillBackground: "#E5E5E5",

		Title:  "#FFFFFF",
		Subtle: "#737373",
		Normal: "#D4D4D4",

		StatusBarBg:   "#171717",
		StatusBarText: "#A3A3A3",

		InfoFg:    "#171717",
		InfoBg:    "#E5E5E5",
		WarningFg: "#171717",
		WarningBg: "#A3A3A3",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#404040",
	}
}
