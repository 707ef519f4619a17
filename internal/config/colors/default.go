package colors

// Default returns the standard agora color scheme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent:  "#7C3AED", // Violet
		Confirm: "#10B981", // Emerald
		Warn:    "#F59E0B", // Amber
		Danger:  "#EF4444", // Red

		CardBorder:     "#4B5563",
		CardBackground: "",
		SelectedBorder: "#7C3AED",
		SelectedBg:     "#2E1065",
		PillBackground: "#D1FAE5", // Light green

		Title:  "#F9FAFB",
		Subtle: "#9CA3AF",
		Normal: "#E5E7EB",

		StatusBarBg:   "#1F2937",
		StatusBarText: "#D1D5DB",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#3B82F6",
		WarningFg: "#1F2937",
		WarningBg: "#F59E0B",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#EF4444",
	}
}
