package config

import "github.com/agora-events/agora/internal/config/colors"

// ColorScheme is re-exported so callers can stay on the config package
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (violet theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a grayscale color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
