package models

// Category represents a browsable event category, rendered as a pill
// in the filter bar. Glyph names an icon in the pill glyph registry.
type Category struct {
	ID    int
	Name  string
	Glyph string
	Color string // Hex background color for the pill (e.g. "#D1FAE5")
}
