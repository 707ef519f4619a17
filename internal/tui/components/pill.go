package components

import (
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// DefaultPillBackground is the background used when a pill does not
// specify its own color.
const DefaultPillBackground = "#D1FAE5"

// pillForeground keeps the label readable on the light pill backgrounds.
const pillForeground = "#1F2937"

// iconCellWidth is the fixed number of terminal cells an icon occupies,
// so pills line up regardless of glyph width.
const iconCellWidth = 2

// fallbackGlyph is rendered when an icon name has no registered glyph.
const fallbackGlyph = "?"

// pillGlyphs maps icon names to their terminal glyphs. Category rows
// store the name, not the glyph, so themes can restyle without touching
// the database.
var pillGlyphs = map[string]string{
	"music":  "♪",
	"tech":   "⌨",
	"sports": "⚽",
	"arts":   "🎨",
	"food":   "🍜",
	"ticket": "🎟",
	"star":   "★",
}

// PillIcon is the icon slot of a pill: either a named glyph resolved
// from the registry, or content the caller has already rendered.
type PillIcon interface {
	pillIcon()
}

// GlyphIcon names a glyph in the registry. Unknown names fall back to a
// placeholder rather than failing the render.
type GlyphIcon struct {
	Name string
}

func (GlyphIcon) pillIcon() {}

// NodeIcon carries pre-rendered content. It is passed through to the
// pill output untouched.
type NodeIcon struct {
	Content string
}

func (NodeIcon) pillIcon() {}

// Pill is a selectable category chip. It is a pure function of its
// fields: rendering holds no state and causes no side effects.
type Pill struct {
	Label      string
	Icon       PillIcon
	Active     bool
	Background string
	OnPress    func() tea.Cmd
}

// NewPill creates a pill with the default background, inactive.
func NewPill(label string, icon PillIcon) Pill {
	return Pill{Label: label, Icon: icon}
}

// AltText describes the icon for contexts that cannot show it, such as
// the status bar. Pre-rendered icons describe themselves.
func (p Pill) AltText() string {
	if _, ok := p.Icon.(GlyphIcon); ok {
		return p.Label + " icon"
	}
	return ""
}

// Activate invokes the press handler. A pill with no handler ignores
// activation. Active only affects appearance, never activation.
func (p Pill) Activate() tea.Cmd {
	if p.OnPress == nil {
		return nil
	}
	return p.OnPress()
}

// View renders the pill. Inactive pills render faint; that is the only
// difference between the two states.
func (p Pill) View() string {
	background := p.Background
	if background == "" {
		background = DefaultPillBackground
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pillForeground)).
		Background(lipgloss.Color(background)).
		Padding(0, 1)

	if !p.Active {
		style = style.Faint(true)
	}

	return style.Render(p.iconCell() + " " + displayLabel(p.Label))
}

// iconCell resolves the icon to a fixed-width cell. Pre-rendered
// content is used as-is.
func (p Pill) iconCell() string {
	switch icon := p.Icon.(type) {
	case GlyphIcon:
		glyph, ok := pillGlyphs[strings.ToLower(icon.Name)]
		if !ok {
			glyph = fallbackGlyph
		}
		return lipgloss.NewStyle().Width(iconCellWidth).Render(glyph)
	case NodeIcon:
		return icon.Content
	default:
		return lipgloss.NewStyle().Width(iconCellWidth).Render(fallbackGlyph)
	}
}

// displayLabel capitalizes the first rune. Display only, the label
// itself is never changed.
func displayLabel(label string) string {
	runes := []rune(label)
	if len(runes) == 0 {
		return label
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
