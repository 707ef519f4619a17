package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/agora-events/agora/internal/models"
)

// AllCategoriesLabel is the synthetic first pill that clears the filter
const AllCategoriesLabel = "All"

// CategoryPills builds the pill row for the browse screen.
// Index 0 is the synthetic "All" pill; category pills follow in the
// order given. selectedIdx marks the active pill.
func CategoryPills(categories []*models.Category, selectedIdx int, onSelect func(idx int) func() tea.Cmd) []Pill {
	pills := make([]Pill, 0, len(categories)+1)

	all := Pill{
		Label:  AllCategoriesLabel,
		Icon:   GlyphIcon{Name: "ticket"},
		Active: selectedIdx == 0,
	}
	if onSelect != nil {
		all.OnPress = onSelect(0)
	}
	pills = append(pills, all)

	for i, category := range categories {
		pill := Pill{
			Label:      category.Name,
			Icon:       GlyphIcon{Name: category.Glyph},
			Active:     selectedIdx == i+1,
			Background: category.Color,
		}
		if onSelect != nil {
			pill.OnPress = onSelect(i + 1)
		}
		pills = append(pills, pill)
	}

	return pills
}

// RenderCategoryBar renders the pill row as a single line
func RenderCategoryBar(pills []Pill) string {
	rendered := make([]string, 0, len(pills)*2)
	for i, pill := range pills {
		if i > 0 {
			rendered = append(rendered, " ")
		}
		rendered = append(rendered, pill.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}
