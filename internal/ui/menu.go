package ui

import (
	"strings"
)

// renderMenu renders the fixed-width navigation column. The selected entry is
// highlighted with a "> " marker; the others carry their category color.
func (m Model) renderMenu() string {
	styles := m.theme.Styles()
	innerWidth := MenuWidth - 2 // borders
	bodyHeight := m.height - ChromeHeight

	lines := make([]string, 0, len(m.entries))
	for i, entry := range m.entries {
		label := truncate(entry.Label, innerWidth-2)
		if i == m.selected {
			lines = append(lines, styles.Selected.Render("> "+label))
			continue
		}
		lines = append(lines, styles.CategoryStyle(entry.Category).Render("  "+label))
	}

	return m.renderTitledBox("Menu", strings.Join(lines, "\n"), MenuWidth, bodyHeight, true)
}
