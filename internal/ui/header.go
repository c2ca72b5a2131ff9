package ui

// renderHeader renders the one-line status bar: logo, selected page, theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("cityline", styles.Logo),
		bg.Render(m.SelectedEntry().Label, styles.AccentText),
		bg.Render(m.theme.Name, styles.FaintText),
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderHintBar renders the keybinding hints under the dashboard.
func (m Model) renderHintBar() string {
	styles := m.theme.Styles()
	return styles.Header.Width(m.width).Render(m.helpView.View(m.keys))
}
