package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderContent renders the right-hand region: info strip, two side-by-side
// content panes, and the input box at the bottom.
func (m Model) renderContent() string {
	width := m.width - MenuWidth
	bodyHeight := m.height - ChromeHeight
	contentHeight := bodyHeight - InfoHeight - InputHeight

	page := m.SelectedPage()

	info := m.renderTitledBox("Info", wrapText(page.Info, width-4), width, InfoHeight, false)

	leftWidth := width / 2
	rightWidth := width - leftWidth
	left := m.renderTitledBox("Left Box", wrapText(page.Left, leftWidth-4), leftWidth, contentHeight, false)
	right := m.renderTitledBox("Right Box", wrapText(page.Right, rightWidth-4), rightWidth, contentHeight, false)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	inputLine := m.theme.Styles().WarningText.Bold(true).Render(m.input.View())
	input := m.renderTitledBox("Input", inputLine, width, InputHeight, false)

	return lipgloss.JoinVertical(lipgloss.Left, info, content, input)
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐. When focused is true, uses the focus border color
// and focus background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := width - 2 // Account for left and right border chars
	if innerWidth < 0 {
		innerWidth = 0
	}
	titleLen := len(title)
	leftPad := (innerWidth - titleLen - 2) / 2 // -2 for spaces around title
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 0 {
		rightPad = 0
	}

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	// Build the bottom border
	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	// Style for side borders and content background
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)

	// Split content into lines and pad to fill the box
	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders
	if boxHeight < 0 {
		boxHeight = 0
	}

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// wrapText word-wraps plain text to the given width and indents each line by
// one space so it doesn't touch the box border.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		wordWidth := len([]rune(word))
		if lineWidth == 0 {
			line.WriteString(word)
			lineWidth = wordWidth
			continue
		}
		if lineWidth+1+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = wordWidth
			continue
		}
		line.WriteString(" ")
		line.WriteString(word)
		lineWidth += 1 + wordWidth
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}

	for i := range lines {
		lines[i] = " " + lines[i]
	}
	return strings.Join(lines, "\n")
}
