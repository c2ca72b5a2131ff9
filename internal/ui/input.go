package ui

import "github.com/charmbracelet/bubbles/textinput"

// newInput builds the cosmetic input line. Printable runes append, backspace
// removes the last rune, and enter only ever clears; there are no submit
// side effects.
func newInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Type here..."
	input.Focus()
	return input
}
