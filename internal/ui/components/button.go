package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/blossom/internal/ui/theme"
)

// Button is a single-line styled button.
type Button struct {
	Label   string
	Icon    string
	Focused bool
	Style   lipgloss.Style
	Focus   lipgloss.Style
}

// NewButton creates a button drawn with style, and with focus when focused.
func NewButton(icon, label string, style, focus lipgloss.Style) Button {
	return Button{
		Label: label,
		Icon:  icon,
		Style: style,
		Focus: focus,
	}
}

// YesButton is the affirmative button.
func YesButton(label string) Button {
	return NewButton("♥", label, theme.ButtonYes, theme.ButtonYesFocused)
}

// NoButton is the rejection button. It looks the same focused or not.
func NoButton(label string) Button {
	return NewButton("☹", label, theme.ButtonNo, theme.ButtonNo)
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Icon != "" {
		label = b.Icon + " " + label
	}
	if b.Focused {
		return b.Focus.Render(label)
	}
	return b.Style.Render(label)
}

// Width returns the rendered width in cells.
func (b Button) Width() int {
	return lipgloss.Width(b.View())
}
