package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: rose petals on warm paper
var (
	Primary   = lipgloss.Color("#E11D48") // Rose
	Secondary = lipgloss.Color("#FB7185") // Light rose
	Accent    = lipgloss.Color("#F43F5E") // Pink
	Bark      = lipgloss.Color("#4A403A") // Bonsai trunk
	Text      = lipgloss.Color("#881337") // Deep rose
	TextDim   = lipgloss.Color("#FDA4AF") // Faded rose
	Muted     = lipgloss.Color("#9CA3AF") // Gray
	BgDark    = lipgloss.Color("#FDFBF7") // Paper
	BgCard    = lipgloss.Color("#FFFFFF") // White
	Border    = lipgloss.Color("#FECDD3") // Blush
)

// BgHex is the paper background as a hex string, for colour blending.
const BgHex = "#FDFBF7"

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Bold(true).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Photo = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)
)

// Components
var (
	ButtonYes = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgCard).
			Bold(true).
			Padding(0, 2)

	ButtonYesFocused = ButtonYes.
				Background(Accent)

	ButtonNo = lipgloss.NewStyle().
			Background(lipgloss.Color("#F3F4F6")).
			Foreground(Muted).
			Padding(0, 2)

	CounterValue = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center)

	CounterLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Align(lipgloss.Center)
)
