package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, muted so long reports stay readable.
var (
	Primary   = lipgloss.Color("#7C3AED") // Violet
	Secondary = lipgloss.Color("#0D9488") // Teal
	Accent    = lipgloss.Color("#D97706") // Amber
	Success   = lipgloss.Color("#16A34A") // Green
	Error     = lipgloss.Color("#E11D48") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#475569") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Strong = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Moderate = lipgloss.NewStyle().
			Foreground(Accent)

	Weak = lipgloss.NewStyle().
		Foreground(TextDim)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	BarFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	BarEmpty = lipgloss.NewStyle().
			Foreground(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	TableBorder = lipgloss.NewStyle().
			Foreground(Border)
)

// Tier picks the style for a classification label: the top tier of each
// scale is Strong, the middle Moderate, anything else Weak. Request
// outcomes ("ok", "failed") reuse the same palette.
func Tier(label string) lipgloss.Style {
	switch label {
	case "high", "strong", "ok":
		return Strong
	case "moderate":
		return Moderate
	case "failed":
		return Failure
	}
	return Weak
}
