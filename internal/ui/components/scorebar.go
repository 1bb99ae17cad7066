package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/discern/internal/ui/theme"
)

// ScoreBar draws a score on a fixed scale as a horizontal bar.
type ScoreBar struct {
	Label      string
	Score      float64
	Max        float64
	Width      int
	LabelWidth int
}

// NewScoreBar creates a bar for a score out of max.
func NewScoreBar(label string, score, max float64, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Max: max, Width: width}
}

// View renders the bar, followed by the score to one decimal.
func (b ScoreBar) View() string {
	var result string

	if b.Label != "" {
		label := b.Label
		if pad := b.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += theme.Body.Render(label) + "  "
	}

	barWidth := b.Width
	if barWidth < 4 {
		barWidth = 4
	}

	var frac float64
	if b.Max > 0 {
		frac = b.Score / b.Max
	}
	filled := int(float64(barWidth)*frac + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.BarFilled.Render(strings.Repeat("█", filled))
	result += theme.BarEmpty.Render(strings.Repeat("░", barWidth-filled))
	result += theme.Subtitle.Render(fmt.Sprintf("  %.1f", b.Score))
	return result
}
