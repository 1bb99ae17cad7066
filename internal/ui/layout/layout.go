package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/discern/internal/ui/theme"
)

// Hint is a follow-up command suggested under a rendered block.
type Hint struct {
	Command     string
	Description string
}

// RenderHeader renders a title line with an optional dimmed subtitle.
func RenderHeader(title, subtitle string) string {
	out := theme.Title.Render(title)
	if subtitle != "" {
		out += "\n" + theme.Subtitle.Render(subtitle)
	}
	return out
}

// RenderSection renders a heading followed by its body. Empty bodies are
// shown as a dimmed placeholder.
func RenderSection(heading, body string) string {
	if strings.TrimSpace(body) == "" {
		body = theme.Hint.Render("none")
	}
	return theme.Heading.Render(heading) + "\n" + body
}

// RenderCard boxes content.
func RenderCard(content string) string {
	return theme.Card.Render(content)
}

// RenderHints renders follow-up commands, one per line.
func RenderHints(hints []Hint) string {
	lines := make([]string, 0, len(hints))
	for _, h := range hints {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Command)+
				"  "+theme.Hint.Render(h.Description))
	}
	return strings.Join(lines, "\n")
}

// Join stacks blocks with a blank line between them, skipping empty ones.
func Join(blocks ...string) string {
	var kept []string
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
