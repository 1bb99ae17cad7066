package prompts

import "strings"

const (
	notProvided   = "[not provided]"
	noneExtracted = "[none extracted]"
	none          = "[none]"
)

// Reflections are the free-response answers a prompt may quote.
type Reflections struct {
	Passions string
	Feedback string
	Dreams   string
	Threads  string
	Anything string
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return s
}

// ThemeExtraction builds the prompt asking for a JSON array of themes.
func ThemeExtraction(r Reflections) string {
	var b strings.Builder

	b.WriteString("Extract key themes from these free-text reflections. Identify recurring patterns, significant images, and threads worth noting.\n\n")

	sections := []struct {
		title, text string
	}{
		{"PASSIONS & BURDENS", r.Passions},
		{"FEEDBACK FROM OTHERS", r.Feedback},
		{"DREAMS & IMAGINATION", r.Dreams},
		{"UNFINISHED THREADS", r.Threads},
		{"ANYTHING ELSE", r.Anything},
	}
	for _, s := range sections {
		b.WriteString(s.title)
		b.WriteString(":\n")
		b.WriteString(orNotProvided(s.text))
		b.WriteString("\n\n")
	}

	b.WriteString(`---

Return a JSON array of 3-7 theme strings, each a brief phrase capturing a pattern you notice. Focus on:
- Recurring concerns or passions
- Self-perception vs others' feedback (alignment or tension)
- Images of fruitfulness
- Unresolved questions or directions

Return ONLY the JSON array, no other text. Example:
["drawn to young people in transition", "tension between creative desires and practical pressures", "repeated feedback about bringing calm to chaos"]`)

	return b.String()
}
