// Package view renders scores, progress and reports for the terminal.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/report"
	"github.com/abhisek/discern/internal/scoring"
	"github.com/abhisek/discern/internal/ui/components"
	"github.com/abhisek/discern/internal/ui/layout"
	"github.com/abhisek/discern/internal/ui/theme"
)

const barWidth = 20

func name(m catalog.Module, id string) string {
	if e, ok := catalog.Lookup(m, id); ok {
		return e.Name
	}
	return id
}

func score(v float64) string { return fmt.Sprintf("%.1f", v) }

// Result renders one scored module.
func Result(res scoring.Result) string {
	info := res.Module.Info()
	header := layout.RenderHeader(info.Title, info.Description)

	var body string
	switch {
	case res.Strengths != nil:
		body = strengths(res.Strengths)
	case res.Gifts != nil:
		body = gifts(res.Gifts)
	case res.Vocational != nil:
		body = vocational(res.Vocational)
	}
	return layout.Join(header, body, rawScores(res.Module, res.RawScores()))
}

func strengthRows(list []scoring.StrengthScore) [][]string {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{name(catalog.Strengths, s.Domain), score(s.Score), string(s.Energy)})
	}
	return rows
}

func strengths(r *scoring.StrengthsResult) string {
	headers := []string{"Strength", "Score", "Energy"}
	section := func(title string, list []scoring.StrengthScore) string {
		if len(list) == 0 {
			return layout.RenderSection(title, "")
		}
		return layout.RenderSection(title, components.Table(headers, strengthRows(list), 2))
	}
	return layout.Join(
		section("Top strengths", r.TopStrengths),
		section("Secondary strengths", r.SecondaryStrengths),
		section("Costly zones", r.CostlyZones),
	)
}

func gifts(r *scoring.GiftsResult) string {
	headers := []string{"Gift", "Score", "Evidence"}
	section := func(title string, list []scoring.GiftIndicator) string {
		rows := make([][]string, 0, len(list))
		for _, g := range list {
			rows = append(rows, []string{name(catalog.Gifts, g.Gift), score(g.Score), string(g.EvidenceStrength)})
		}
		if len(rows) == 0 {
			return layout.RenderSection(title, "")
		}
		return layout.RenderSection(title, components.Table(headers, rows, 2))
	}
	return layout.Join(
		section("Primary gifts", r.PrimaryGifts),
		section("Emerging gifts", r.EmergingGifts),
	)
}

func vocational(r *scoring.VocationalResult) string {
	var primary string
	if g := r.PrimaryGravity; g != nil {
		d, _ := catalog.DirectionByID(g.Domain)
		primary = fmt.Sprintf("%s  %s pull, %s cost tolerance\n%s",
			theme.Strong.Render(name(catalog.Vocational, g.Domain)),
			theme.Tier(string(g.Pull)).Render(string(g.Pull)),
			theme.Tier(string(g.CostTolerance)).Render(string(g.CostTolerance)),
			theme.Hint.Render(d.Description))
	}

	headers := []string{"Direction", "Pull", "Cost", "Tier"}
	table := func(list []scoring.VocationalGravity) string {
		if len(list) == 0 {
			return ""
		}
		rows := make([][]string, 0, len(list))
		for _, g := range list {
			rows = append(rows, []string{name(catalog.Vocational, g.Domain), score(g.Score), score(g.CostScore), string(g.Pull)})
		}
		return components.Table(headers, rows, 3)
	}
	return layout.Join(
		layout.RenderSection("Primary direction", primary),
		layout.RenderSection("Secondary directions", table(r.SecondaryDirections)),
		layout.RenderSection("Prayerful holds", table(r.PrayerfulHolds)),
	)
}

// rawScores draws a bar per catalog entry, highest first.
func rawScores(m catalog.Module, raw scoring.Scores) string {
	entries := catalog.Entries(m)
	ids := make([]string, 0, len(entries))
	width := 0
	for _, e := range entries {
		ids = append(ids, e.ID)
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool { return raw[ids[i]] > raw[ids[j]] })

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		bar := components.NewScoreBar(name(m, id), raw[id], scoring.MaxScore, barWidth)
		bar.LabelWidth = width
		lines = append(lines, bar.View())
	}
	return layout.RenderSection("All scores", strings.Join(lines, "\n"))
}

// Progress renders a user's per-module progress.
func Progress(list []*assessment.Progress) string {
	byModule := make(map[catalog.Module]*assessment.Progress, len(list))
	for _, p := range list {
		byModule[p.Module] = p
	}

	rows := make([][]string, 0, len(catalog.Modules))
	for _, m := range catalog.Modules {
		status, answers, updated := "not started", "0", "-"
		if p, ok := byModule[m]; ok {
			status = "in progress"
			if p.Completed {
				status = "completed"
			}
			answers = fmt.Sprint(len(p.Answers))
			updated = p.UpdatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{m.Info().Title, status, answers, updated})
	}
	return components.Table([]string{"Module", "Status", "Answers", "Updated"}, rows, -1)
}

// Report renders a generated report with its metadata and themes.
func Report(r *report.Report) string {
	name := r.UserName
	if name == "" {
		name = r.UserID
	}
	header := layout.RenderHeader(
		"Discernment report for "+name,
		fmt.Sprintf("%s · %s · prompt %s · %s", r.GeneratedAt.Local().Format("2006-01-02 15:04"), r.Model, r.PromptVersion, r.ID),
	)

	var themes string
	if list := r.ModuleData.Freetext.ExtractedThemes; len(list) > 0 {
		themes = layout.RenderSection("Themes", theme.Body.Render(strings.Join(list, ", ")))
	}
	return layout.Join(header, themes, theme.Body.Render(r.Content))
}

// Hints renders follow-up commands.
func Hints(hints ...layout.Hint) string {
	return layout.RenderHints(hints)
}
