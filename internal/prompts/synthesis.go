package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/scoring"
)

// DefaultName addresses a user without a display name.
const DefaultName = "Friend"

// SynthesisInput is everything the report prompt embeds. Nil module
// results render as empty sections.
type SynthesisInput struct {
	Name        string
	Strengths   *scoring.StrengthsResult
	Gifts       *scoring.GiftsResult
	Vocational  *scoring.VocationalResult
	Reflections Reflections
	Themes      []string
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinOr(lines []string, sep, empty string) string {
	if len(lines) == 0 {
		return empty
	}
	return strings.Join(lines, sep)
}

func strengthLines(in []scoring.StrengthScore, costly bool) []string {
	var lines []string
	for _, s := range in {
		meta, _ := catalog.StrengthByID(s.Domain)
		if costly {
			lines = append(lines, fmt.Sprintf("%s: %s/5 - %s", meta.Name, score(s.Score), meta.LowEnergyDesc))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s/5 (%s energy) - %s", meta.Name, score(s.Score), s.Energy, meta.Description))
	}
	return lines
}

func primaryGiftLines(in []scoring.GiftIndicator) []string {
	var lines []string
	for _, g := range in {
		meta, _ := catalog.GiftByID(g.Gift)
		lines = append(lines, fmt.Sprintf("%s (%s evidence) - %s\n  Scripture: \"%s\" (%s)",
			meta.Name, g.EvidenceStrength, meta.Description, meta.Scripture, meta.ScriptureRef))
	}
	return lines
}

func emergingGiftLines(in []scoring.GiftIndicator) []string {
	var lines []string
	for _, g := range in {
		meta, _ := catalog.GiftByID(g.Gift)
		lines = append(lines, fmt.Sprintf("%s (emerging) - %s", meta.Name, meta.Description))
	}
	return lines
}

func primaryDirection(g *scoring.VocationalGravity) string {
	if g == nil {
		return none
	}
	meta, _ := catalog.DirectionByID(g.Domain)
	return fmt.Sprintf("%s (%s pull, %s cost tolerance)\n  %s\n  Typical costs: %s",
		meta.Name, g.Pull, g.CostTolerance, meta.Description, strings.Join(meta.TypicalCosts, "; "))
}

func secondaryDirections(in []scoring.VocationalGravity) []string {
	var out []string
	for _, v := range in {
		meta, _ := catalog.DirectionByID(v.Domain)
		out = append(out, fmt.Sprintf("%s (%s pull)", meta.Name, v.Pull))
	}
	return out
}

// Synthesis builds the report-generation prompt. Identical input always
// yields identical text.
func Synthesis(in SynthesisInput) string {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DefaultName
	}

	var (
		strengths, costly      []string
		primaryGifts, emerging []string
		primary                = none
		secondary              []string
	)
	if in.Strengths != nil {
		strengths = strengthLines(in.Strengths.TopStrengths, false)
		costly = strengthLines(in.Strengths.CostlyZones, true)
	}
	if in.Gifts != nil {
		primaryGifts = primaryGiftLines(in.Gifts.PrimaryGifts)
		emerging = emergingGiftLines(in.Gifts.EmergingGifts)
	}
	if in.Vocational != nil {
		primary = primaryDirection(in.Vocational.PrimaryGravity)
		secondary = secondaryDirections(in.Vocational.SecondaryDirections)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a discernment report for %s.\n\n", name)
	b.WriteString("ASSESSMENT DATA:\n\n")

	b.WriteString("== CREATED STRENGTHS ==\n")
	b.WriteString("Top Strengths:\n")
	b.WriteString(joinOr(strengths, "\n", none))
	b.WriteString("\n\nCostly Zones (low energy):\n")
	b.WriteString(joinOr(costly, "\n", none))

	b.WriteString("\n\n== SPIRIT-GIVEN GIFTS ==\n")
	b.WriteString("Primary Gifts (stronger evidence):\n")
	b.WriteString(joinOr(primaryGifts, "\n\n", none))
	b.WriteString("\n\nEmerging Gifts (patterns worth watching):\n")
	b.WriteString(joinOr(emerging, "\n", none))

	b.WriteString("\n\n== VOCATIONAL GRAVITY ==\n")
	b.WriteString("Primary Direction:\n")
	b.WriteString(primary)
	b.WriteString("\n\nSecondary Directions:\n")
	b.WriteString(joinOr(secondary, ", ", none))

	r := in.Reflections
	b.WriteString("\n\n== FREE-TEXT THEMES ==\n")
	fmt.Fprintf(&b, "Passions & Burdens: %s\n\n", orNotProvided(r.Passions))
	fmt.Fprintf(&b, "Feedback from Others: %s\n\n", orNotProvided(r.Feedback))
	fmt.Fprintf(&b, "Dreams & Imagination: %s\n\n", orNotProvided(r.Dreams))
	fmt.Fprintf(&b, "Unfinished Threads: %s\n\n", orNotProvided(r.Threads))
	if strings.TrimSpace(r.Anything) != "" {
		fmt.Fprintf(&b, "Anything Else: %s\n\n", r.Anything)
	}
	fmt.Fprintf(&b, "Extracted Themes: %s", joinOr(in.Themes, ", ", noneExtracted))

	b.WriteString(`

---

Generate a complete discernment report following the structure and guardrails specified. The report should be approximately 1500-2000 words.

Remember:
- This is a discernment aid, not a prophecy
- The person will need prayer, testing, and wise counsel
- Name both alignment and tension honestly
- Include shadow/stewardship warnings where warranted
- End with a question, not an instruction`)

	return b.String()
}
