package scoring

import (
	"fmt"
	"math"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
)

// Scores maps every catalog identifier of a module to its rounded mean.
type Scores map[string]float64

// streams collects contributions per domain and stream.
type streams struct {
	pull map[string][]float64
	cost map[string][]float64
}

func collect(rs RuleSet, answers []assessment.Answer) streams {
	s := streams{
		pull: make(map[string][]float64),
		cost: make(map[string][]float64),
	}
	for _, ans := range answers {
		for _, c := range rs.Normalize(ans) {
			if c.Stream == StreamCost {
				s.cost[c.Domain] = append(s.cost[c.Domain], c.Score)
			} else {
				s.pull[c.Domain] = append(s.pull[c.Domain], c.Score)
			}
		}
	}
	return s
}

func (s streams) empty() bool {
	return len(s.pull) == 0 && len(s.cost) == 0
}

// means averages each catalog entry's contributions. Entries without any
// contribution get fallback.
func means(m catalog.Module, contributions map[string][]float64, fallback float64) Scores {
	out := make(Scores, len(catalog.Entries(m)))
	for _, e := range catalog.Entries(m) {
		vals := contributions[e.ID]
		if len(vals) == 0 {
			out[e.ID] = fallback
			continue
		}
		var sum float64
		for _, v := range vals {
			sum += v
		}
		out[e.ID] = Round(sum / float64(len(vals)))
	}
	return out
}

// Round rounds to one decimal place. Classification thresholds are applied
// to the rounded value.
func Round(v float64) float64 {
	return math.Round(v*10) / 10
}

// defaultCostScore is the cost mean of a direction with no cost answers.
const defaultCostScore = 3.0

// RawScores computes the per-domain means of a scored module.
func RawScores(rs RuleSet, answers []assessment.Answer) Scores {
	return means(rs.Module, collect(rs, answers).pull, 0)
}

// ScoreStrengths scores and classifies strengths answers. A module with
// no scoreable answers has all-zero scores and empty rankings.
func ScoreStrengths(answers []assessment.Answer) *StrengthsResult {
	s := collect(StrengthsRules, answers)
	raw := means(catalog.Strengths, s.pull, 0)
	if s.empty() {
		return &StrengthsResult{
			TopStrengths:       []StrengthScore{},
			SecondaryStrengths: []StrengthScore{},
			CostlyZones:        []StrengthScore{},
			RawScores:          raw,
		}
	}
	return ClassifyStrengths(raw)
}

// ScoreGifts scores and classifies spiritual-gift answers.
func ScoreGifts(answers []assessment.Answer) *GiftsResult {
	return ClassifyGifts(RawScores(GiftsRules, answers))
}

// ScoreVocational scores and classifies vocational answers, averaging
// pull and cost questions independently.
func ScoreVocational(answers []assessment.Answer) *VocationalResult {
	s := collect(VocationalRules, answers)
	pull := means(catalog.Vocational, s.pull, 0)
	cost := means(catalog.Vocational, s.cost, defaultCostScore)
	if s.empty() {
		return &VocationalResult{
			SecondaryDirections: []VocationalGravity{},
			PrayerfulHolds:      []VocationalGravity{},
			RawScores:           pull,
			CostScores:          cost,
		}
	}
	return ClassifyVocational(pull, cost)
}

// ScoreModule scores one module's progress. It is a pure function of the
// recorded answers. Freetext has no scores and yields an error.
func ScoreModule(module catalog.Module, progress *assessment.Progress) (Result, error) {
	var answers []assessment.Answer
	if progress != nil {
		answers = progress.Answers
	}

	res := Result{Module: module}
	switch module {
	case catalog.Strengths:
		res.Strengths = ScoreStrengths(answers)
	case catalog.Gifts:
		res.Gifts = ScoreGifts(answers)
	case catalog.Vocational:
		res.Vocational = ScoreVocational(answers)
	default:
		return Result{}, fmt.Errorf("module %q is not scored", module)
	}
	return res, nil
}
