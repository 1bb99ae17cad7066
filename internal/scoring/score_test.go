package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
)

func progressOf(m catalog.Module, answers ...assessment.Answer) *assessment.Progress {
	return &assessment.Progress{UserID: "u1", Module: m, Answers: answers, Completed: true}
}

func TestScoreModule_RawScoreKeysAndBounds(t *testing.T) {
	inputs := map[catalog.Module]*assessment.Progress{
		catalog.Strengths:  progressOf(catalog.Strengths, num("sp-1", 5), tok("ad-1", "ad-low"), num("zz-1", 4)),
		catalog.Gifts:      progressOf(catalog.Gifts, tok("wis-1", "high"), num("tea-1", 9)),
		catalog.Vocational: progressOf(catalog.Vocational, num("fd-1", 5), tok("ls-2", "other-jm")),
	}

	for m, p := range inputs {
		t.Run(string(m), func(t *testing.T) {
			res, err := ScoreModule(m, p)
			require.NoError(t, err)
			raw := res.RawScores()

			entries := catalog.Entries(m)
			require.Len(t, raw, len(entries))
			for _, e := range entries {
				score, ok := raw[e.ID]
				require.True(t, ok, "missing key %q", e.ID)
				assert.GreaterOrEqual(t, score, MinScore)
				assert.LessOrEqual(t, score, MaxScore)
			}
		})
	}
}

func TestScoreModule_FreetextNotScored(t *testing.T) {
	_, err := ScoreModule(catalog.Freetext, progressOf(catalog.Freetext))
	require.Error(t, err)
}

func TestScoreStrengths_WorkedExample(t *testing.T) {
	res := ScoreStrengths([]assessment.Answer{num("sp-1", 5), num("sp-2", 3), num("sp-3", 1)})
	assert.Equal(t, 3.0, res.RawScores["strategic-patterning"])
}

func TestScoreStrengths_OtherTokenScoresOne(t *testing.T) {
	res := ScoreStrengths([]assessment.Answer{tok("sp-1", "other")})
	assert.Equal(t, 1.0, res.RawScores["strategic-patterning"])
}

func TestScoreGifts_OtherTokenExcluded(t *testing.T) {
	res := ScoreGifts([]assessment.Answer{num("wis-1", 5), tok("wis-2", "other")})
	assert.Equal(t, 5.0, res.RawScores["wisdom"])

	res = ScoreGifts([]assessment.Answer{tok("wis-2", "other")})
	assert.Equal(t, 0.0, res.RawScores["wisdom"])
}

func TestScoreVocational_WorkedExample(t *testing.T) {
	res := ScoreVocational([]assessment.Answer{num("fd-1", 5), num("fd-2", 4), num("fd-3", 2)})

	assert.Equal(t, 4.5, res.RawScores["formation-discipleship"])
	assert.Equal(t, 2.0, res.CostScores["formation-discipleship"])

	require.NotNil(t, res.PrimaryGravity)
	assert.Equal(t, "formation-discipleship", res.PrimaryGravity.Domain)
	assert.Equal(t, PullStrong, res.PrimaryGravity.Pull)
	assert.Equal(t, CostUncertain, res.PrimaryGravity.CostTolerance)
}

func TestScoreVocational_CostDefaultsToThree(t *testing.T) {
	res := ScoreVocational([]assessment.Answer{num("fd-1", 5)})
	assert.Equal(t, 3.0, res.CostScores["formation-discipleship"])
	require.NotNil(t, res.PrimaryGravity)
	assert.Equal(t, CostModerate, res.PrimaryGravity.CostTolerance)
}

func TestScoreModule_EmptyModule(t *testing.T) {
	for _, m := range catalog.ScoredModules {
		res, err := ScoreModule(m, progressOf(m))
		require.NoError(t, err)
		for id, score := range res.RawScores() {
			assert.Zero(t, score, "%s/%s", m, id)
		}
	}

	s := ScoreStrengths(nil)
	assert.Empty(t, s.TopStrengths)
	assert.Empty(t, s.SecondaryStrengths)
	assert.Empty(t, s.CostlyZones)

	g := ScoreGifts(nil)
	assert.Empty(t, g.PrimaryGifts)
	assert.Empty(t, g.EmergingGifts)

	v := ScoreVocational(nil)
	assert.Nil(t, v.PrimaryGravity)
	assert.Empty(t, v.SecondaryDirections)
	assert.Empty(t, v.PrayerfulHolds)
}

func TestScore_Monotonic(t *testing.T) {
	modules := []struct {
		module catalog.Module
		target string
		domain string
		others []assessment.Answer
	}{
		{catalog.Strengths, "sp-1", "strategic-patterning", []assessment.Answer{num("sp-2", 3), tok("sp-3", "sp-low")}},
		{catalog.Gifts, "wis-1", "wisdom", []assessment.Answer{tok("wis-2", "med")}},
		{catalog.Vocational, "fd-1", "formation-discipleship", []assessment.Answer{num("fd-2", 2), tok("ls-2", "other-fd")}},
	}

	for _, mm := range modules {
		t.Run(string(mm.module), func(t *testing.T) {
			prev := -1.0
			for v := 1.0; v <= 5.0; v += 0.5 {
				answers := append([]assessment.Answer{num(mm.target, v)}, mm.others...)
				res, err := ScoreModule(mm.module, progressOf(mm.module, answers...))
				require.NoError(t, err)
				got := res.RawScores()[mm.domain]
				assert.GreaterOrEqual(t, got, prev, "value %v", v)
				prev = got
			}
		})
	}
}

func TestClassifyStrengths_Partitions(t *testing.T) {
	raw := Scores{}
	for i, e := range catalog.Entries(catalog.Strengths) {
		// Descending by catalog order: 5.0, 4.7, ... distinct values.
		raw[e.ID] = Round(5.0 - float64(i)*0.3)
	}
	res := ClassifyStrengths(raw)

	require.Len(t, res.TopStrengths, 5)
	require.Len(t, res.SecondaryStrengths, 5)
	require.Len(t, res.CostlyZones, 3)

	entries := catalog.Entries(catalog.Strengths)
	assert.Equal(t, entries[0].ID, res.TopStrengths[0].Domain)
	assert.Equal(t, entries[5].ID, res.SecondaryStrengths[0].Domain)
	// Costly zones are the bottom three, lowest first.
	assert.Equal(t, entries[13].ID, res.CostlyZones[0].Domain)
	assert.Equal(t, entries[12].ID, res.CostlyZones[1].Domain)
	assert.Equal(t, entries[11].ID, res.CostlyZones[2].Domain)

	assert.Equal(t, EnergyHigh, res.TopStrengths[0].Energy)
	assert.Equal(t, EnergyLow, res.CostlyZones[0].Energy)
}

func TestClassifyStrengths_TiesKeepCatalogOrder(t *testing.T) {
	raw := Scores{}
	for _, e := range catalog.Entries(catalog.Strengths) {
		raw[e.ID] = 3
	}
	res := ClassifyStrengths(raw)
	entries := catalog.Entries(catalog.Strengths)
	for i, s := range res.TopStrengths {
		assert.Equal(t, entries[i].ID, s.Domain)
	}
}

func TestThresholdsInclusiveAtLowerBound(t *testing.T) {
	assert.Equal(t, EnergyHigh, EnergyFor(4.0))
	assert.Equal(t, EnergyModerate, EnergyFor(2.5))
	assert.Equal(t, EnergyLow, EnergyFor(2.4))

	assert.Equal(t, EvidenceStrong, EvidenceFor(4.0))
	assert.Equal(t, EvidenceModerate, EvidenceFor(3.0))
	assert.Equal(t, EvidenceEmerging, EvidenceFor(2.9))

	assert.Equal(t, PullStrong, PullFor(4.0))
	assert.Equal(t, PullModerate, PullFor(3.0))
	assert.Equal(t, PullHolding, PullFor(2.9))

	assert.Equal(t, CostHigh, CostToleranceFor(4.0))
	assert.Equal(t, CostModerate, CostToleranceFor(2.5))
	assert.Equal(t, CostUncertain, CostToleranceFor(2.4))
}

func TestClassifyGifts_FloorAndCaps(t *testing.T) {
	raw := Scores{
		"wisdom":      2.4,
		"knowledge":   2.5,
		"faith":       4.5,
		"healing":     4.2,
		"miracles":    3.9,
		"prophecy":    3.1,
		"tongues":     3.0,
		"teaching":    2.8,
		"shepherding": 2.6,
		"service":     2.7,
		"giving":      1.0,
	}
	res := ClassifyGifts(raw)

	require.Len(t, res.PrimaryGifts, 4)
	assert.Equal(t, "faith", res.PrimaryGifts[0].Gift)
	assert.Equal(t, "healing", res.PrimaryGifts[1].Gift)
	assert.Equal(t, "miracles", res.PrimaryGifts[2].Gift)
	assert.Equal(t, "prophecy", res.PrimaryGifts[3].Gift)

	require.Len(t, res.EmergingGifts, 3)
	assert.Equal(t, "teaching", res.EmergingGifts[0].Gift)
	assert.Equal(t, "service", res.EmergingGifts[1].Gift)
	assert.Equal(t, "shepherding", res.EmergingGifts[2].Gift)

	for _, g := range append(res.PrimaryGifts, res.EmergingGifts...) {
		assert.GreaterOrEqual(t, raw[g.Gift], 2.5, g.Gift)
		assert.NotNil(t, g.Patterns)
	}
}

func TestClassifyVocational_PrimaryAndHolds(t *testing.T) {
	pull := Scores{
		"formation-discipleship": 2.0,
		"leadership-stewardship": 4.2,
		"justice-mercy":          2.9,
		"cultural-creation":      3.5,
		"pioneering-mission":     1.0,
	}
	cost := Scores{
		"formation-discipleship": 3,
		"leadership-stewardship": 4,
		"justice-mercy":          2,
		"cultural-creation":      3,
		"pioneering-mission":     3,
	}
	res := ClassifyVocational(pull, cost)

	require.NotNil(t, res.PrimaryGravity)
	assert.Equal(t, "leadership-stewardship", res.PrimaryGravity.Domain)
	assert.Equal(t, CostHigh, res.PrimaryGravity.CostTolerance)

	// sorted[1:3] = cultural-creation (moderate), justice-mercy (holding).
	require.Len(t, res.SecondaryDirections, 1)
	assert.Equal(t, "cultural-creation", res.SecondaryDirections[0].Domain)

	var holds []string
	for _, h := range res.PrayerfulHolds {
		holds = append(holds, h.Domain)
		assert.Less(t, h.Score, 3.0)
	}
	assert.Equal(t, []string{"justice-mercy", "formation-discipleship", "pioneering-mission"}, holds)
}

func TestScoreModule_Idempotent(t *testing.T) {
	p := progressOf(catalog.Vocational,
		num("fd-1", 4), tok("fd-2", "fd-high"), num("fd-3", 3),
		tok("ls-2", "other-cc"), num("cc-1", 5), num("pm-3", 1),
	)

	first, err := ScoreModule(catalog.Vocational, p)
	require.NoError(t, err)
	second, err := ScoreModule(catalog.Vocational, p)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRoundBeforeClassification(t *testing.T) {
	// 3.96 rounds to 4.0, which is tiered high.
	res := ScoreStrengths([]assessment.Answer{
		num("sp-1", 3.92), num("sp-2", 4.0),
	})
	assert.Equal(t, 4.0, res.RawScores["strategic-patterning"])
	assert.Equal(t, EnergyHigh, res.TopStrengths[0].Energy)
}
