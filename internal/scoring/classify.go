package scoring

import (
	"cmp"
	"slices"

	"github.com/abhisek/discern/internal/catalog"
)

// Energy is the energy tier of a strength domain.
type Energy string

const (
	EnergyHigh     Energy = "high"
	EnergyModerate Energy = "moderate"
	EnergyLow      Energy = "low"
)

// Evidence is the evidence tier of a spiritual gift.
type Evidence string

const (
	EvidenceStrong   Evidence = "strong"
	EvidenceModerate Evidence = "moderate"
	EvidenceEmerging Evidence = "emerging"
)

// Pull is the attraction tier of a vocational direction.
type Pull string

const (
	PullStrong   Pull = "strong"
	PullModerate Pull = "moderate"
	PullHolding  Pull = "holding"
)

// CostTolerance is the willingness tier for a direction's costs.
type CostTolerance string

const (
	CostHigh      CostTolerance = "high"
	CostModerate  CostTolerance = "moderate"
	CostUncertain CostTolerance = "uncertain"
)

// Slice sizes and thresholds. Lower bounds are inclusive.
const (
	topStrengthsCount       = 5
	secondaryStrengthsCount = 5
	costlyZonesCount        = 3
	primaryGiftsCount       = 4
	emergingGiftsCount      = 3
	secondaryDirectionCount = 2

	giftFloor = 2.5
)

// EnergyFor tiers a strength score.
func EnergyFor(score float64) Energy {
	switch {
	case score >= 4:
		return EnergyHigh
	case score >= 2.5:
		return EnergyModerate
	default:
		return EnergyLow
	}
}

// EvidenceFor tiers a gift score at or above the 2.5 floor.
func EvidenceFor(score float64) Evidence {
	switch {
	case score >= 4:
		return EvidenceStrong
	case score >= 3:
		return EvidenceModerate
	default:
		return EvidenceEmerging
	}
}

// PullFor tiers a direction's pull score.
func PullFor(score float64) Pull {
	switch {
	case score >= 4:
		return PullStrong
	case score >= 3:
		return PullModerate
	default:
		return PullHolding
	}
}

// CostToleranceFor tiers a direction's cost score.
func CostToleranceFor(score float64) CostTolerance {
	switch {
	case score >= 4:
		return CostHigh
	case score >= 2.5:
		return CostModerate
	default:
		return CostUncertain
	}
}

// ranked pairs a catalog identifier with its score in catalog order.
type ranked struct {
	id    string
	score float64
}

// rank sorts a module's scores descending. Ties keep catalog order.
func rank(m catalog.Module, scores Scores) []ranked {
	entries := catalog.Entries(m)
	out := make([]ranked, 0, len(entries))
	for _, e := range entries {
		out = append(out, ranked{id: e.ID, score: scores[e.ID]})
	}
	slices.SortStableFunc(out, func(a, b ranked) int {
		return cmp.Compare(b.score, a.score)
	})
	return out
}

// ClassifyStrengths ranks strengths into top, secondary, and costly zones.
func ClassifyStrengths(raw Scores) *StrengthsResult {
	sorted := rank(catalog.Strengths, raw)
	all := make([]StrengthScore, len(sorted))
	for i, r := range sorted {
		all[i] = StrengthScore{Domain: r.id, Score: r.score, Energy: EnergyFor(r.score)}
	}

	res := &StrengthsResult{
		TopStrengths:       window(all, 0, topStrengthsCount),
		SecondaryStrengths: window(all, topStrengthsCount, topStrengthsCount+secondaryStrengthsCount),
		CostlyZones:        []StrengthScore{},
		RawScores:          raw,
	}
	for i := len(all) - 1; i >= 0 && len(res.CostlyZones) < costlyZonesCount; i-- {
		res.CostlyZones = append(res.CostlyZones, all[i])
	}
	return res
}

// ClassifyGifts keeps gifts scoring at least 2.5 and splits them by
// evidence tier.
func ClassifyGifts(raw Scores) *GiftsResult {
	res := &GiftsResult{
		PrimaryGifts:  []GiftIndicator{},
		EmergingGifts: []GiftIndicator{},
		RawScores:     raw,
	}
	for _, r := range rank(catalog.Gifts, raw) {
		if r.score < giftFloor {
			continue
		}
		ind := GiftIndicator{
			Gift:             r.id,
			Score:            r.score,
			EvidenceStrength: EvidenceFor(r.score),
			Patterns:         []string{},
		}
		if ind.EvidenceStrength == EvidenceEmerging {
			if len(res.EmergingGifts) < emergingGiftsCount {
				res.EmergingGifts = append(res.EmergingGifts, ind)
			}
			continue
		}
		if len(res.PrimaryGifts) < primaryGiftsCount {
			res.PrimaryGifts = append(res.PrimaryGifts, ind)
		}
	}
	return res
}

// ClassifyVocational ranks directions by pull and tiers their cost
// tolerance.
func ClassifyVocational(pull, cost Scores) *VocationalResult {
	sorted := rank(catalog.Vocational, pull)
	all := make([]VocationalGravity, len(sorted))
	for i, r := range sorted {
		c, ok := cost[r.id]
		if !ok {
			c = defaultCostScore
		}
		all[i] = VocationalGravity{
			Domain:        r.id,
			Score:         r.score,
			CostScore:     c,
			Pull:          PullFor(r.score),
			CostTolerance: CostToleranceFor(c),
		}
	}

	res := &VocationalResult{
		SecondaryDirections: []VocationalGravity{},
		PrayerfulHolds:      []VocationalGravity{},
		RawScores:           pull,
		CostScores:          cost,
	}
	if len(all) == 0 {
		return res
	}
	primary := all[0]
	res.PrimaryGravity = &primary

	for _, d := range window(all, 1, 1+secondaryDirectionCount) {
		if d.Pull != PullHolding {
			res.SecondaryDirections = append(res.SecondaryDirections, d)
		}
	}
	for _, d := range all {
		if d.Pull == PullHolding {
			res.PrayerfulHolds = append(res.PrayerfulHolds, d)
		}
	}
	return res
}

// window returns a copy of s[from:to] clipped to the slice bounds.
func window[T any](s []T, from, to int) []T {
	from = min(from, len(s))
	to = min(to, len(s))
	out := make([]T, to-from)
	copy(out, s[from:to])
	return out
}
