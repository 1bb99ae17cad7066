package scoring

import "github.com/abhisek/discern/internal/catalog"

// StrengthScore is one ranked strength domain.
type StrengthScore struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
	Energy Energy  `json:"energy"`
}

// StrengthsResult is the classified strengths module.
type StrengthsResult struct {
	TopStrengths       []StrengthScore `json:"topStrengths"`
	SecondaryStrengths []StrengthScore `json:"secondaryStrengths"`
	CostlyZones        []StrengthScore `json:"costlyZones"`
	RawScores          Scores          `json:"rawScores"`
}

// GiftIndicator is one gift with enough evidence to mention.
type GiftIndicator struct {
	Gift             string   `json:"gift"`
	Score            float64  `json:"score"`
	EvidenceStrength Evidence `json:"evidenceStrength"`
	Patterns         []string `json:"patterns"`
}

// GiftsResult is the classified spiritual-gifts module.
type GiftsResult struct {
	PrimaryGifts  []GiftIndicator `json:"primaryGifts"`
	EmergingGifts []GiftIndicator `json:"emergingGifts"`
	RawScores     Scores          `json:"rawScores"`
}

// VocationalGravity is one ranked vocational direction.
type VocationalGravity struct {
	Domain        string        `json:"domain"`
	Score         float64       `json:"score"`
	CostScore     float64       `json:"costScore"`
	Pull          Pull          `json:"pull"`
	CostTolerance CostTolerance `json:"costTolerance"`
}

// VocationalResult is the classified vocational module. PrimaryGravity is
// nil only when no vocational answer could be scored.
type VocationalResult struct {
	PrimaryGravity      *VocationalGravity  `json:"primaryGravity"`
	SecondaryDirections []VocationalGravity `json:"secondaryDirections"`
	PrayerfulHolds      []VocationalGravity `json:"prayerfulHolds"`
	RawScores           Scores              `json:"rawScores"`
	CostScores          Scores              `json:"costScores"`
}

// Result is the classified output of one scored module. Exactly one of the
// module fields is set.
type Result struct {
	Module     catalog.Module    `json:"module"`
	Strengths  *StrengthsResult  `json:"strengths,omitempty"`
	Gifts      *GiftsResult      `json:"gifts,omitempty"`
	Vocational *VocationalResult `json:"vocational,omitempty"`
}

// RawScores returns the raw-score mapping of whichever module r holds.
func (r Result) RawScores() Scores {
	switch {
	case r.Strengths != nil:
		return r.Strengths.RawScores
	case r.Gifts != nil:
		return r.Gifts.RawScores
	case r.Vocational != nil:
		return r.Vocational.RawScores
	}
	return nil
}
