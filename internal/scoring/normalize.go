package scoring

import (
	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
)

// Stream separates the two independently averaged score streams of a
// domain. Only the vocational module produces cost contributions.
type Stream int

const (
	StreamPull Stream = iota
	StreamCost
)

// MinScore and MaxScore bound every contribution and mean.
const (
	MinScore = 0.0
	MaxScore = 5.0
)

// Contribution is one answer's score credited to one catalog entry.
type Contribution struct {
	Domain string
	Score  float64
	Stream Stream
}

// Normalize maps one answer onto its score contributions. It returns nil
// when the answer is unscoreable: an unknown prefix, or an unmatched token
// under the Exclude policy. It never fails.
func (rs RuleSet) Normalize(ans assessment.Answer) []Contribution {
	prefix := ans.Prefix()
	entry, ok := catalog.Resolve(rs.Module, prefix)
	if !ok {
		return nil
	}

	stream := StreamPull
	if rs.CostIndex > 0 {
		if idx, ok := ans.Index(); ok && idx == rs.CostIndex {
			stream = StreamCost
		}
	}

	own := Contribution{Domain: entry.ID, Stream: stream}

	if n, ok := ans.Value.AsNumeric(); ok {
		own.Score = clamp(n)
		return []Contribution{own}
	}

	token, ok := ans.Value.AsToken()
	if !ok {
		// Multi-select values carry no score under any module's rules.
		return rs.unmatched(own)
	}

	for _, rule := range rs.Tokens {
		rest, ok := rule.match(prefix, token)
		if !ok {
			continue
		}
		own.Score = rule.Score
		out := []Contribution{own}
		if rule.CrossScore != 0 {
			if other, ok := catalog.Resolve(rs.Module, rest); ok {
				out = append(out, Contribution{
					Domain: other.ID,
					Score:  rule.CrossScore,
					Stream: StreamPull,
				})
			}
		}
		return out
	}

	return rs.unmatched(own)
}

func (rs RuleSet) unmatched(own Contribution) []Contribution {
	if rs.Unmatched == Exclude {
		return nil
	}
	own.Score = 0
	return []Contribution{own}
}

func clamp(v float64) float64 {
	switch {
	case v < MinScore:
		return MinScore
	case v > MaxScore:
		return MaxScore
	default:
		return v
	}
}
