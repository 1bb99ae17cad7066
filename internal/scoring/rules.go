package scoring

import (
	"strings"

	"github.com/abhisek/discern/internal/catalog"
)

// prefixPlaceholder in a TokenRule pattern is replaced by the answer's
// question-id prefix before matching.
const prefixPlaceholder = "{prefix}"

// TokenRule maps a categorical answer token onto a score.
type TokenRule struct {
	// Pattern is matched against the token. "{prefix}" expands to the
	// answer's question-id prefix.
	Pattern string

	// HasPrefix matches any token starting with Pattern instead of an exact
	// match. The remainder of the token names another catalog prefix.
	HasPrefix bool

	// Score is the contribution to the answer's own domain.
	Score float64

	// CrossScore, when non-zero, is also credited to the pull stream of the
	// domain named by the token remainder (forced-choice "rather do X").
	CrossScore float64
}

func (r TokenRule) match(prefix, token string) (rest string, ok bool) {
	pattern := strings.ReplaceAll(r.Pattern, prefixPlaceholder, prefix)
	if r.HasPrefix {
		if strings.HasPrefix(token, pattern) {
			return strings.TrimPrefix(token, pattern), true
		}
		return "", false
	}
	return "", token == pattern
}

// UnmatchedPolicy decides what happens to an answer whose token matches no
// rule.
type UnmatchedPolicy int

const (
	// CountAsZero keeps the answer with a contribution of 0, lowering the
	// domain mean.
	CountAsZero UnmatchedPolicy = iota

	// Exclude drops the answer from the domain entirely.
	Exclude
)

// RuleSet is the declarative scoring table of one module.
type RuleSet struct {
	Module    catalog.Module
	Tokens    []TokenRule
	Unmatched UnmatchedPolicy

	// CostIndex, when non-zero, routes answers whose question index equals
	// it to the cost stream instead of the pull stream.
	CostIndex int
}

// StrengthsRules scores the created-strengths module.
var StrengthsRules = RuleSet{
	Module: catalog.Strengths,
	Tokens: []TokenRule{
		{Pattern: "{prefix}", Score: 5},
		{Pattern: "{prefix}-high", Score: 5},
		{Pattern: "{prefix}-med", Score: 4},
		{Pattern: "{prefix}-low", Score: 2},
		{Pattern: "{prefix}-none", Score: 1},
		{Pattern: "other", Score: 1},
		{Pattern: "other-", HasPrefix: true, Score: 2},
	},
	Unmatched: CountAsZero,
}

// GiftsRules scores the spiritual-gifts module. Gift options use literal
// evidence tokens, not prefixed ones.
var GiftsRules = RuleSet{
	Module: catalog.Gifts,
	Tokens: []TokenRule{
		{Pattern: "high", Score: 5},
		{Pattern: "med", Score: 3.5},
		{Pattern: "low", Score: 2},
		{Pattern: "none", Score: 1},
	},
	Unmatched: Exclude,
}

// VocationalRules scores the vocational module.
var VocationalRules = RuleSet{
	Module: catalog.Vocational,
	Tokens: []TokenRule{
		{Pattern: "{prefix}-high", Score: 5},
		{Pattern: "{prefix}", Score: 5},
		{Pattern: "other-", HasPrefix: true, Score: 2, CrossScore: 4},
		{Pattern: "other", Score: 2},
	},
	Unmatched: CountAsZero,
	CostIndex: catalog.CostQuestionIndex,
}
