package llm

import (
	"regexp"
	"strings"
)

// ModelCost holds per-million-token pricing for a model in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64

	// CachedInputPerMTok prices prompt-cache reads. Zero means cached
	// tokens are billed as regular input.
	CachedInputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// CostOf prices one response, billing cache reads at the cached rate.
func (c ModelCost) CostOf(u Usage) float64 {
	if c.CachedInputPerMTok == 0 || u.CachedInputTokens == 0 {
		return c.Cost(u.InputTokens, u.OutputTokens)
	}
	fresh := u.InputTokens - u.CachedInputTokens
	return c.Cost(fresh, u.OutputTokens) +
		float64(u.CachedInputTokens)*c.CachedInputPerMTok/1_000_000
}

var dateSuffix = regexp.MustCompile(`-\d{8}$`)

// LookupCost returns the pricing for a model ID, or nil if unknown.
// Gateway prefixes ("anthropic/...") and dated snapshots fall back to
// the base model's price.
func LookupCost(modelID string) *ModelCost {
	id := modelID
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	for _, key := range []string{id, dateSuffix.ReplaceAllString(id, ""), strings.ReplaceAll(id, ".", "-")} {
		if c, ok := modelCosts[key]; ok {
			return &c
		}
	}
	return nil
}

// modelCosts covers the models the providers resolve to by default or by
// alias. Sourced from models.dev, last updated 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5":  {1, 5, 0.1},
	"claude-sonnet-4":   {3, 15, 0.3},
	"claude-sonnet-4-5": {3, 15, 0.3},
	"claude-opus-4-1":   {15, 75, 1.5},
	"claude-opus-4-5":   {5, 25, 0.5},

	// OpenAI
	"gpt-4o":       {2.5, 10, 1.25},
	"gpt-4o-mini":  {0.15, 0.6, 0.075},
	"gpt-4.1":      {2, 8, 0.5},
	"gpt-4.1-mini": {0.4, 1.6, 0.1},
	"gpt-4.1-nano": {0.1, 0.4, 0.025},
	"gpt-5":        {1.25, 10, 0.125},
	"gpt-5-mini":   {0.25, 2, 0.025},

	// Google (Gemini)
	"gemini-2.0-flash":       {0.1, 0.4, 0.025},
	"gemini-2.0-flash-exp":   {0, 0, 0},
	"gemini-2.5-flash":       {0.3, 2.5, 0.075},
	"gemini-2.5-flash-lite":  {0.1, 0.4, 0.025},
	"gemini-2.5-pro":         {1.25, 10, 0.31},
	"gemini-3-flash-preview": {0.5, 3, 0},
	"gemini-3-pro-preview":   {2, 12, 0},
}
