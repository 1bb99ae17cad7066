package freetext

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/abhisek/discern/internal/llm"
	"github.com/abhisek/discern/internal/prompts"
)

// ThemeResult is the outcome of theme extraction: either a list of themes
// or no themes at all. Extraction never fails outright.
type ThemeResult struct {
	themes []string
	found  bool
}

// Themes is a result carrying extracted phrases.
func Themes(themes ...string) ThemeResult {
	return ThemeResult{themes: themes, found: true}
}

// NoThemes is the result when nothing could be extracted.
func NoThemes() ThemeResult {
	return ThemeResult{}
}

// Found reports whether extraction produced a theme list.
func (r ThemeResult) Found() bool { return r.found }

// List returns the extracted themes. It is never nil.
func (r ThemeResult) List() []string {
	if r.themes == nil {
		return []string{}
	}
	out := make([]string, len(r.themes))
	copy(out, r.themes)
	return out
}

// themeSchema is what a well-formed extraction reply must look like.
var themeSchema = &llm.Schema{
	Name:        "freetext-themes",
	Description: "Short theme phrases extracted from reflections",
	Definition: map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	},
}

// Extractor asks the completion capability for recurring themes.
type Extractor struct {
	provider  llm.Provider
	maxTokens int
	logger    *slog.Logger
}

// NewExtractor creates an Extractor. maxTokens <= 0 uses 500.
func NewExtractor(provider llm.Provider, maxTokens int, logger *slog.Logger) *Extractor {
	if maxTokens <= 0 {
		maxTokens = 500
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{provider: provider, maxTokens: maxTokens, logger: logger}
}

// Extract returns the themes found in rec. A record without any core
// reflection skips the call; any failure degrades to NoThemes.
func (e *Extractor) Extract(ctx context.Context, rec Record) ThemeResult {
	if !rec.HasContent() {
		return NoThemes()
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeThemes)
	text, err := llm.Complete(ctx, e.provider, "", prompts.ThemeExtraction(rec.Reflections()), e.maxTokens)
	if err != nil {
		e.logger.WarnContext(ctx, "theme extraction failed", "error", err)
		return NoThemes()
	}

	themes, err := parseThemes(text)
	if err != nil {
		e.logger.WarnContext(ctx, "theme extraction returned unusable content", "error", err)
		return NoThemes()
	}
	return Themes(themes...)
}

// parseThemes accepts a JSON array of strings, optionally wrapped in a
// markdown code fence.
func parseThemes(text string) ([]string, error) {
	raw := json.RawMessage(stripFence(text))
	if err := llm.Validate(themeSchema, raw); err != nil {
		return nil, err
	}

	var themes []string
	if err := json.Unmarshal(raw, &themes); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(themes))
	for _, t := range themes {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// Drop an info string such as "json".
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
