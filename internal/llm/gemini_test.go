package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema_Themes(t *testing.T) {
	def := map[string]any{
		"type":     "array",
		"minItems": 1,
		"maxItems": float64(6),
		"items":    map[string]any{"type": "string", "description": "a short theme phrase"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeArray {
		t.Fatalf("expected ARRAY type, got %s", schema.Type)
	}
	if schema.Items == nil || schema.Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %+v", schema.Items)
	}
	if schema.Items.Description != "a short theme phrase" {
		t.Fatalf("unexpected item description %q", schema.Items.Description)
	}
	if schema.MinItems == nil || *schema.MinItems != 1 {
		t.Fatalf("expected minItems 1, got %v", schema.MinItems)
	}
	if schema.MaxItems == nil || *schema.MaxItems != 6 {
		t.Fatalf("expected maxItems 6, got %v", schema.MaxItems)
	}
}

func TestBuildGeminiSchema_Object(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gift":     map[string]any{"type": "string"},
			"score":    map[string]any{"type": "number"},
			"evidence": map[string]any{"type": "string", "enum": []any{"strong", "moderate", "emerging"}},
		},
		"required": []any{"gift", "score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["score"].Type != genai.TypeNumber {
		t.Fatalf("expected NUMBER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["evidence"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["evidence"].Enum))
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	candidate := func(reason genai.FinishReason) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: reason}},
		}
	}

	tests := []struct {
		name   string
		result *genai.GenerateContentResponse
		want   string
	}{
		{"stop", candidate(genai.FinishReasonStop), StopEnd},
		{"max tokens", candidate(genai.FinishReasonMaxTokens), StopMaxTokens},
		{"safety", candidate(genai.FinishReasonSafety), StopRefusal},
		{"prohibited", candidate(genai.FinishReasonProhibitedContent), StopRefusal},
		{"no candidates", &genai.GenerateContentResponse{}, StopEnd},
		{"blocked prompt", &genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
		}, StopRefusal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapGeminiStopReason(tt.result); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
