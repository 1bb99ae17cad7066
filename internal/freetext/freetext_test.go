package freetext

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/llm"
)

func freetextProgress(answers ...assessment.Answer) *assessment.Progress {
	return &assessment.Progress{UserID: "u1", Module: catalog.Freetext, Answers: answers, Completed: true}
}

func text(id, v string) assessment.Answer {
	return assessment.Answer{QuestionID: id, Value: assessment.Token(v)}
}

func TestHarvest(t *testing.T) {
	p := freetextProgress(
		text(catalog.QuestionPassions, "  caring for refugees \n"),
		text(catalog.QuestionFeedback, "people say I'm calm"),
		assessment.Answer{QuestionID: catalog.QuestionDreams, Value: assessment.MultiToken("a school", "a garden")},
		assessment.Answer{QuestionID: catalog.QuestionThreads, Value: assessment.Numeric(3)},
		text(catalog.QuestionAnything, "I paint"),
		text("ft-unknown", "ignored"),
	)

	rec := Harvest(p, Options{})
	assert.Equal(t, "caring for refugees", rec.Passions)
	assert.Equal(t, "people say I'm calm", rec.Feedback)
	assert.Equal(t, "a school, a garden", rec.Dreams)
	assert.Equal(t, "3", rec.Threads)
	assert.Empty(t, rec.Anything, "anything-else is opt-in")
	assert.NotNil(t, rec.ExtractedThemes)

	rec = Harvest(p, Options{IncludeAnything: true})
	assert.Equal(t, "I paint", rec.Anything)
}

func TestHarvest_NilProgress(t *testing.T) {
	rec := Harvest(nil, Options{})
	assert.False(t, rec.HasContent())
	assert.Equal(t, []string{}, rec.ExtractedThemes)
}

func TestHasContent_IgnoresAnything(t *testing.T) {
	assert.False(t, Record{Anything: "only this"}.HasContent())
	assert.True(t, Record{Threads: "x"}.HasContent())
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestExtract_ParsesThemes(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(`["drawn to young people", " calm in chaos ", ""]`))
	e := NewExtractor(mock, 0, nil)

	res := e.Extract(t.Context(), Record{Passions: "youth work"})
	require.True(t, res.Found())
	assert.Equal(t, []string{"drawn to young people", "calm in chaos"}, res.List())

	call := mock.LastCall()
	assert.Equal(t, 500, call.MaxTokens)
	require.Len(t, call.Messages, 1)
	assert.Contains(t, call.Messages[0].Content, "PASSIONS & BURDENS:\nyouth work")
}

func TestExtract_StripsCodeFence(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("```json\n[\"hidden service\"]\n```"))
	res := NewExtractor(mock, 0, nil).Extract(t.Context(), Record{Dreams: "x"})
	require.True(t, res.Found())
	assert.Equal(t, []string{"hidden service"}, res.List())
}

func TestExtract_SkipsCallWithoutContent(t *testing.T) {
	mock := llm.NewMockProvider()
	res := NewExtractor(mock, 0, nil).Extract(t.Context(), Record{Anything: "only this"})
	assert.False(t, res.Found())
	assert.Equal(t, []string{}, res.List())
	assert.Zero(t, mock.CallCount())
}

func TestExtract_DegradesToNoThemes(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}},
		{"blank", llm.TextResponse("  ")},
		{"prose", llm.TextResponse("Here are some themes: service, teaching")},
		{"object", llm.TextResponse(`{"themes":["a"]}`)},
		{"mixed array", llm.MockResponse{Content: json.RawMessage(`["a", 1]`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			mock := llm.NewMockProvider(tt.resp)
			res := NewExtractor(mock, 0, quietLogger(&logs)).Extract(t.Context(), Record{Passions: "x"})

			assert.False(t, res.Found())
			assert.Empty(t, res.List())
			assert.Contains(t, logs.String(), "level=WARN")
		})
	}
}
