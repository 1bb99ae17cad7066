package progress

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "discern.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewService(s.ProgressRepo(), nil)
}

func TestRecordAnswer_CreatesThenReplaces(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	p, err := svc.RecordAnswer(ctx, "u1", catalog.Gifts, "wis-1", assessment.Token("low"), 0)
	require.NoError(t, err)
	assert.Len(t, p.Answers, 1)
	assert.False(t, p.Completed)

	_, err = svc.RecordAnswer(ctx, "u1", catalog.Gifts, "wis-2", assessment.Numeric(4), 1)
	require.NoError(t, err)
	p, err = svc.RecordAnswer(ctx, "u1", catalog.Gifts, "wis-1", assessment.Token("high"), 0)
	require.NoError(t, err)

	require.Len(t, p.Answers, 2)
	v, _ := p.Answers[0].Value.AsToken()
	assert.Equal(t, "high", v)
	assert.Equal(t, 0, p.CurrentQuestionIndex)
}

func TestRecordAnswer_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	_, err := svc.RecordAnswer(ctx, "u1", catalog.Module("hobbies"), "h-1", assessment.Numeric(1), 0)
	assert.Error(t, err)

	_, err = svc.RecordAnswer(ctx, "u1", catalog.Strengths, " ", assessment.Numeric(1), 0)
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	_, err = svc.RecordAnswer(ctx, "u1", catalog.Strengths, "sp-1", assessment.Value{}, 0)
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	_, err = svc.RecordAnswer(ctx, "u1", catalog.Strengths, "sp-1", assessment.Numeric(1), -1)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestRecordAnswer_ChecksQuestionBank(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	long := strings.Repeat("é", catalog.FreetextMaxLength)
	tests := []struct {
		name   string
		module catalog.Module
		id     string
		value  assessment.Value
		ok     bool
	}{
		{"unknown strength prefix", catalog.Strengths, "zz-99", assessment.Token("anything"), false},
		{"strength question", catalog.Strengths, "sp-9", assessment.Token("sp-high"), true},
		{"gift id in freetext", catalog.Freetext, "wis-1", assessment.Numeric(5), false},
		{"vocational id in gifts", catalog.Gifts, "fd-1", assessment.Numeric(5), false},
		{"gift past bank", catalog.Gifts, "wis-3", assessment.Numeric(5), false},
		{"scale out of range", catalog.Gifts, "wis-2", assessment.Numeric(6), false},
		{"scale given token", catalog.Gifts, "wis-2", assessment.Token("high"), false},
		{"choice outside options", catalog.Gifts, "wis-1", assessment.Token("fd-high"), false},
		{"choice given list", catalog.Gifts, "wis-1", assessment.MultiToken("high", "med"), false},
		{"direction scenario", catalog.Vocational, "jm-2", assessment.Token("jm-med"), true},
		{"forced choice", catalog.Vocational, "jm-4", assessment.Token("other"), true},
		{"freetext at limit", catalog.Freetext, catalog.QuestionDreams, assessment.Token(long), true},
		{"freetext over limit", catalog.Freetext, catalog.QuestionDreams, assessment.Token(long + "!"), false},
		{"freetext given number", catalog.Freetext, catalog.QuestionDreams, assessment.Numeric(3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordAnswer(ctx, "u1", tt.module, tt.id, tt.value, 0)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidAnswer)
			}
		})
	}
}

func answerAll(t *testing.T, svc *Service, userID string, m catalog.Module, skip string) {
	t.Helper()
	for i, q := range catalog.Questions(m) {
		if q.ID == skip {
			continue
		}
		var v assessment.Value
		switch q.Kind {
		case catalog.QuestionScale:
			v = assessment.Numeric(float64(q.Max))
		case catalog.QuestionChoice:
			v = assessment.Token(q.Options[0])
		default:
			v = assessment.Token("a reflection")
		}
		_, err := svc.RecordAnswer(t.Context(), userID, m, q.ID, v, i)
		require.NoError(t, err, q.ID)
	}
}

func TestComplete_RequiresWholeBank(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	_, err := svc.RecordAnswer(ctx, "u1", catalog.Gifts, "wis-1", assessment.Token("high"), 0)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, "u1", catalog.Gifts)
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "31 unanswered")

	answerAll(t, svc, "u2", catalog.Freetext, catalog.QuestionAnything)
	_, err = svc.Complete(ctx, "u2", catalog.Freetext)
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), catalog.QuestionAnything)

	p, err := svc.Get(ctx, "u1", catalog.Gifts)
	require.NoError(t, err)
	assert.False(t, p.Completed)
}

func TestComplete_StrengthsNeedsOneAnswer(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	_, err := svc.RecordAnswer(ctx, "u1", catalog.Strengths, "sp-1", assessment.Numeric(4), 0)
	require.NoError(t, err)
	p, err := svc.Complete(ctx, "u1", catalog.Strengths)
	require.NoError(t, err)
	assert.True(t, p.Completed)
}

func TestComplete(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	_, err := svc.Complete(ctx, "u1", catalog.Vocational)
	assert.ErrorIs(t, err, ErrNotStarted)

	answerAll(t, svc, "u1", catalog.Vocational, "")

	first, err := svc.Complete(ctx, "u1", catalog.Vocational)
	require.NoError(t, err)
	require.True(t, first.Completed)
	require.NotNil(t, first.CompletedAt)

	again, err := svc.Complete(ctx, "u1", catalog.Vocational)
	require.NoError(t, err)
	assert.True(t, first.CompletedAt.Equal(*again.CompletedAt))
}

func TestList_CatalogOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	first := map[catalog.Module]string{
		catalog.Freetext:   catalog.QuestionPassions,
		catalog.Strengths:  "sp-1",
		catalog.Vocational: "fd-2",
	}
	for _, m := range []catalog.Module{catalog.Freetext, catalog.Strengths, catalog.Vocational} {
		_, err := svc.RecordAnswer(ctx, "u1", m, first[m], assessment.Token("fd-low"), 0)
		require.NoError(t, err)
	}
	_, err := svc.RecordAnswer(ctx, "u2", catalog.Gifts, "wis-1", assessment.Token("low"), 0)
	require.NoError(t, err)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	var modules []catalog.Module
	for _, p := range list {
		modules = append(modules, p.Module)
	}
	assert.Equal(t, []catalog.Module{catalog.Strengths, catalog.Vocational, catalog.Freetext}, modules)
}

func TestImport(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	p := &assessment.Progress{
		UserID:    "u1",
		Module:    catalog.Strengths,
		Completed: true,
		Answers: []assessment.Answer{
			{QuestionID: "sp-1", Value: assessment.Numeric(4)},
		},
	}
	require.NoError(t, svc.Import(ctx, p))
	assert.NotNil(t, p.CompletedAt)
	assert.False(t, p.Answers[0].AnsweredAt.IsZero())

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)

	bad := &assessment.Progress{UserID: "u1", Module: catalog.Gifts, Answers: []assessment.Answer{{QuestionID: "wis-1"}}}
	assert.ErrorIs(t, svc.Import(ctx, bad), ErrInvalidAnswer)

	foreign := &assessment.Progress{UserID: "u1", Module: catalog.Gifts, Answers: []assessment.Answer{
		{QuestionID: "fd-1", Value: assessment.Numeric(3)},
	}}
	assert.ErrorIs(t, svc.Import(ctx, foreign), ErrInvalidAnswer)
}

type failingRepo struct{ store.ProgressRepo }

func (failingRepo) FindOne(context.Context, string, catalog.Module) (*assessment.Progress, error) {
	return nil, errors.New("locked")
}

func TestRecordAnswer_StoreFailure(t *testing.T) {
	svc := NewService(failingRepo{}, nil)
	_, err := svc.RecordAnswer(t.Context(), "u1", catalog.Strengths, "sp-1", assessment.Numeric(3), 0)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
