// Package progress records answers and module completion for a user.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/store"
)

var (
	ErrInvalidAnswer = errors.New("invalid answer")
	ErrNotStarted    = errors.New("module not started")
	// ErrIncomplete is returned by Complete while bank questions are
	// unanswered.
	ErrIncomplete = errors.New("module incomplete")
)

// Service records progress through the assessment modules.
type Service struct {
	repo   store.ProgressRepo
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a progress Service.
func NewService(repo store.ProgressRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, store.ErrUnavailable, err)
}

// RecordAnswer stores one answer, replacing any earlier answer to the same
// question. The progress record is created on the first answer.
func (s *Service) RecordAnswer(ctx context.Context, userID string, module catalog.Module, questionID string, value assessment.Value, questionIndex int) (*assessment.Progress, error) {
	if !module.Valid() {
		return nil, fmt.Errorf("unknown module %q", module)
	}
	questionID = strings.TrimSpace(questionID)
	if questionID == "" {
		return nil, fmt.Errorf("%w: question id is required", ErrInvalidAnswer)
	}
	if err := checkAnswer(module, questionID, value); err != nil {
		return nil, err
	}
	if questionIndex < 0 {
		return nil, fmt.Errorf("%w: negative question index", ErrInvalidAnswer)
	}

	now := s.now()
	p, err := s.repo.FindOne(ctx, userID, module)
	if err != nil {
		return nil, unavailable("load progress", err)
	}
	if p == nil {
		p = assessment.NewProgress(userID, module, now)
	}
	p.Record(assessment.Answer{QuestionID: questionID, Value: value}, questionIndex, now)

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, unavailable("save progress", err)
	}
	s.logger.DebugContext(ctx, "answer recorded", "user_id", userID, "module", module, "question_id", questionID)
	return p, nil
}

// Import replaces the user's progress for p.Module wholesale.
func (s *Service) Import(ctx context.Context, p *assessment.Progress) error {
	if !p.Module.Valid() {
		return fmt.Errorf("unknown module %q", p.Module)
	}
	now := s.now()
	if p.StartedAt.IsZero() {
		p.StartedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	if p.Completed && p.CompletedAt == nil {
		p.CompletedAt = &now
	}
	for i, a := range p.Answers {
		if err := checkAnswer(p.Module, a.QuestionID, a.Value); err != nil {
			return err
		}
		if a.AnsweredAt.IsZero() {
			p.Answers[i].AnsweredAt = now
		}
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return unavailable("save progress", err)
	}
	return nil
}

// Complete marks the module finished once every question of its bank has an
// answer. Completing twice is a no-op.
func (s *Service) Complete(ctx context.Context, userID string, module catalog.Module) (*assessment.Progress, error) {
	if !module.Valid() {
		return nil, fmt.Errorf("unknown module %q", module)
	}
	p, err := s.repo.FindOne(ctx, userID, module)
	if err != nil {
		return nil, unavailable("load progress", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotStarted, module)
	}
	if p.Completed {
		return p, nil
	}
	if missing := unanswered(p); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s has %d unanswered questions, starting at %s",
			ErrIncomplete, module, len(missing), missing[0])
	}
	p.MarkCompleted(s.now())
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, unavailable("save progress", err)
	}
	s.logger.InfoContext(ctx, "module completed", "user_id", userID, "module", module, "answers", len(p.Answers))
	return p, nil
}

// Get returns the user's progress for module, or ErrNotStarted.
func (s *Service) Get(ctx context.Context, userID string, module catalog.Module) (*assessment.Progress, error) {
	p, err := s.repo.FindOne(ctx, userID, module)
	if err != nil {
		return nil, unavailable("load progress", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotStarted, module)
	}
	return p, nil
}

// List returns the user's progress records in catalog order. Modules not
// yet started are omitted.
func (s *Service) List(ctx context.Context, userID string) ([]*assessment.Progress, error) {
	all, err := s.repo.Find(ctx, store.ProgressFilter{UserID: userID})
	if err != nil {
		return nil, unavailable("list progress", err)
	}
	byModule := make(map[catalog.Module]*assessment.Progress, len(all))
	for _, p := range all {
		byModule[p.Module] = p
	}
	out := make([]*assessment.Progress, 0, len(byModule))
	for _, m := range catalog.Modules {
		if p, ok := byModule[m]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// checkAnswer validates value against question id of module's bank.
func checkAnswer(module catalog.Module, id string, value assessment.Value) error {
	q, ok := catalog.FindQuestion(module, id)
	if !ok {
		return fmt.Errorf("%w: %s is not a %s question", ErrInvalidAnswer, id, module)
	}
	if value.IsZero() {
		return fmt.Errorf("%w: %s has no value", ErrInvalidAnswer, id)
	}

	switch q.Kind {
	case catalog.QuestionScale:
		n, ok := value.AsNumeric()
		if !ok || n < float64(q.Min) || n > float64(q.Max) {
			return fmt.Errorf("%w: %s takes a number from %d to %d", ErrInvalidAnswer, id, q.Min, q.Max)
		}
	case catalog.QuestionChoice:
		tok, ok := value.AsToken()
		if !ok || !q.Accepts(tok) {
			return fmt.Errorf("%w: %s takes one of %s", ErrInvalidAnswer, id, strings.Join(q.Options, ", "))
		}
	case catalog.QuestionFreetext:
		text, ok := value.AsToken()
		if !ok {
			return fmt.Errorf("%w: %s takes text", ErrInvalidAnswer, id)
		}
		if n := utf8.RuneCountInString(text); n > q.MaxLength {
			return fmt.Errorf("%w: %s is %d characters, limit %d", ErrInvalidAnswer, id, n, q.MaxLength)
		}
	}
	return nil
}

// unanswered lists the bank questions of p's module with no answer, in
// bank order.
func unanswered(p *assessment.Progress) []string {
	answered := make(map[string]bool, len(p.Answers))
	for _, a := range p.Answers {
		answered[a.QuestionID] = true
	}
	var missing []string
	for _, q := range catalog.Questions(p.Module) {
		if !answered[q.ID] {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
