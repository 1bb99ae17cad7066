package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
)

var progressColumns = []string{
	"user_id", "module", "answers", "current_question_index",
	"completed", "started_at", "updated_at", "completed_at",
}

// progressRepo implements ProgressRepo.
type progressRepo struct {
	drv *entsql.Driver
}

func (r *progressRepo) FindOne(ctx context.Context, userID string, module catalog.Module) (*assessment.Progress, error) {
	out, err := r.Find(ctx, ProgressFilter{UserID: userID, Module: module, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *progressRepo) Find(ctx context.Context, f ProgressFilter) ([]*assessment.Progress, error) {
	t := sqlb.Table(ProgressTable.Name)
	sel := sqlb.Select(progressColumns...).From(t)

	var preds []*entsql.Predicate
	if f.UserID != "" {
		preds = append(preds, entsql.EQ("user_id", f.UserID))
	}
	if f.Module != "" {
		preds = append(preds, entsql.EQ("module", string(f.Module)))
	}
	if f.Completed != nil {
		preds = append(preds, entsql.EQ("completed", *f.Completed))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("updated_at"), entsql.Asc("id"))
	if f.Limit > 0 {
		sel.Limit(f.Limit)
	}

	var out []*assessment.Progress
	err := query(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		p, err := scanProgress(rows)
		if err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return out, nil
}

func (r *progressRepo) Upsert(ctx context.Context, p *assessment.Progress) error {
	answers, err := json.Marshal(p.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	if p.Answers == nil {
		answers = []byte("[]")
	}

	var completedAt any
	if p.CompletedAt != nil {
		completedAt = p.CompletedAt.UTC()
	}

	ins := sqlb.Insert(ProgressTable.Name).
		Columns(progressColumns...).
		Values(
			p.UserID, string(p.Module), string(answers), p.CurrentQuestionIndex,
			p.Completed, p.StartedAt.UTC(), p.UpdatedAt.UTC(), completedAt,
		).
		OnConflict(
			entsql.ConflictColumns("user_id", "module"),
			entsql.ResolveWithNewValues(),
		)
	if _, err := exec(ctx, r.drv, ins); err != nil {
		return fmt.Errorf("upsert progress %s/%s: %w", p.UserID, p.Module, err)
	}
	return nil
}

func scanProgress(rows *entsql.Rows) (*assessment.Progress, error) {
	var (
		p           assessment.Progress
		module      string
		answers     []byte
		completedAt sql.NullTime
	)
	if err := rows.Scan(
		&p.UserID, &module, &answers, &p.CurrentQuestionIndex,
		&p.Completed, &p.StartedAt, &p.UpdatedAt, &completedAt,
	); err != nil {
		return nil, fmt.Errorf("scan progress: %w", err)
	}
	p.Module = catalog.Module(module)
	if err := json.Unmarshal(answers, &p.Answers); err != nil {
		return nil, fmt.Errorf("decode answers for %s/%s: %w", p.UserID, module, err)
	}
	if completedAt.Valid {
		t := completedAt.Time
		p.CompletedAt = &t
	}
	return &p, nil
}

// timeOrNow returns t, or now when t is zero.
func timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
