package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var reportColumns = []string{
	"id", "user_id", "user_name", "content", "module_data",
	"prompt_version", "model", "generated_at",
}

// reportRepo implements ReportRepo. Rows are never updated or deleted.
type reportRepo struct {
	drv *entsql.Driver
}

func (r *reportRepo) Insert(ctx context.Context, rec *ReportRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.GeneratedAt = timeOrNow(rec.GeneratedAt)

	data := rec.ModuleData
	if len(data) == 0 {
		data = []byte("{}")
	}

	ins := sqlb.Insert(ReportsTable.Name).
		Columns(reportColumns...).
		Values(
			rec.ID, rec.UserID, rec.UserName, rec.Content, string(data),
			rec.PromptVersion, rec.Model, rec.GeneratedAt,
		)
	if _, err := exec(ctx, r.drv, ins); err != nil {
		return fmt.Errorf("insert report for %s: %w", rec.UserID, err)
	}
	return nil
}

func (r *reportRepo) Latest(ctx context.Context, userID string) (*ReportRecord, error) {
	out, err := r.find(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *reportRepo) Find(ctx context.Context, userID string) ([]*ReportRecord, error) {
	return r.find(ctx, userID, 0)
}

func (r *reportRepo) find(ctx context.Context, userID string, limit int) ([]*ReportRecord, error) {
	sel := sqlb.Select(reportColumns...).
		From(sqlb.Table(ReportsTable.Name)).
		Where(entsql.EQ("user_id", userID)).
		// rowid breaks ties between reports generated in the same instant.
		OrderBy(entsql.Desc("generated_at"), entsql.Desc("rowid"))
	if limit > 0 {
		sel.Limit(limit)
	}

	var out []*ReportRecord
	err := query(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var (
			rec  ReportRecord
			data []byte
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.UserName, &rec.Content, &data,
			&rec.PromptVersion, &rec.Model, &rec.GeneratedAt,
		); err != nil {
			return fmt.Errorf("scan report: %w", err)
		}
		rec.ModuleData = data
		out = append(out, &rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query reports for %s: %w", userID, err)
	}
	return out, nil
}
