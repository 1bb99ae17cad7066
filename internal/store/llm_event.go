package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	"id", "timestamp", "provider", "model", "purpose", "input_tokens",
	"output_tokens", "latency_ms", "success", "error_message",
	"request_body", "response_body",
}

// eventRepo implements EventRepo. Event ids increase monotonically and
// give the recording order.
type eventRepo struct {
	drv *entsql.Driver
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	ins := sqlb.Insert(LLMRequestEventsTable.Name).
		Columns(llmEventColumns[1:]...).
		Values(
			time.Now().UTC(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		)
	if _, err := exec(ctx, r.drv, ins); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	sel := sqlb.Select(llmEventColumns...).From(sqlb.Table(LLMRequestEventsTable.Name))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("id", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("id", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Purpose != "" {
		preds = append(preds, entsql.EQ("purpose", opts.Purpose))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("id"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	var out []LLMRequestEvent
	err := query(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return err
		}
		out = append(out, ev)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	sel := sqlb.Select(llmEventColumns...).
		From(sqlb.Table(LLMRequestEventsTable.Name)).
		Where(entsql.EQ("id", id))

	var found *LLMRequestEvent
	err := query(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return err
		}
		found = &ev
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return found, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	return r.usageBy(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsageStats, error) {
	return r.usageBy(ctx, "model")
}

func (r *eventRepo) usageBy(ctx context.Context, column string) ([]LLMUsageStats, error) {
	sel := sqlb.Select(
		column,
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency_ms"),
	).
		From(sqlb.Table(LLMRequestEventsTable.Name)).
		GroupBy(column).
		OrderBy(entsql.Desc("calls"), entsql.Asc(column))

	var stats []LLMUsageStats
	err := query(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var (
			s       LLMUsageStats
			in, out sql.NullInt64
			avg     sql.NullFloat64
		)
		if err := rows.Scan(&s.Key, &s.Calls, &in, &out, &avg); err != nil {
			return fmt.Errorf("scan usage: %w", err)
		}
		s.InputTokens = int(in.Int64)
		s.OutputTokens = int(out.Int64)
		s.AvgLatencyMs = avg.Float64
		stats = append(stats, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by %s: %w", column, err)
	}
	return stats, nil
}

func scanLLMEvent(rows *entsql.Rows) (LLMRequestEvent, error) {
	var (
		ev       LLMRequestEvent
		errMsg   sql.NullString
		reqBody  sql.NullString
		respBody sql.NullString
	)
	if err := rows.Scan(
		&ev.ID, &ev.Timestamp, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success,
		&errMsg, &reqBody, &respBody,
	); err != nil {
		return LLMRequestEvent{}, fmt.Errorf("scan LLM event: %w", err)
	}
	ev.ErrorMessage = errMsg.String
	ev.RequestBody = reqBody.String
	ev.ResponseBody = respBody.String
	return ev, nil
}
