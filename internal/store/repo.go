package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int       // id > After
	Before  int       // id < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact match when set
}

// ProgressFilter selects progress records. Zero fields match everything.
type ProgressFilter struct {
	UserID    string
	Module    catalog.Module
	Completed *bool
	Limit     int
}

// ProgressRepo persists one progress record per (user, module).
type ProgressRepo interface {
	// FindOne returns the user's progress for module, or nil if none exists.
	FindOne(ctx context.Context, userID string, module catalog.Module) (*assessment.Progress, error)

	// Find returns progress records matching f, most recently updated first.
	Find(ctx context.Context, f ProgressFilter) ([]*assessment.Progress, error)

	// Upsert creates or replaces the record keyed by (UserID, Module).
	Upsert(ctx context.Context, p *assessment.Progress) error
}

// ReportRecord is a persisted, immutable report.
type ReportRecord struct {
	ID            string
	UserID        string
	UserName      string
	Content       string
	ModuleData    json.RawMessage
	PromptVersion string
	Model         string
	GeneratedAt   time.Time
}

// ReportRepo is append-only storage for generated reports.
type ReportRepo interface {
	// Insert stores a new report in a single statement.
	Insert(ctx context.Context, r *ReportRecord) error

	// Latest returns the user's most recent report, or nil if none exist.
	Latest(ctx context.Context, userID string) (*ReportRecord, error)

	// Find returns all of the user's reports, newest first.
	Find(ctx context.Context, userID string) ([]*ReportRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a recorded LLM call.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls by a grouping key (purpose or model).
type LLMUsageStats struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStats, error)
}
