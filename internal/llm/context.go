package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	userKey    contextKey = "llm_user"
)

// Purpose labels recorded with every LLM request event.
const (
	PurposeSynthesis = "synthesis"
	PurposeThemes    = "theme-extraction"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithUser records which assessment taker a request is made for. The id
// only reaches log lines, never the prompt.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserFrom returns the user id set by WithUser, or "".
func UserFrom(ctx context.Context) string {
	v, _ := ctx.Value(userKey).(string)
	return v
}
