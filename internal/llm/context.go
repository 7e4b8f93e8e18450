package llm

import "context"

type contextKey string

const (
	roleKey  contextKey = "llm_role"
	runIDKey contextKey = "llm_run_id"
)

// WithRole attaches the invoking agent role to the context for event logging.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFrom extracts the agent role label from the context.
func RoleFrom(ctx context.Context) string {
	if v, ok := ctx.Value(roleKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithRunID attaches the workflow run ID to the context so logged events
// can be grouped per run.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFrom extracts the workflow run ID, or "" when outside a run.
func RunIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v
	}
	return ""
}
