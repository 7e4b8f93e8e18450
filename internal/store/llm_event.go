package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures one provider round-trip for the event log.
type LLMRequestEventData struct {
	RunID        string
	Role         string
	Provider     string
	Model        string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored event row.
type LLMEvent struct {
	ID int64
	LLMRequestEventData
	CreatedAt time.Time
}

// UsageTotals aggregates provider usage across events.
type UsageTotals struct {
	Requests     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// RoleUsage aggregates usage for one agent role.
type RoleUsage struct {
	Role         string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// EventRepo appends and queries LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	Totals(ctx context.Context, runID string) (UsageTotals, error)
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)
	UsageByRole(ctx context.Context) ([]RoleUsage, error)
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (run_id, role, provider, model, latency_ms, input_tokens, output_tokens,
		  cost_usd, success, error_message, request_body, response_body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.RunID, data.Role, data.Provider, data.Model, data.LatencyMs,
		data.InputTokens, data.OutputTokens, data.CostUSD, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append LLM request event: %w", err)
	}
	return nil
}

// Totals sums usage for a run. An empty runID aggregates all events.
func (r *eventRepo) Totals(ctx context.Context, runID string) (UsageTotals, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(input_tokens), 0),
	          COALESCE(SUM(output_tokens), 0), COALESCE(SUM(cost_usd), 0)
	          FROM llm_events`
	args := []any{}
	if runID != "" {
		query += ` WHERE run_id = ?`
		args = append(args, runID)
	}

	var t UsageTotals
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&t.Requests, &t.InputTokens, &t.OutputTokens, &t.CostUSD)
	if err != nil {
		return UsageTotals{}, fmt.Errorf("sum LLM events: %w", err)
	}
	return t, nil
}

const eventColumns = `id, run_id, role, provider, model, latency_ms, input_tokens,
	output_tokens, cost_usd, success, error_message, request_body, response_body, created_at`

func scanEvent(row interface{ Scan(...any) error }) (*LLMEvent, error) {
	var e LLMEvent
	err := row.Scan(&e.ID, &e.RunID, &e.Role, &e.Provider, &e.Model, &e.LatencyMs,
		&e.InputTokens, &e.OutputTokens, &e.CostUSD, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM llm_events WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	return e, nil
}

func (r *eventRepo) UsageByRole(ctx context.Context) ([]RoleUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT role, COUNT(*), COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0), COALESCE(AVG(latency_ms), 0)
		 FROM llm_events GROUP BY role ORDER BY role`)
	if err != nil {
		return nil, fmt.Errorf("usage by role: %w", err)
	}
	defer rows.Close()

	var usage []RoleUsage
	for rows.Next() {
		var u RoleUsage
		var avg float64
		if err := rows.Scan(&u.Role, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan role usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT model, COUNT(*), COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0), COALESCE(SUM(cost_usd), 0)
		 FROM llm_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}
	defer rows.Close()

	var usage []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.CostUSD); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}
