package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run is one workflow execution as recorded in the log.
type Run struct {
	ID              string
	Topics          string
	Email           string
	UserLevel       string
	Phase           string
	Outcome         string
	ScorePercentage sql.NullFloat64
	Passed          sql.NullBool
	ReadyToBook     sql.NullBool
	StartedAt       time.Time
	EndedAt         sql.NullTime
}

// RunResult holds the final figures written when a run ends.
type RunResult struct {
	Phase           string
	Outcome         string
	ScorePercentage *float64
	Passed          *bool
	ReadyToBook     *bool
}

// RunRepo records workflow runs.
type RunRepo interface {
	CreateRun(ctx context.Context, id, topics, email, userLevel string) error
	UpdatePhase(ctx context.Context, id, phase string) error
	FinishRun(ctx context.Context, id string, res RunResult) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

type runRepo struct {
	db *sql.DB
}

func (r *runRepo) CreateRun(ctx context.Context, id, topics, email, userLevel string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (id, topics, email, user_level, phase, started_at)
		 VALUES (?, ?, ?, ?, 'preparation', ?)`,
		id, topics, email, userLevel, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

func (r *runRepo) UpdatePhase(ctx context.Context, id, phase string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE runs SET phase = ? WHERE id = ?`, phase, id)
	if err != nil {
		return fmt.Errorf("update run phase: %w", err)
	}
	return nil
}

func (r *runRepo) FinishRun(ctx context.Context, id string, res RunResult) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE runs SET phase = ?, outcome = ?, score_percentage = ?,
		 passed = ?, ready_to_book = ?, ended_at = ? WHERE id = ?`,
		res.Phase, res.Outcome, nullFloat(res.ScorePercentage),
		nullBool(res.Passed), nullBool(res.ReadyToBook), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

func (r *runRepo) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, topics, email, user_level, phase, outcome,
		        score_percentage, passed, ready_to_book, started_at, ended_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Topics, &run.Email, &run.UserLevel,
			&run.Phase, &run.Outcome, &run.ScorePercentage, &run.Passed,
			&run.ReadyToBook, &run.StartedAt, &run.EndedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}
