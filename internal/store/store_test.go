package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunLifecycle(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	runs := s.RunRepo()

	require.NoError(t, runs.CreateRun(ctx, "run-1", "azure fundamentals", "me@example.com", "beginner"))
	require.NoError(t, runs.UpdatePhase(ctx, "run-1", "assessment"))

	score := 80.0
	passed := true
	ready := false
	require.NoError(t, runs.FinishRun(ctx, "run-1", RunResult{
		Phase:           "exam_planning",
		Outcome:         "completed",
		ScorePercentage: &score,
		Passed:          &passed,
		ReadyToBook:     &ready,
	}))

	got, err := runs.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, "run-1", r.ID)
	assert.Equal(t, "azure fundamentals", r.Topics)
	assert.Equal(t, "exam_planning", r.Phase)
	assert.Equal(t, "completed", r.Outcome)
	require.True(t, r.ScorePercentage.Valid)
	assert.Equal(t, 80.0, r.ScorePercentage.Float64)
	require.True(t, r.Passed.Valid)
	assert.True(t, r.Passed.Bool)
	require.True(t, r.ReadyToBook.Valid)
	assert.False(t, r.ReadyToBook.Bool)
	assert.True(t, r.EndedAt.Valid)
}

func TestFinishRun_WithoutScores(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	runs := s.RunRepo()

	require.NoError(t, runs.CreateRun(ctx, "run-2", "topics", "", "beginner"))
	require.NoError(t, runs.FinishRun(ctx, "run-2", RunResult{
		Phase:   "checkpoint",
		Outcome: "stopped_at_checkpoint",
	}))

	got, err := runs.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].ScorePercentage.Valid)
	assert.False(t, got[0].Passed.Valid)
}

func TestLLMEvents(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	events := s.EventRepo()

	for i := 0; i < 3; i++ {
		require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
			RunID:        "run-1",
			Role:         "assessment_agent",
			Provider:     "openai",
			Model:        "gpt-4o",
			LatencyMs:    int64(100 + i),
			InputTokens:  1000,
			OutputTokens: 500,
			CostUSD:      0.01,
			Success:      true,
			RequestBody:  `{"messages": []}`,
			ResponseBody: `{"questions": []}`,
		}))
	}
	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		RunID:        "run-2",
		Role:         "exam_plan_agent",
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	totals, err := events.Totals(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Requests)
	assert.Equal(t, 3000, totals.InputTokens)
	assert.Equal(t, 1500, totals.OutputTokens)
	assert.InDelta(t, 0.03, totals.CostUSD, 1e-9)

	all, err := events.Totals(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, all.Requests)
}

func TestQueryAndGetLLMEvents(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	events := s.EventRepo()

	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Role: "engagement_agent", Provider: "anthropic", Model: "claude-haiku-4-5",
		Success: true, RequestBody: "req", ResponseBody: "resp",
	}))
	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Role: "assessment_agent", Provider: "anthropic", Model: "claude-haiku-4-5",
		Success: true,
	}))

	list, err := events.QueryLLMEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first.
	assert.Equal(t, "assessment_agent", list[0].Role)

	e, err := events.GetLLMEvent(ctx, list[1].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "engagement_agent", e.Role)
	assert.Equal(t, "req", e.RequestBody)

	missing, err := events.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUsageAggregates(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	events := s.EventRepo()

	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Role: "assessment_agent", Provider: "openai", Model: "gpt-4o",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 200, CostUSD: 0.002, Success: true,
	}))
	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Role: "assessment_agent", Provider: "openai", Model: "gpt-4o",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 400, CostUSD: 0.002, Success: true,
	}))
	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Role: "exam_plan_agent", Provider: "openai", Model: "gpt-4o-mini",
		InputTokens: 10, OutputTokens: 5, LatencyMs: 100, CostUSD: 0.0001, Success: true,
	}))

	byRole, err := events.UsageByRole(ctx)
	require.NoError(t, err)
	require.Len(t, byRole, 2)
	assert.Equal(t, "assessment_agent", byRole[0].Role)
	assert.Equal(t, 2, byRole[0].Calls)
	assert.Equal(t, int64(300), byRole[0].AvgLatencyMs)

	byModel, err := events.UsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gpt-4o", byModel[0].Model)
	assert.Equal(t, 200, byModel[0].InputTokens)
}
