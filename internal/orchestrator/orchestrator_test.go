package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/certimentor/internal/agents"
	"github.com/abhisek/certimentor/internal/llm"
)

func collect(ch <-chan Event) []Event {
	var out []Event
	for ev := range ch {
		out = append(out, ev)
	}
	return out
}

func TestRun_SequentialOrder(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"step": 1}`)})
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"step": 2}`)})

	o := New(mock, agents.NewRegistry(), zerolog.Nop())
	transcript := &Transcript{}
	steps := []Step{
		{RoleID: agents.RoleLearningPathCurator, Prompt: StaticPrompt("topics: azure")},
		{RoleID: agents.RoleStudyPlanGenerator, Prompt: StaticPrompt("make a plan")},
	}

	events := collect(o.Run(context.Background(), steps, transcript))

	require.Len(t, events, 4)
	assert.Equal(t, agents.RoleLearningPathCurator, events[0].(TurnEvent).RoleID)
	assert.Equal(t, agents.RoleLearningPathCurator, events[1].(OutputEvent).RoleID)
	assert.Equal(t, agents.RoleStudyPlanGenerator, events[2].(TurnEvent).RoleID)
	assert.Equal(t, agents.RoleStudyPlanGenerator, events[3].(OutputEvent).RoleID)

	require.Equal(t, 2, transcript.Len())
	assert.Equal(t, StateComplete, transcript.State())
	turns := transcript.Turns()
	assert.Equal(t, agents.RoleLearningPathCurator, turns[0].RoleID)
	assert.Equal(t, agents.RoleStudyPlanGenerator, turns[1].RoleID)

	// Each turn carried the role's own temperature.
	require.Len(t, mock.Calls, 2)
	assert.Equal(t, 0.3, mock.Calls[0].Temperature)
	assert.Equal(t, 0.4, mock.Calls[1].Temperature)
}

func TestRun_PromptSeesPriorTurns(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"first": true}`)})
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"second": true}`)})

	o := New(mock, agents.NewRegistry(), zerolog.Nop())
	transcript := &Transcript{}
	steps := []Step{
		{RoleID: agents.RoleLearningPathCurator, Prompt: StaticPrompt("start")},
		{RoleID: agents.RoleStudyPlanGenerator, Prompt: func(tr *Transcript) (string, error) {
			last, ok := tr.Last()
			require.True(t, ok)
			return "based on: " + last.Output.Text, nil
		}},
	}

	collect(o.Run(context.Background(), steps, transcript))

	require.Len(t, mock.Calls, 2)

	// First turn travels with the second call: its prompt, its output,
	// then the new prompt built from it.
	msgs := mock.Calls[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Equal(t, "start", msgs[0].Content)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, `{"first": true}`, msgs[1].Content)
	assert.Equal(t, llm.RoleUser, msgs[2].Role)
	assert.Contains(t, msgs[2].Content, `{"first": true}`)
}

func TestRun_ProviderErrorStopsRun(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"ok": true}`)})
	mock.AddResponse(llm.MockResponse{Err: errors.New("provider down")})

	o := New(mock, agents.NewRegistry(), zerolog.Nop())
	transcript := &Transcript{}
	steps := []Step{
		{RoleID: agents.RoleLearningPathCurator, Prompt: StaticPrompt("a")},
		{RoleID: agents.RoleStudyPlanGenerator, Prompt: StaticPrompt("b")},
		{RoleID: agents.RoleEngagementAgent, Prompt: StaticPrompt("c")},
	}

	events := collect(o.Run(context.Background(), steps, transcript))

	require.Len(t, events, 4)
	errEv, ok := events[3].(ErrorEvent)
	require.True(t, ok)
	assert.Equal(t, agents.RoleStudyPlanGenerator, errEv.RoleID)
	assert.ErrorContains(t, errEv.Err, "provider down")

	// Failed turn is recorded, third step never ran.
	assert.Equal(t, 2, transcript.Len())
	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, StateFailed, transcript.State())
}

func TestTranscriptState(t *testing.T) {
	transcript := &Transcript{}
	assert.Equal(t, StatePending, transcript.State())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "complete", StateComplete.String())
	assert.Equal(t, "failed", StateFailed.String())
}

func TestRun_UnknownRole(t *testing.T) {
	o := New(llm.NewMockProvider(), agents.NewRegistry(), zerolog.Nop())
	transcript := &Transcript{}

	events := collect(o.Run(context.Background(), []Step{
		{RoleID: "nope", Prompt: StaticPrompt("x")},
	}, transcript))

	require.Len(t, events, 1)
	errEv, ok := events[0].(ErrorEvent)
	require.True(t, ok)
	var unknownErr *agents.UnknownRoleError
	assert.ErrorAs(t, errEv.Err, &unknownErr)
}

func TestRun_SchemaTagsOutput(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"exam": "AZ-900"}`)})

	o := New(mock, agents.NewRegistry(), zerolog.Nop())
	transcript := &Transcript{}

	collect(o.Run(context.Background(), []Step{
		{RoleID: agents.RoleAssessmentAgent, Prompt: StaticPrompt("quiz me")},
	}, transcript))

	last, ok := transcript.Last()
	require.True(t, ok)
	assert.Equal(t, "practice-quiz", last.Output.SchemaName)
	assert.JSONEq(t, `{"exam": "AZ-900"}`, string(last.Output.Structured))
}
