// Package orchestrator runs agent roles one at a time against an LLM
// provider, recording every turn in an append-only transcript.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/certimentor/internal/agents"
	"github.com/abhisek/certimentor/internal/extract"
	"github.com/abhisek/certimentor/internal/llm"
)

// State tracks where a run is in its lifecycle.
type State int

const (
	StatePending State = iota
	StateRunning
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Turn is one completed agent invocation.
type Turn struct {
	RoleID string
	Prompt string
	Output extract.Output
	Err    error
}

// Transcript is the append-only record of a run's turns.
type Transcript struct {
	turns []Turn
	state State
}

func (t *Transcript) append(turn Turn) {
	t.turns = append(t.turns, turn)
}

// State reports where the most recent Run over this transcript got to.
func (t *Transcript) State() State { return t.state }

// Turns returns a copy of the recorded turns in order.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Last returns the most recent turn, or false when the transcript is empty.
func (t *Transcript) Last() (Turn, bool) {
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}

// Len returns the number of recorded turns.
func (t *Transcript) Len() int { return len(t.turns) }

// PromptFunc builds a role's user message from the turns so far. It
// runs just before the role's turn, so it can read every prior output.
type PromptFunc func(t *Transcript) (string, error)

// StaticPrompt returns a PromptFunc that ignores the transcript.
func StaticPrompt(msg string) PromptFunc {
	return func(*Transcript) (string, error) { return msg, nil }
}

// Step pairs a role with the prompt it will receive.
type Step struct {
	RoleID string
	Prompt PromptFunc
}

// Event is emitted on the run's event channel. Exactly one of the
// concrete types below.
type Event interface {
	isEvent()
}

// TurnEvent signals a role's turn is starting.
type TurnEvent struct {
	RoleID   string
	RoleName string
	Index    int
	Total    int
}

// OutputEvent carries a completed turn's raw output.
type OutputEvent struct {
	RoleID string
	Output extract.Output
}

// ErrorEvent carries a failed turn's error. The run stops after it.
type ErrorEvent struct {
	RoleID string
	Err    error
}

func (TurnEvent) isEvent()   {}
func (OutputEvent) isEvent() {}
func (ErrorEvent) isEvent()  {}

// Orchestrator executes steps sequentially with a shared provider.
type Orchestrator struct {
	provider llm.Provider
	registry *agents.Registry
	logger   zerolog.Logger
}

// New creates an orchestrator.
func New(provider llm.Provider, registry *agents.Registry, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{provider: provider, registry: registry, logger: logger}
}

// Run executes the steps strictly in order, emitting events as it
// goes. The channel is closed when the run completes or fails; a
// failed turn ends the run. The transcript accumulates every turn,
// including the failed one.
func (o *Orchestrator) Run(ctx context.Context, steps []Step, transcript *Transcript) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)
		transcript.state = StateRunning

		for i, step := range steps {
			role, err := o.registry.Role(step.RoleID)
			if err != nil {
				o.emitError(ctx, events, transcript, step.RoleID, "", err)
				return
			}

			select {
			case events <- TurnEvent{RoleID: role.ID, RoleName: role.Name, Index: i, Total: len(steps)}:
			case <-ctx.Done():
				return
			}

			prompt, err := step.Prompt(transcript)
			if err != nil {
				o.emitError(ctx, events, transcript, role.ID, prompt, fmt.Errorf("building prompt: %w", err))
				return
			}

			out, err := o.turn(ctx, role, prompt, transcript)
			if err != nil {
				o.emitError(ctx, events, transcript, role.ID, prompt, err)
				return
			}

			transcript.append(Turn{RoleID: role.ID, Prompt: prompt, Output: out})
			o.logger.Debug().
				Str("role", role.ID).
				Int("turn", transcript.Len()).
				Msg("turn complete")

			select {
			case events <- OutputEvent{RoleID: role.ID, Output: out}:
			case <-ctx.Done():
				return
			}
		}
		transcript.state = StateComplete
	}()

	return events
}

func (o *Orchestrator) emitError(ctx context.Context, events chan<- Event, transcript *Transcript, roleID, prompt string, err error) {
	transcript.state = StateFailed
	transcript.append(Turn{RoleID: roleID, Prompt: prompt, Err: err})
	o.logger.Error().Str("role", roleID).Str("state", transcript.state.String()).Err(err).Msg("turn failed")
	select {
	case events <- ErrorEvent{RoleID: roleID, Err: err}:
	case <-ctx.Done():
	}
}

// turn invokes the provider once for a role and wraps the response as
// extraction input. Prior turns travel along as conversation context,
// so a role whose upstream output failed extraction still sees the
// raw text it produced.
func (o *Orchestrator) turn(ctx context.Context, role agents.RoleConfig, prompt string, transcript *Transcript) (extract.Output, error) {
	ctx = llm.WithRole(ctx, role.ID)

	msgs := make([]llm.Message, 0, 2*transcript.Len()+1)
	for _, t := range transcript.Turns() {
		if t.Err != nil || t.Output.Text == "" {
			continue
		}
		msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: t.Prompt})
		msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: t.Output.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: prompt})

	req := llm.Request{
		System:      role.Instructions,
		Messages:    msgs,
		Schema:      role.Schema,
		MaxTokens:   role.MaxTokens,
		Temperature: role.Temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return extract.Output{}, fmt.Errorf("%s: %w", role.ID, err)
	}

	out := extract.Output{Text: string(resp.Content)}
	if role.Schema != nil {
		out.Structured = resp.Content
		out.SchemaName = role.Schema.Name
	}
	return out, nil
}
