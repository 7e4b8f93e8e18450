// Package workflow drives the certification prep run through its five
// phases: preparation, the human checkpoint, assessment, evaluation,
// and exam planning. Each phase runs one or more agent roles, extracts
// their structured output, and cross-checks it against locally
// computed results before moving on.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/certimentor/internal/agents"
	"github.com/abhisek/certimentor/internal/domain"
	"github.com/abhisek/certimentor/internal/extract"
	"github.com/abhisek/certimentor/internal/llm"
	"github.com/abhisek/certimentor/internal/orchestrator"
	"github.com/abhisek/certimentor/internal/store"
)

// Phase names the workflow's stages in order.
type Phase string

const (
	PhasePreparation  Phase = "preparation"
	PhaseCheckpoint   Phase = "checkpoint"
	PhaseAssessment   Phase = "assessment"
	PhaseEvaluation   Phase = "evaluation"
	PhaseExamPlanning Phase = "exam_planning"
)

const phaseCount = 5

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeCompleted           Outcome = "completed"
	OutcomeStoppedAtCheckpoint Outcome = "stopped_at_checkpoint"
	OutcomeFailed              Outcome = "failed"
)

// Setup holds the student's inputs collected before the run starts.
type Setup struct {
	Topics           string
	Email            string
	Level            domain.UserLevel
	StudyDaysPerWeek int
	HoursPerDay      float64
}

// UserIO collects input from the student during a run.
type UserIO interface {
	Confirm(prompt string, def bool) (bool, error)
	AskQuestion(q domain.Question) (string, error)
}

// Presenter displays phase results to the student.
type Presenter interface {
	Phase(name string, index, total int)
	CuratedPlan(p *domain.CuratedLearningPlan)
	StudyPlan(p *domain.StudyPlan)
	EngagementPlan(p *domain.EngagementPlan)
	QuizIntro(q *domain.Quiz)
	Feedback(f *domain.AssessmentFeedback)
	ExamPlan(p *domain.ExamPlan)
	Warning(msg string)
}

// PhaseError reports which phase and role a run failed in.
type PhaseError struct {
	Phase  Phase
	RoleID string
	Err    error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s failed in role %s: %v", e.Phase, e.RoleID, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

// State accumulates everything a run produces.
type State struct {
	RunID   string
	Setup   Setup
	Phase   Phase
	Outcome Outcome

	CuratedPlan    *domain.CuratedLearningPlan
	StudyPlan      *domain.StudyPlan
	EngagementPlan *domain.EngagementPlan
	Quiz           *domain.Quiz
	Answers        map[int]string
	Feedback       *domain.AssessmentFeedback
	ExamPlan       *domain.ExamPlan

	Warnings []string
}

// Controller executes the workflow.
type Controller struct {
	orc     *orchestrator.Orchestrator
	io      UserIO
	present Presenter
	runs    store.RunRepo
	logger  zerolog.Logger
}

// New creates a workflow controller. runs may be nil, in which case no
// run records are persisted.
func New(orc *orchestrator.Orchestrator, io UserIO, present Presenter, runs store.RunRepo, logger zerolog.Logger) *Controller {
	return &Controller{orc: orc, io: io, present: present, runs: runs, logger: logger}
}

// Execute runs all phases for one student. It returns the final state
// even when the run fails partway; the error describes the failing
// phase. A checkpoint rejection is not an error.
func (c *Controller) Execute(ctx context.Context, setup Setup) (*State, error) {
	state := &State{
		RunID:   uuid.NewString(),
		Setup:   setup,
		Answers: make(map[int]string),
	}
	// Providers and the event log label their work with the run ID.
	ctx = llm.WithRunID(ctx, state.RunID)
	transcript := &orchestrator.Transcript{}

	c.persistCreate(ctx, state)
	c.logger.Info().Str("run_id", state.RunID).Str("topics", setup.Topics).Msg("run started")

	if err := c.runPreparation(ctx, state, transcript); err != nil {
		return c.fail(ctx, state, err)
	}

	proceed, err := c.runCheckpoint(ctx, state)
	if err != nil {
		return c.fail(ctx, state, err)
	}
	if !proceed {
		state.Outcome = OutcomeStoppedAtCheckpoint
		c.persistFinish(ctx, state)
		c.logger.Info().Str("run_id", state.RunID).Msg("stopped at checkpoint")
		return state, nil
	}

	if err := c.runAssessment(ctx, state, transcript); err != nil {
		return c.fail(ctx, state, err)
	}
	if err := c.runEvaluation(ctx, state, transcript); err != nil {
		return c.fail(ctx, state, err)
	}
	if err := c.runExamPlanning(ctx, state, transcript); err != nil {
		return c.fail(ctx, state, err)
	}

	state.Outcome = OutcomeCompleted
	c.persistFinish(ctx, state)
	c.logger.Info().Str("run_id", state.RunID).Msg("run completed")
	return state, nil
}

func (c *Controller) runPreparation(ctx context.Context, state *State, tr *orchestrator.Transcript) error {
	c.enterPhase(ctx, state, PhasePreparation, "Preparation", 1)

	curated, warns, err := runRole[domain.CuratedLearningPlan](
		c, ctx, tr, agents.RoleLearningPathCurator, curatorPrompt(state.Setup))
	switch {
	case err == nil:
		state.CuratedPlan = curated
		c.noteWarnings(state, agents.RoleLearningPathCurator, warns)
		c.present.CuratedPlan(curated)
	case !c.degraded(state, agents.RoleLearningPathCurator, err):
		return &PhaseError{Phase: PhasePreparation, RoleID: agents.RoleLearningPathCurator, Err: err}
	}

	plan, warns, err := runRole[domain.StudyPlan](
		c, ctx, tr, agents.RoleStudyPlanGenerator, studyPlanPrompt(state.CuratedPlan, state.Setup))
	switch {
	case err == nil:
		state.StudyPlan = plan
		c.noteWarnings(state, agents.RoleStudyPlanGenerator, warns)
		c.present.StudyPlan(plan)
	case !c.degraded(state, agents.RoleStudyPlanGenerator, err):
		return &PhaseError{Phase: PhasePreparation, RoleID: agents.RoleStudyPlanGenerator, Err: err}
	}

	engagement, warns, err := runRole[domain.EngagementPlan](
		c, ctx, tr, agents.RoleEngagementAgent, engagementPrompt(state.StudyPlan, state.Setup))
	switch {
	case err == nil:
		state.EngagementPlan = engagement
		c.noteWarnings(state, agents.RoleEngagementAgent, warns)
		c.present.EngagementPlan(engagement)
	case !c.degraded(state, agents.RoleEngagementAgent, err):
		return &PhaseError{Phase: PhasePreparation, RoleID: agents.RoleEngagementAgent, Err: err}
	}

	return nil
}

func (c *Controller) runCheckpoint(ctx context.Context, state *State) (bool, error) {
	c.enterPhase(ctx, state, PhaseCheckpoint, "Checkpoint", 2)

	proceed, err := c.io.Confirm("Ready to take the practice assessment?", true)
	if err != nil {
		return false, &PhaseError{Phase: PhaseCheckpoint, Err: err}
	}
	return proceed, nil
}

func (c *Controller) runAssessment(ctx context.Context, state *State, tr *orchestrator.Transcript) error {
	c.enterPhase(ctx, state, PhaseAssessment, "Assessment", 3)

	quiz, warns, err := runRole[domain.Quiz](
		c, ctx, tr, agents.RoleAssessmentAgent, quizPrompt(state.CuratedPlan))
	if err != nil {
		if c.degraded(state, agents.RoleAssessmentAgent, err) {
			return nil
		}
		return &PhaseError{Phase: PhaseAssessment, RoleID: agents.RoleAssessmentAgent, Err: err}
	}
	state.Quiz = quiz
	c.noteWarnings(state, agents.RoleAssessmentAgent, warns)
	c.present.QuizIntro(quiz)

	for _, q := range quiz.Sorted() {
		answer, err := c.io.AskQuestion(q)
		if err != nil {
			return &PhaseError{Phase: PhaseAssessment, Err: fmt.Errorf("collecting answer %d: %w", q.QuestionNumber, err)}
		}
		state.Answers[q.QuestionNumber] = answer
	}
	return nil
}

func (c *Controller) runEvaluation(ctx context.Context, state *State, tr *orchestrator.Transcript) error {
	c.enterPhase(ctx, state, PhaseEvaluation, "Evaluation", 4)

	if state.Quiz == nil {
		c.noteWarnings(state, agents.RoleAssessmentEvaluator,
			[]string{"no usable quiz from the assessment phase, nothing to evaluate"})
		return nil
	}

	feedback, warns, err := runRole[domain.AssessmentFeedback](
		c, ctx, tr, agents.RoleAssessmentEvaluator, evaluatorPrompt(state.Quiz, state.Answers))
	if err != nil {
		if c.degraded(state, agents.RoleAssessmentEvaluator, err) {
			return nil
		}
		return &PhaseError{Phase: PhaseEvaluation, RoleID: agents.RoleAssessmentEvaluator, Err: err}
	}
	c.noteWarnings(state, agents.RoleAssessmentEvaluator, warns)

	// The evaluator explains; the grades themselves are computed here.
	grade := gradeQuiz(state.Quiz, state.Answers)
	reconcileFeedback(feedback, grade, func(msg string) {
		c.noteWarnings(state, agents.RoleAssessmentEvaluator, []string{msg})
	})
	state.Feedback = feedback
	c.present.Feedback(feedback)

	return nil
}

func (c *Controller) runExamPlanning(ctx context.Context, state *State, tr *orchestrator.Transcript) error {
	c.enterPhase(ctx, state, PhaseExamPlanning, "Exam Planning", 5)

	risks := criticalRisks(state.CuratedPlan, state.Feedback)

	plan, warns, err := runRole[domain.ExamPlan](
		c, ctx, tr, agents.RoleExamPlanAgent, examPlanPrompt(state.Feedback, state.CuratedPlan, risks))
	if err != nil {
		if c.degraded(state, agents.RoleExamPlanAgent, err) {
			return nil
		}
		return &PhaseError{Phase: PhaseExamPlanning, RoleID: agents.RoleExamPlanAgent, Err: err}
	}
	c.noteWarnings(state, agents.RoleExamPlanAgent, warns)

	warn := func(msg string) {
		c.noteWarnings(state, agents.RoleExamPlanAgent, []string{msg})
	}
	reconcileBreakdown(plan, state.CuratedPlan, state.Feedback, warn)
	enforceReadiness(plan, risks, warn)
	state.ExamPlan = plan
	c.present.ExamPlan(plan)

	return nil
}

func (c *Controller) enterPhase(ctx context.Context, state *State, phase Phase, title string, index int) {
	state.Phase = phase
	c.present.Phase(title, index, phaseCount)
	c.persistPhase(ctx, state)
	c.logger.Info().Str("run_id", state.RunID).Str("phase", string(phase)).Msg("phase started")
}

func (c *Controller) noteWarnings(state *State, roleID string, warns []string) {
	for _, w := range warns {
		msg := fmt.Sprintf("%s: %s", roleID, w)
		state.Warnings = append(state.Warnings, msg)
		c.present.Warning(msg)
		c.logger.Warn().Str("run_id", state.RunID).Str("role", roleID).Msg(w)
	}
}

// degraded records a diagnostic warning and reports true when err is
// an extraction failure, which costs the run that role's output but
// not the run itself. Provider and input errors are not recoverable
// here and report false.
func (c *Controller) degraded(state *State, roleID string, err error) bool {
	var fail *extract.Failure
	if !errors.As(err, &fail) {
		return false
	}
	msg := fmt.Sprintf("unusable output (%s), continuing without it", fail.Reason)
	if fail.Excerpt != "" {
		msg += fmt.Sprintf("; output began: %.120q", fail.Excerpt)
	}
	c.noteWarnings(state, roleID, []string{msg})
	return true
}

func (c *Controller) fail(ctx context.Context, state *State, err error) (*State, error) {
	state.Outcome = OutcomeFailed
	c.persistFinish(ctx, state)
	c.logger.Error().Str("run_id", state.RunID).Str("phase", string(state.Phase)).Err(err).Msg("run failed")
	return state, err
}

// runStep executes a single role turn through the orchestrator and
// returns its raw output.
func (c *Controller) runStep(ctx context.Context, tr *orchestrator.Transcript, roleID, prompt string) (extract.Output, error) {
	events := c.orc.Run(ctx, []orchestrator.Step{
		{RoleID: roleID, Prompt: orchestrator.StaticPrompt(prompt)},
	}, tr)

	var out extract.Output
	var runErr error
	for ev := range events {
		switch e := ev.(type) {
		case orchestrator.OutputEvent:
			out = e.Output
		case orchestrator.ErrorEvent:
			runErr = e.Err
		}
	}
	if runErr != nil {
		return extract.Output{}, runErr
	}
	if err := ctx.Err(); err != nil {
		return extract.Output{}, err
	}
	return out, nil
}

// runRole runs a role and extracts its typed output, giving the agent
// one corrective retry when the first response fails extraction.
func runRole[T any, PT interface {
	*T
	domain.Validatable
}](c *Controller, ctx context.Context, tr *orchestrator.Transcript, roleID, prompt string) (*T, []string, error) {
	out, err := c.runStep(ctx, tr, roleID, prompt)
	if err != nil {
		return nil, nil, err
	}

	obj, warns, fail := extract.Object[T, PT](out)
	if fail == nil {
		return obj, warns, nil
	}

	c.logger.Warn().
		Str("role", roleID).
		Str("reason", fail.Reason).
		Int("violations", len(fail.Violations)).
		Msg("extraction failed, retrying with corrections")

	out, err = c.runStep(ctx, tr, roleID, correctivePrompt(prompt, fail))
	if err != nil {
		return nil, nil, err
	}
	obj, warns, fail = extract.Object[T, PT](out)
	if fail != nil {
		return nil, nil, fail
	}
	return obj, warns, nil
}

func (c *Controller) persistCreate(ctx context.Context, state *State) {
	if c.runs == nil {
		return
	}
	err := c.runs.CreateRun(ctx, state.RunID, state.Setup.Topics, state.Setup.Email, string(state.Setup.Level))
	if err != nil {
		c.logger.Warn().Err(err).Msg("recording run start failed")
	}
}

func (c *Controller) persistPhase(ctx context.Context, state *State) {
	if c.runs == nil {
		return
	}
	if err := c.runs.UpdatePhase(ctx, state.RunID, string(state.Phase)); err != nil {
		c.logger.Warn().Err(err).Msg("recording run phase failed")
	}
}

func (c *Controller) persistFinish(ctx context.Context, state *State) {
	if c.runs == nil {
		return
	}
	res := store.RunResult{Phase: string(state.Phase), Outcome: string(state.Outcome)}
	if state.Feedback != nil {
		res.ScorePercentage = &state.Feedback.ScorePercentage
		res.Passed = &state.Feedback.Passed
	}
	if state.ExamPlan != nil {
		res.ReadyToBook = &state.ExamPlan.Readiness.ReadyToBook
	}
	if err := c.runs.FinishRun(ctx, state.RunID, res); err != nil {
		c.logger.Warn().Err(err).Msg("recording run result failed")
	}
}
