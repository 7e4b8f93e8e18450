// Package agents defines the six certification-prep agent roles and
// the registry that resolves them by ID.
package agents

import (
	"fmt"

	"github.com/abhisek/certimentor/internal/domain"
	"github.com/abhisek/certimentor/internal/llm"
)

// Role IDs, in workflow order.
const (
	RoleLearningPathCurator = "learning_path_curator"
	RoleStudyPlanGenerator  = "study_plan_generator"
	RoleEngagementAgent     = "engagement_agent"
	RoleAssessmentAgent     = "assessment_agent"
	RoleAssessmentEvaluator = "assessment_evaluator"
	RoleExamPlanAgent       = "exam_plan_agent"
)

// RoleConfig describes one agent role: its instructions, its sampling
// temperature, and the schema its output must satisfy.
type RoleConfig struct {
	ID           string
	Name         string
	Instructions string
	Temperature  float64
	Schema       *llm.Schema
	MaxTokens    int
}

// UnknownRoleError is returned when a role ID is not registered.
type UnknownRoleError struct {
	ID string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown agent role %q", e.ID)
}

// Registry holds the role configurations, keyed by role ID.
type Registry struct {
	roles map[string]RoleConfig
	order []string
}

// NewRegistry builds the registry with all six roles.
func NewRegistry() *Registry {
	r := &Registry{roles: make(map[string]RoleConfig)}
	for _, rc := range []RoleConfig{
		{
			ID:           RoleLearningPathCurator,
			Name:         "Learning Path Curator",
			Instructions: curatorInstructions,
			Temperature:  0.3,
			Schema:       domain.CuratedPlanSchema,
			MaxTokens:    4096,
		},
		{
			ID:           RoleStudyPlanGenerator,
			Name:         "Study Plan Generator",
			Instructions: studyPlanInstructions,
			Temperature:  0.4,
			Schema:       domain.StudyPlanSchema,
			MaxTokens:    6144,
		},
		{
			ID:           RoleEngagementAgent,
			Name:         "Engagement Agent",
			Instructions: engagementInstructions,
			Temperature:  0.6,
			Schema:       domain.EngagementPlanSchema,
			MaxTokens:    4096,
		},
		{
			ID:           RoleAssessmentAgent,
			Name:         "Assessment Agent",
			Instructions: assessmentInstructions,
			Temperature:  0.2,
			Schema:       domain.QuizSchema,
			MaxTokens:    6144,
		},
		{
			ID:           RoleAssessmentEvaluator,
			Name:         "Assessment Evaluator",
			Instructions: evaluatorInstructions,
			Temperature:  0.3,
			Schema:       domain.FeedbackSchema,
			MaxTokens:    6144,
		},
		{
			ID:           RoleExamPlanAgent,
			Name:         "Exam Plan Agent",
			Instructions: examPlanInstructions,
			Temperature:  0.3,
			Schema:       domain.ExamPlanSchema,
			MaxTokens:    4096,
		},
	} {
		r.roles[rc.ID] = rc
		r.order = append(r.order, rc.ID)
	}
	return r
}

// Role resolves a role by ID.
func (r *Registry) Role(id string) (RoleConfig, error) {
	rc, ok := r.roles[id]
	if !ok {
		return RoleConfig{}, &UnknownRoleError{ID: id}
	}
	return rc, nil
}

// Temperature returns a role's sampling temperature.
func (r *Registry) Temperature(id string) (float64, error) {
	rc, err := r.Role(id)
	if err != nil {
		return 0, err
	}
	return rc.Temperature, nil
}

// IDs returns all role IDs in workflow order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
