package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/certimentor/internal/domain"
)

func TestParseWeightPercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25-30%", 30},
		{"20%", 20},
		{" 15 - 20 % ", 20},
		{"35", 35},
		{"unknown", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseWeightPercent(tt.in), "input %q", tt.in)
	}
}

func TestGradeQuiz(t *testing.T) {
	quiz := testQuiz()
	answers := make(map[int]string)
	for _, q := range quiz.Questions {
		answers[q.QuestionNumber] = q.CorrectAnswer
	}
	// Miss both Security questions.
	answers[9] = "A"
	answers[10] = "A"

	g := gradeQuiz(quiz, answers)

	assert.Equal(t, 8, g.Correct)
	assert.InDelta(t, 80.0, g.Score, 0.01)
	assert.True(t, g.Passed)

	require.Len(t, g.Domains, 2)
	assert.Equal(t, domain.DomainStrong, g.Domains[0].Status)
	assert.Equal(t, "Security", g.Domains[1].Domain)
	assert.Equal(t, 0, g.Domains[1].QuestionsRight)
	assert.Equal(t, domain.DomainWeak, g.Domains[1].Status)
}

func TestGradeQuiz_CaseInsensitiveAnswers(t *testing.T) {
	quiz := testQuiz()
	answers := make(map[int]string)
	for _, q := range quiz.Questions {
		answers[q.QuestionNumber] = " " + lower(q.CorrectAnswer) + " "
	}
	g := gradeQuiz(quiz, answers)
	assert.Equal(t, 10, g.Correct)
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func TestReconcileFeedback_OverridesInflatedScore(t *testing.T) {
	quiz := testQuiz()
	answers := map[int]string{}
	for _, q := range quiz.Questions {
		answers[q.QuestionNumber] = "A" // mostly wrong
	}
	g := gradeQuiz(quiz, answers)

	fb := &domain.AssessmentFeedback{
		TotalQuestions:  10,
		CorrectCount:    9,
		ScorePercentage: 90,
		Passed:          true,
	}

	var warnings []string
	reconcileFeedback(fb, g, func(msg string) { warnings = append(warnings, msg) })

	assert.Equal(t, g.Correct, fb.CorrectCount)
	assert.InDelta(t, g.Score, fb.ScorePercentage, 0.01)
	assert.Equal(t, g.Passed, fb.Passed)
	assert.NotEmpty(t, warnings)
}

func TestCriticalRisks(t *testing.T) {
	curated := &domain.CuratedLearningPlan{
		PriorityDomains: []domain.PriorityDomain{
			{DomainName: "Security", ExamWeight: "25-30%"},
			{DomainName: "Networking", ExamWeight: "10-15%"},
		},
	}
	fb := &domain.AssessmentFeedback{
		DomainSummaries: []domain.DomainPerformanceSummary{
			{Domain: "Security", ScorePercentage: 50},   // heavy and weak: risk
			{Domain: "Networking", ScorePercentage: 40}, // weak but light: no risk
		},
	}

	risks := criticalRisks(curated, fb)
	require.Len(t, risks, 1)
	assert.Equal(t, "Security", risks[0].Domain)
	assert.Equal(t, 30.0, risks[0].ExamWeight)
}

func TestEnforceReadiness_RiskBlocksBooking(t *testing.T) {
	plan := &domain.ExamPlan{
		Readiness: domain.ReadinessAssessment{
			OverallScore: 85,
			Status:       domain.StatusReady,
			Action:       domain.ActionBookExam,
			ReadyToBook:  true,
		},
	}
	risks := []domain.CriticalRisk{{Domain: "Security", ExamWeight: 30, Score: 50}}

	var warnings []string
	enforceReadiness(plan, risks, func(msg string) { warnings = append(warnings, msg) })

	assert.Equal(t, domain.StatusNearlyReady, plan.Readiness.Status)
	assert.Equal(t, domain.ActionDelayAndReinforce, plan.Readiness.Action)
	assert.False(t, plan.Readiness.ReadyToBook)
	assert.Equal(t, risks, plan.Readiness.CriticalRisks)
	assert.NotEmpty(t, warnings)
}

func TestEnforceReadiness_ConsistentPlanUntouched(t *testing.T) {
	plan := &domain.ExamPlan{
		Readiness: domain.ReadinessAssessment{
			OverallScore: 85,
			Status:       domain.StatusReady,
			Action:       domain.ActionBookExam,
			ReadyToBook:  true,
		},
	}

	var warnings []string
	enforceReadiness(plan, nil, func(msg string) { warnings = append(warnings, msg) })

	assert.Equal(t, domain.StatusReady, plan.Readiness.Status)
	assert.Equal(t, domain.ActionBookExam, plan.Readiness.Action)
	assert.True(t, plan.Readiness.ReadyToBook)
	assert.Empty(t, warnings)
}

func TestEnforceReadiness_LowScore(t *testing.T) {
	plan := &domain.ExamPlan{
		Readiness: domain.ReadinessAssessment{
			OverallScore: 40,
			Status:       domain.StatusReady,
			Action:       domain.ActionBookExam,
			ReadyToBook:  true,
		},
	}

	enforceReadiness(plan, nil, func(string) {})

	assert.Equal(t, domain.StatusNotReady, plan.Readiness.Status)
	assert.Equal(t, domain.ActionRebuildFoundation, plan.Readiness.Action)
	assert.False(t, plan.Readiness.ReadyToBook)
}

func TestReconcileBreakdown_OverridesAgentFigures(t *testing.T) {
	curated := &domain.CuratedLearningPlan{
		PriorityDomains: []domain.PriorityDomain{
			{DomainName: "Security", ExamWeight: "25-30%"},
			{DomainName: "Networking", ExamWeight: "10-15%"},
		},
	}
	fb := &domain.AssessmentFeedback{
		DomainSummaries: []domain.DomainPerformanceSummary{
			{Domain: "Security", ScorePercentage: 50, Status: domain.DomainWeak},
			{Domain: "Networking", ScorePercentage: 80, Status: domain.DomainStrong},
		},
	}
	plan := &domain.ExamPlan{
		Readiness: domain.ReadinessAssessment{
			// The agent inflated Security and invented a domain.
			Breakdown: []domain.DomainPerformance{
				{Domain: "Security", ExamWeight: "25-30%", Score: 90, Status: domain.DomainStrong},
				{Domain: "Pricing", ExamWeight: "5%", Score: 100, Status: domain.DomainStrong},
			},
		},
	}

	var warnings []string
	reconcileBreakdown(plan, curated, fb, func(msg string) { warnings = append(warnings, msg) })

	require.Len(t, plan.Readiness.Breakdown, 2)
	assert.Equal(t, domain.DomainPerformance{
		Domain: "Security", ExamWeight: "25-30%", Score: 50, Status: domain.DomainWeak,
	}, plan.Readiness.Breakdown[0])
	assert.Equal(t, domain.DomainPerformance{
		Domain: "Networking", ExamWeight: "10-15%", Score: 80, Status: domain.DomainStrong,
	}, plan.Readiness.Breakdown[1])
	assert.NotEmpty(t, warnings)
}

func TestReconcileBreakdown_NoFeedbackKeepsPlan(t *testing.T) {
	plan := &domain.ExamPlan{
		Readiness: domain.ReadinessAssessment{
			Breakdown: []domain.DomainPerformance{
				{Domain: "Security", ExamWeight: "25-30%", Score: 70, Status: domain.DomainStrong},
			},
		},
	}

	reconcileBreakdown(plan, nil, nil, func(msg string) { t.Errorf("unexpected warning %q", msg) })

	require.Len(t, plan.Readiness.Breakdown, 1)
	assert.Equal(t, "Security", plan.Readiness.Breakdown[0].Domain)
}
