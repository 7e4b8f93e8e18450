package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/certimentor/internal/domain"
)

func TestPhase(t *testing.T) {
	var out bytes.Buffer
	New(&out).Phase("Preparation", 1, 5)
	assert.Contains(t, out.String(), "Phase 1/5: Preparation")
}

func TestFeedback_ShowsMissedQuestions(t *testing.T) {
	var out bytes.Buffer
	New(&out).Feedback(&domain.AssessmentFeedback{
		TotalQuestions:  10,
		CorrectCount:    9,
		ScorePercentage: 90,
		Passed:          true,
		QuestionFeedback: []domain.QuestionFeedback{
			{QuestionNumber: 3, Domain: "Security", UserAnswer: "A", CorrectAnswer: "C",
				IsCorrect: false, Explanation: "C because of least privilege."},
		},
		DomainSummaries: []domain.DomainPerformanceSummary{
			{Domain: "Security", QuestionsAsked: 1, QuestionsRight: 0, ScorePercentage: 0, Status: domain.DomainWeak},
		},
	})

	s := out.String()
	assert.Contains(t, s, "9/10")
	assert.Contains(t, s, "PASSED")
	assert.Contains(t, s, "Q3")
	assert.Contains(t, s, "least privilege")
}

func TestExamPlan_NotReady(t *testing.T) {
	var out bytes.Buffer
	New(&out).ExamPlan(&domain.ExamPlan{
		ExamInfo: domain.ExamInfo{ExamName: "Azure Fundamentals", ExamCode: "AZ-900"},
		Readiness: domain.ReadinessAssessment{
			OverallScore: 70,
			Status:       domain.StatusNearlyReady,
			Action:       domain.ActionDelayAndReinforce,
			Rationale:    "Weak on networking.",
			Breakdown: []domain.DomainPerformance{
				{Domain: "Networking", ExamWeight: "25-30%", Score: 40, Status: domain.DomainWeak},
			},
			CriticalRisks: []domain.CriticalRisk{
				{Domain: "Networking", Impact: "30% of the exam with a 40% score"},
			},
		},
		Timeline: domain.PreparationTimeline{WeeksUntilExam: 3},
	})

	s := out.String()
	assert.Contains(t, s, "70/100")
	assert.Contains(t, s, "nearly_ready")
	assert.Contains(t, s, "Networking")
	assert.Contains(t, s, "25-30% of exam")
	assert.Contains(t, s, "Hold off on booking")
}

func TestWarning(t *testing.T) {
	var out bytes.Buffer
	New(&out).Warning("scores disagreed")
	assert.Contains(t, out.String(), "scores disagreed")
}
