package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFeedback() *AssessmentFeedback {
	f := &AssessmentFeedback{
		Exam:            "AZ-900",
		TotalQuestions:  QuizQuestionCount,
		CorrectCount:    8,
		ScorePercentage: 80,
		Passed:          true,
		DomainSummaries: []DomainPerformanceSummary{
			{Domain: "Cloud Concepts", QuestionsAsked: 5, QuestionsRight: 4, ScorePercentage: 80, Status: DomainStrong},
			{Domain: "Pricing", QuestionsAsked: 5, QuestionsRight: 4, ScorePercentage: 80, Status: DomainStrong},
		},
		OverallFeedback: "Solid result.",
		StudyRecs:       []string{"Review SLAs"},
	}
	for i := 0; i < QuizQuestionCount; i++ {
		f.QuestionFeedback = append(f.QuestionFeedback, QuestionFeedback{
			QuestionNumber: i + 1,
			Domain:         "Cloud Concepts",
			UserAnswer:     "A",
			CorrectAnswer:  "A",
			IsCorrect:      i < 8,
			Explanation:    fmt.Sprintf("Answer %d explained.", i+1),
		})
	}
	return f
}

func TestFeedbackValidate_Valid(t *testing.T) {
	r := validFeedback().Validate()
	assert.True(t, r.OK())
	assert.Empty(t, r.Warnings)
}

func TestFeedbackValidate_MissingQuestions(t *testing.T) {
	f := validFeedback()
	f.QuestionFeedback = f.QuestionFeedback[:9]
	r := f.Validate()
	require.False(t, r.OK())
}

func TestFeedbackValidate_ScoreMismatchWarns(t *testing.T) {
	f := validFeedback()
	f.ScorePercentage = 95
	f.Passed = true
	r := f.Validate()
	assert.True(t, r.OK())
	assert.NotEmpty(t, r.Warnings)
}

func TestFeedbackValidate_PassedDisagreesWithScoreWarns(t *testing.T) {
	f := validFeedback()
	f.Passed = false
	r := f.Validate()
	assert.True(t, r.OK())
	assert.NotEmpty(t, r.Warnings)
}

func TestFeedbackValidate_BadDomainStatus(t *testing.T) {
	f := validFeedback()
	f.DomainSummaries[0].Status = "excellent"
	r := f.Validate()
	assert.False(t, r.OK())
}

func TestFeedbackComputedScore(t *testing.T) {
	f := validFeedback()
	assert.InDelta(t, 80.0, f.ComputedScore(), 0.01)
}

func TestFeedbackWeakDomains(t *testing.T) {
	f := validFeedback()
	f.DomainSummaries = append(f.DomainSummaries, DomainPerformanceSummary{
		Domain: "Security", QuestionsAsked: 2, QuestionsRight: 0, ScorePercentage: 0, Status: DomainWeak,
	})
	weak := f.WeakDomains()
	require.Len(t, weak, 1)
	assert.Equal(t, "Security", weak[0].Domain)
}

func TestDomainStatusFor(t *testing.T) {
	assert.Equal(t, DomainStrong, DomainStatusFor(70))
	assert.Equal(t, DomainAdequate, DomainStatusFor(65))
	assert.Equal(t, DomainWeak, DomainStatusFor(59.9))
}
