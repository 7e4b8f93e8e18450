package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuiz() *Quiz {
	q := &Quiz{Exam: "AZ-900", TotalQuestions: QuizQuestionCount}
	difficulties := []DifficultyLevel{
		DifficultyEasy, DifficultyEasy, DifficultyEasy,
		DifficultyMedium, DifficultyMedium, DifficultyMedium, DifficultyMedium, DifficultyMedium,
		DifficultyHard, DifficultyHard,
	}
	for i := 0; i < QuizQuestionCount; i++ {
		q.Questions = append(q.Questions, Question{
			QuestionNumber:    i + 1,
			Domain:            "Cloud Concepts",
			LearningObjective: "Describe cloud models",
			BloomLevel:        BloomUnderstand,
			Difficulty:        difficulties[i],
			QuestionText:      fmt.Sprintf("Question %d?", i+1),
			Options: []QuestionOption{
				{Letter: "A", Text: "first"},
				{Letter: "B", Text: "second"},
				{Letter: "C", Text: "third"},
				{Letter: "D", Text: "fourth"},
			},
			CorrectAnswer:   "B",
			Explanation:     "Because B.",
			IsScenarioBased: i < 2,
		})
	}
	return q
}

func TestQuizValidate_Valid(t *testing.T) {
	r := validQuiz().Validate()
	assert.True(t, r.OK())
	assert.Empty(t, r.Warnings)
}

func TestQuizValidate_WrongCount(t *testing.T) {
	q := validQuiz()
	q.Questions = q.Questions[:7]
	r := q.Validate()
	require.False(t, r.OK())
	assert.Contains(t, r.Violations[0].Field, "questions")
}

func TestQuizValidate_DuplicateNumbers(t *testing.T) {
	q := validQuiz()
	q.Questions[4].QuestionNumber = 3
	r := q.Validate()
	assert.False(t, r.OK())
}

func TestQuizValidate_BadCorrectAnswer(t *testing.T) {
	q := validQuiz()
	q.Questions[0].CorrectAnswer = "E"
	r := q.Validate()
	assert.False(t, r.OK())
}

func TestQuizValidate_WrongOptionCount(t *testing.T) {
	q := validQuiz()
	q.Questions[2].Options = q.Questions[2].Options[:3]
	r := q.Validate()
	assert.False(t, r.OK())
}

func TestQuizValidate_OptionsOutOfOrder(t *testing.T) {
	q := validQuiz()
	q.Questions[1].Options[0].Letter = "B"
	q.Questions[1].Options[1].Letter = "A"
	r := q.Validate()
	assert.False(t, r.OK())
}

func TestQuizValidate_DistributionIsWarningOnly(t *testing.T) {
	q := validQuiz()
	q.Questions[0].Difficulty = DifficultyHard
	r := q.Validate()
	assert.True(t, r.OK(), "difficulty skew must not be a hard violation")
	assert.NotEmpty(t, r.Warnings)
}

func TestQuizValidate_ScenarioShortfallIsWarningOnly(t *testing.T) {
	q := validQuiz()
	for i := range q.Questions {
		q.Questions[i].IsScenarioBased = false
	}
	r := q.Validate()
	assert.True(t, r.OK())
	assert.NotEmpty(t, r.Warnings)
}

func TestQuizCorrectAnswers(t *testing.T) {
	q := validQuiz()
	answers := q.CorrectAnswers()
	require.Len(t, answers, QuizQuestionCount)
	assert.Equal(t, "B", answers[0])
	assert.Equal(t, "B", answers[9])
}

func TestQuizSorted(t *testing.T) {
	q := validQuiz()
	q.Questions[0], q.Questions[9] = q.Questions[9], q.Questions[0]
	sorted := q.Sorted()
	for i, question := range sorted {
		assert.Equal(t, i+1, question.QuestionNumber)
	}
}
