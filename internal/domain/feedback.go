package domain

import (
	"fmt"
	"math"
	"strings"
)

// QuestionFeedback explains one graded question.
type QuestionFeedback struct {
	QuestionNumber int    `json:"question_number"`
	Domain         string `json:"domain"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
	ReviewLink     string `json:"review_link,omitempty"`
}

// DomainPerformanceSummary aggregates results for one exam domain.
type DomainPerformanceSummary struct {
	Domain          string       `json:"domain"`
	QuestionsAsked  int          `json:"questions_asked"`
	QuestionsRight  int          `json:"questions_correct"`
	ScorePercentage float64      `json:"score_percentage"`
	Status          DomainStatus `json:"status"`
}

// AssessmentFeedback is the assessment evaluator's structured output:
// per-question explanations plus per-domain and overall performance.
type AssessmentFeedback struct {
	Exam             string                     `json:"exam"`
	TotalQuestions   int                        `json:"total_questions"`
	CorrectCount     int                        `json:"correct_count"`
	ScorePercentage  float64                    `json:"score_percentage"`
	Passed           bool                       `json:"passed"`
	QuestionFeedback []QuestionFeedback         `json:"question_feedback"`
	DomainSummaries  []DomainPerformanceSummary `json:"domain_performance"`
	OverallFeedback  string                     `json:"overall_feedback"`
	StudyRecs        []string                   `json:"study_recommendations"`
}

func (f *AssessmentFeedback) SchemaName() string { return FeedbackSchema.Name }

// ComputedScore derives the percentage from the per-question results,
// independent of the reported score_percentage.
func (f *AssessmentFeedback) ComputedScore() float64 {
	if len(f.QuestionFeedback) == 0 {
		return 0
	}
	correct := 0
	for _, q := range f.QuestionFeedback {
		if q.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(f.QuestionFeedback)) * 100
}

// WeakDomains returns domains scoring below the adequate threshold.
func (f *AssessmentFeedback) WeakDomains() []DomainPerformanceSummary {
	var out []DomainPerformanceSummary
	for _, d := range f.DomainSummaries {
		if d.ScorePercentage < AdequateThresholdPercent {
			out = append(out, d)
		}
	}
	return out
}

// SummaryText renders a compact summary for downstream agent prompts.
func (f *AssessmentFeedback) SummaryText() string {
	var b strings.Builder

	verdict := "FAILED"
	if f.Passed {
		verdict = "PASSED"
	}
	fmt.Fprintf(&b, "Assessment: %d/%d correct (%.0f%%) - %s\n\n",
		f.CorrectCount, f.TotalQuestions, f.ScorePercentage, verdict)

	b.WriteString("Domain performance:\n")
	for _, d := range f.DomainSummaries {
		fmt.Fprintf(&b, "  %s: %d/%d (%.0f%%) - %s\n",
			d.Domain, d.QuestionsRight, d.QuestionsAsked, d.ScorePercentage, d.Status)
	}

	if len(f.StudyRecs) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range f.StudyRecs {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}

	return b.String()
}

// Validate checks the feedback contract.
func (f *AssessmentFeedback) Validate() *Report {
	r := &Report{Schema: f.SchemaName()}

	if n := len(f.QuestionFeedback); n != QuizQuestionCount {
		r.violate("question_feedback", "expected %d entries, got %d", QuizQuestionCount, n)
	}

	seen := make(map[int]bool)
	for i, q := range f.QuestionFeedback {
		if q.QuestionNumber < 1 || q.QuestionNumber > QuizQuestionCount {
			r.violate(fmt.Sprintf("question_feedback[%d].question_number", i),
				"must be 1-%d, got %d", QuizQuestionCount, q.QuestionNumber)
		} else if seen[q.QuestionNumber] {
			r.violate(fmt.Sprintf("question_feedback[%d].question_number", i),
				"duplicate question number %d", q.QuestionNumber)
		}
		seen[q.QuestionNumber] = true

		if !ValidAnswer(q.CorrectAnswer) {
			r.violate(fmt.Sprintf("question_feedback[%d].correct_answer", i),
				"must be A-D, got %q", q.CorrectAnswer)
		}
	}

	if f.ScorePercentage < 0 || f.ScorePercentage > 100 {
		r.violate("score_percentage", "must be 0-100, got %g", f.ScorePercentage)
	}

	for i, d := range f.DomainSummaries {
		if !validDomainStatus(d.Status) {
			r.violate(fmt.Sprintf("domain_performance[%d].status", i),
				"must be strong, adequate, or weak, got %q", d.Status)
		}
	}

	if computed := f.ComputedScore(); len(f.QuestionFeedback) > 0 && math.Abs(computed-f.ScorePercentage) > 0.5 {
		r.warn("score_percentage %.1f disagrees with per-question results (%.1f)", f.ScorePercentage, computed)
	}
	if wantPass := f.ScorePercentage >= PassThresholdPercent; f.Passed != wantPass {
		r.warn("passed is %v but score %.1f%% implies %v", f.Passed, f.ScorePercentage, wantPass)
	}
	for i, d := range f.DomainSummaries {
		if validDomainStatus(d.Status) && d.Status != DomainStatusFor(d.ScorePercentage) {
			r.warn("domain_performance[%d] status %q disagrees with score %.1f%%", i, d.Status, d.ScorePercentage)
		}
	}

	return r
}
