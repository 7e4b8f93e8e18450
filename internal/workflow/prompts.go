package workflow

import (
	"fmt"
	"strings"

	"github.com/abhisek/certimentor/internal/domain"
	"github.com/abhisek/certimentor/internal/extract"
)

func curatorPrompt(setup Setup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Study topics: %s\n", setup.Topics)
	fmt.Fprintf(&b, "Experience level: %s\n", setup.Level)
	b.WriteString("\nIdentify the matching certification exam, rank its domains, and recommend learning paths.")
	return b.String()
}

// A nil object here means the upstream role's output failed
// extraction; the raw text still travels in the conversation, so the
// prompt points back at it instead.
func studyPlanPrompt(curated *domain.CuratedLearningPlan, setup Setup) string {
	var b strings.Builder
	if curated != nil {
		b.WriteString("Curated learning plan:\n")
		b.WriteString(curated.SummaryText())
		fmt.Fprintf(&b, "\nTotal content: roughly %.1f hours.\n", curated.TotalEstimatedHours())
	} else {
		b.WriteString("Work from the curated learning plan earlier in this conversation.\n")
	}
	fmt.Fprintf(&b, "Availability: %d days per week, %.1f hours per day.\n",
		setup.StudyDaysPerWeek, setup.HoursPerDay)
	b.WriteString("\nProduce the week-by-week study plan.")
	return b.String()
}

func engagementPrompt(plan *domain.StudyPlan, setup Setup) string {
	var b strings.Builder
	if plan != nil {
		b.WriteString("Study plan:\n")
		b.WriteString(plan.SummaryText())
	} else {
		b.WriteString("Work from the study plan earlier in this conversation.\n")
	}
	fmt.Fprintf(&b, "\nStudent email: %s\n", setup.Email)
	b.WriteString("\nProduce the full reminder schedule for this plan.")
	return b.String()
}

func quizPrompt(curated *domain.CuratedLearningPlan) string {
	var b strings.Builder
	if curated != nil {
		fmt.Fprintf(&b, "Exam: %s\n\nDomains studied:\n", curated.Exam)
		for _, d := range curated.PriorityDomains {
			fmt.Fprintf(&b, "  - %s (%s of the exam)\n", d.DomainName, d.ExamWeight)
		}
	} else {
		b.WriteString("Cover the certification exam and domains discussed earlier in this conversation.\n")
	}
	b.WriteString("\nWrite the practice quiz.")
	return b.String()
}

func evaluatorPrompt(quiz *domain.Quiz, answers map[int]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exam: %s\n\nQuiz and the student's answers:\n\n", quiz.Exam)

	for _, q := range quiz.Sorted() {
		fmt.Fprintf(&b, "Q%d [%s, %s]: %s\n", q.QuestionNumber, q.Domain, q.Difficulty, q.QuestionText)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "  %s. %s\n", opt.Letter, opt.Text)
		}
		fmt.Fprintf(&b, "Correct answer: %s\n", q.CorrectAnswer)
		fmt.Fprintf(&b, "Student answered: %s\n\n", answers[q.QuestionNumber])
	}

	b.WriteString("Grade every question and summarize performance per domain.")
	return b.String()
}

func examPlanPrompt(feedback *domain.AssessmentFeedback, curated *domain.CuratedLearningPlan, risks []domain.CriticalRisk) string {
	var b strings.Builder
	if feedback != nil {
		b.WriteString("Assessment results:\n")
		b.WriteString(feedback.SummaryText())
	} else {
		b.WriteString("No graded assessment is available; judge readiness from the conversation so far and say so in the rationale.\n")
	}

	if curated != nil {
		b.WriteString("\nDomain exam weights:\n")
		for _, d := range curated.PriorityDomains {
			fmt.Fprintf(&b, "  - %s: %s\n", d.DomainName, d.ExamWeight)
		}
	}

	if len(risks) > 0 {
		b.WriteString("\nCritical risks already identified:\n")
		for _, r := range risks {
			fmt.Fprintf(&b, "  - %s: %.0f%% of the exam, scored %.0f%%\n", r.Domain, r.ExamWeight, r.Score)
		}
	}

	b.WriteString("\nProduce the readiness verdict and exam plan.")
	return b.String()
}

// correctivePrompt asks a role to try again after its output failed
// extraction, quoting what went wrong.
func correctivePrompt(original string, fail *extract.Failure) string {
	var b strings.Builder
	b.WriteString(original)
	b.WriteString("\n\nYour previous response could not be used")
	switch fail.Reason {
	case extract.ReasonSchemaViolation:
		b.WriteString(" because it violated the required schema:\n")
		violations := fail.Violations
		if len(violations) > 10 {
			violations = violations[:10]
		}
		for _, v := range violations {
			fmt.Fprintf(&b, "  - %s: %s\n", v.Field, v.Message)
		}
	default:
		b.WriteString(" because it contained no valid JSON.\n")
	}
	b.WriteString("Respond again with only a single JSON object matching the requested schema.")
	return b.String()
}
