// Package render prints workflow results to the terminal with lipgloss.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/certimentor/internal/domain"
)

// Renderer writes styled phase output to a writer.
type Renderer struct {
	out io.Writer
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Phase prints a phase banner.
func (r *Renderer) Phase(name string, index, total int) {
	banner := fmt.Sprintf("Phase %d/%d: %s", index, total, name)
	fmt.Fprintf(r.out, "\n%s\n%s\n", phaseStyle.Render(banner), dimStyle.Render(strings.Repeat("-", len(banner))))
}

// CuratedPlan prints the curated learning plan.
func (r *Renderer) CuratedPlan(p *domain.CuratedLearningPlan) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf("Exam: %s (%s level)", p.Exam, p.UserLevel)))

	b.WriteString("\nPriority domains:\n")
	for _, d := range p.PriorityDomains {
		fmt.Fprintf(&b, "  %s %s %s\n",
			priorityMark(d.PriorityLevel), d.DomainName, dimStyle.Render("("+d.ExamWeight+")"))
	}

	b.WriteString("\nRecommended learning paths:\n")
	for i, path := range p.RecommendedLearningPaths {
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, path.Title,
			dimStyle.Render(fmt.Sprintf("(relevance %d/10, %s)", path.RelevanceScore, path.EstimatedHours)))
		for _, m := range path.Modules {
			fmt.Fprintf(&b, "     - %s %s\n", m.ModuleTitle, dimStyle.Render("("+m.Duration+")"))
		}
	}

	if p.Coverage.GapsIdentified != "" && p.Coverage.GapsIdentified != "None" {
		fmt.Fprintf(&b, "\n%s %s\n", warnStyle.Render("Gaps:"), p.Coverage.GapsIdentified)
	}

	fmt.Fprintln(r.out, cardStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func priorityMark(p domain.PriorityLevel) string {
	switch p {
	case domain.PriorityHigh:
		return failStyle.Render("!")
	case domain.PriorityMedium:
		return warnStyle.Render("*")
	default:
		return dimStyle.Render("-")
	}
}

// StudyPlan prints the week-by-week schedule.
func (r *Renderer) StudyPlan(p *domain.StudyPlan) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf(
		"Study plan: %d weeks, %.1f hrs/week", p.DurationWeeks, p.HoursPerWeek)))

	for _, w := range p.Weeks {
		fmt.Fprintf(&b, "\nWeek %d: %s %s\n", w.WeekNumber, w.Theme,
			dimStyle.Render("("+strings.Join(w.TargetDomains, ", ")+")"))
		for _, s := range w.Sessions {
			fmt.Fprintf(&b, "  %-10s %s %s\n", s.Day, s.FocusTopic,
				dimStyle.Render(fmt.Sprintf("(%s, %.1fh)", s.SessionType, s.DurationHrs)))
		}
	}

	if len(p.Milestones) > 0 {
		b.WriteString("\nMilestones:\n")
		for _, m := range p.Milestones {
			fmt.Fprintf(&b, "  %3d%%  week %d: %s\n", m.PercentComplete, m.Week, m.Checkpoint)
		}
	}

	fmt.Fprintln(r.out, cardStyle.Render(strings.TrimRight(b.String(), "\n")))
}

// EngagementPlan prints a summary of the reminder schedule.
func (r *Renderer) EngagementPlan(p *domain.EngagementPlan) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf(
		"%d study reminders scheduled for %s", len(p.Reminders), p.Email)))

	byWeek := p.ByWeek()
	weeks := 0
	for range byWeek {
		weeks++
	}
	fmt.Fprintf(&b, "Covering %d weeks of the plan.", weeks)

	fmt.Fprintln(r.out, cardStyle.Render(b.String()))
}

// QuizIntro announces the quiz before the questions are asked.
func (r *Renderer) QuizIntro(q *domain.Quiz) {
	fmt.Fprintf(r.out, "\n%s\n%s\n",
		headingStyle.Render(fmt.Sprintf("Practice assessment: %d questions", len(q.Questions))),
		dimStyle.Render("Answer A, B, C, or D. You need 70% to pass."))
}

// Feedback prints graded results.
func (r *Renderer) Feedback(f *domain.AssessmentFeedback) {
	var b strings.Builder

	verdict := failStyle.Render("NOT PASSED")
	if f.Passed {
		verdict = passStyle.Render("PASSED")
	}
	fmt.Fprintf(&b, "%s  %s\n", headingStyle.Render(fmt.Sprintf(
		"Score: %d/%d (%.0f%%)", f.CorrectCount, f.TotalQuestions, f.ScorePercentage)), verdict)

	b.WriteString("\nBy domain:\n")
	for _, d := range f.DomainSummaries {
		fmt.Fprintf(&b, "  %-28s %d/%d  %s\n", d.Domain, d.QuestionsRight, d.QuestionsAsked,
			statusStyle(string(d.Status)).Render(string(d.Status)))
	}

	wrong := 0
	for _, q := range f.QuestionFeedback {
		if !q.IsCorrect {
			wrong++
		}
	}
	if wrong > 0 {
		b.WriteString("\nMissed questions:\n")
		for _, q := range f.QuestionFeedback {
			if q.IsCorrect {
				continue
			}
			fmt.Fprintf(&b, "  Q%d (%s): answered %s, correct %s\n    %s\n",
				q.QuestionNumber, q.Domain, q.UserAnswer, q.CorrectAnswer, dimStyle.Render(q.Explanation))
		}
	}

	if len(f.StudyRecs) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range f.StudyRecs {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}

	fmt.Fprintln(r.out, cardStyle.Render(strings.TrimRight(b.String(), "\n")))
}

// ExamPlan prints the readiness verdict and booking plan.
func (r *Renderer) ExamPlan(p *domain.ExamPlan) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf(
		"%s (%s)", p.ExamInfo.ExamName, p.ExamInfo.ExamCode)))
	fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf(
		"%s, %d minutes, %s questions, passing %s",
		p.ExamInfo.Cost, p.ExamInfo.DurationMinutes, p.ExamInfo.QuestionCount, p.ExamInfo.PassingScore)))

	fmt.Fprintf(&b, "\nReadiness: %d/100 (%s)  %s\n",
		p.Readiness.OverallScore, p.Readiness.Status, actionLabel(p.Readiness.Action))
	fmt.Fprintf(&b, "%s\n", p.Readiness.Rationale)

	if len(p.Readiness.Breakdown) > 0 {
		b.WriteString("\nBy domain:\n")
		for _, d := range p.Readiness.Breakdown {
			fmt.Fprintf(&b, "  %-28s %s of exam, %d%%  %s\n", d.Domain, d.ExamWeight, d.Score,
				statusStyle(string(d.Status)).Render(string(d.Status)))
		}
	}

	if len(p.Readiness.CriticalRisks) > 0 {
		fmt.Fprintf(&b, "\n%s\n", failStyle.Render("Critical risks:"))
		for _, risk := range p.Readiness.CriticalRisks {
			fmt.Fprintf(&b, "  - %s: %s\n", risk.Domain, risk.Impact)
		}
	}

	if p.Readiness.ReadyToBook {
		fmt.Fprintf(&b, "\n%s %s\n", passStyle.Render("Ready to book."),
			fmt.Sprintf("Recommended date: %s (%s)", p.Timeline.RecommendedExamDate, p.ExamInfo.SchedulingURL))
	} else {
		fmt.Fprintf(&b, "\n%s %d more weeks of preparation recommended.\n",
			warnStyle.Render("Hold off on booking."), p.Timeline.WeeksUntilExam)
	}

	if len(p.Timeline.Actions) > 0 {
		b.WriteString("\nTargeted actions:\n")
		for _, a := range p.Timeline.Actions {
			fmt.Fprintf(&b, "  %d. %s\n", a.Priority, a.Description)
		}
	}

	if len(p.NextSteps) > 0 {
		b.WriteString("\nNext steps:\n")
		for i, step := range p.NextSteps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	fmt.Fprintln(r.out, cardStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func actionLabel(a domain.ReadinessAction) string {
	switch a {
	case domain.ActionBookExam:
		return passStyle.Render("book the exam")
	case domain.ActionDelayAndReinforce:
		return warnStyle.Render("delay and reinforce")
	default:
		return failStyle.Render("rebuild foundations")
	}
}

// Warning prints a cross-check warning.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", warnStyle.Render("warning:"), msg)
}
