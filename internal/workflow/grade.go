package workflow

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/certimentor/internal/domain"
)

// gradeResult is the locally computed grade for a quiz.
type gradeResult struct {
	Correct int
	Score   float64
	Passed  bool
	Domains []domain.DomainPerformanceSummary
}

// gradeQuiz grades the student's answers against the quiz key. The
// evaluator agent explains results; the numbers always come from here.
func gradeQuiz(quiz *domain.Quiz, answers map[int]string) gradeResult {
	type tally struct{ asked, right int }
	byDomain := make(map[string]*tally)
	var domainOrder []string

	correct := 0
	for _, q := range quiz.Questions {
		t, ok := byDomain[q.Domain]
		if !ok {
			t = &tally{}
			byDomain[q.Domain] = t
			domainOrder = append(domainOrder, q.Domain)
		}
		t.asked++
		if strings.EqualFold(strings.TrimSpace(answers[q.QuestionNumber]), q.CorrectAnswer) {
			t.right++
			correct++
		}
	}

	g := gradeResult{Correct: correct}
	if len(quiz.Questions) > 0 {
		g.Score = float64(correct) / float64(len(quiz.Questions)) * 100
	}
	g.Passed = g.Score >= domain.PassThresholdPercent

	for _, name := range domainOrder {
		t := byDomain[name]
		pct := float64(t.right) / float64(t.asked) * 100
		g.Domains = append(g.Domains, domain.DomainPerformanceSummary{
			Domain:          name,
			QuestionsAsked:  t.asked,
			QuestionsRight:  t.right,
			ScorePercentage: pct,
			Status:          domain.DomainStatusFor(pct),
		})
	}
	return g
}

// reconcileFeedback overwrites the evaluator's aggregate figures with
// the locally computed grade, warning when they disagreed.
func reconcileFeedback(fb *domain.AssessmentFeedback, g gradeResult, warn func(string)) {
	if fb.CorrectCount != g.Correct || math.Abs(fb.ScorePercentage-g.Score) > 0.5 {
		warn(fmt.Sprintf("evaluator reported %d/%d (%.0f%%), computed grade is %d correct (%.0f%%); using computed",
			fb.CorrectCount, fb.TotalQuestions, fb.ScorePercentage, g.Correct, g.Score))
	}
	fb.CorrectCount = g.Correct
	fb.ScorePercentage = g.Score
	if fb.Passed != g.Passed {
		warn(fmt.Sprintf("evaluator pass verdict %v disagrees with computed score %.0f%%; using computed", fb.Passed, g.Score))
	}
	fb.Passed = g.Passed

	// Per-domain statuses follow the computed scores too.
	computed := make(map[string]domain.DomainPerformanceSummary, len(g.Domains))
	for _, d := range g.Domains {
		computed[d.Domain] = d
	}
	for i, d := range fb.DomainSummaries {
		c, ok := computed[d.Domain]
		if !ok {
			continue
		}
		if d.QuestionsRight != c.QuestionsRight || d.Status != c.Status {
			warn(fmt.Sprintf("domain %q: evaluator reported %d/%d (%s), computed %d/%d (%s); using computed",
				d.Domain, d.QuestionsRight, d.QuestionsAsked, d.Status,
				c.QuestionsRight, c.QuestionsAsked, c.Status))
		}
		fb.DomainSummaries[i] = c
	}
}

// parseWeightPercent pulls the upper bound out of an exam weight
// string like "25-30%" or "20%". Returns 0 when nothing parses.
func parseWeightPercent(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if _, hi, ok := strings.Cut(s, "-"); ok {
		s = hi
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// criticalRisks finds domains worth more than 20% of the exam where
// the student scored under 60%, joining the curated plan's weights
// with the assessment's per-domain scores.
func criticalRisks(curated *domain.CuratedLearningPlan, fb *domain.AssessmentFeedback) []domain.CriticalRisk {
	if curated == nil || fb == nil {
		return nil
	}
	weights := make(map[string]float64, len(curated.PriorityDomains))
	for _, d := range curated.PriorityDomains {
		weights[strings.ToLower(d.DomainName)] = parseWeightPercent(d.ExamWeight)
	}

	var risks []domain.CriticalRisk
	for _, d := range fb.DomainSummaries {
		weight := weights[strings.ToLower(d.Domain)]
		if weight > domain.CriticalRiskWeightPercent && d.ScorePercentage < domain.CriticalRiskScore {
			risks = append(risks, domain.CriticalRisk{
				Domain:     d.Domain,
				ExamWeight: weight,
				Score:      d.ScorePercentage,
				Impact:     fmt.Sprintf("%.0f%% of the exam with a %.0f%% score", weight, d.ScorePercentage),
			})
		}
	}
	return risks
}

// reconcileBreakdown overwrites the exam plan's per-domain breakdown
// with the computed grades, taking exam weights from the curated plan
// and keeping the agent's stated weight only where the plan has none.
func reconcileBreakdown(plan *domain.ExamPlan, curated *domain.CuratedLearningPlan, fb *domain.AssessmentFeedback, warn func(string)) {
	if fb == nil || len(fb.DomainSummaries) == 0 {
		return
	}

	weights := make(map[string]string)
	if curated != nil {
		for _, d := range curated.PriorityDomains {
			weights[strings.ToLower(d.DomainName)] = d.ExamWeight
		}
	}
	stated := make(map[string]domain.DomainPerformance, len(plan.Readiness.Breakdown))
	for _, p := range plan.Readiness.Breakdown {
		stated[strings.ToLower(p.Domain)] = p
	}

	breakdown := make([]domain.DomainPerformance, 0, len(fb.DomainSummaries))
	for _, d := range fb.DomainSummaries {
		key := strings.ToLower(d.Domain)
		weight := weights[key]
		if weight == "" {
			weight = stated[key].ExamWeight
		}
		score := int(math.Round(d.ScorePercentage))
		if s, ok := stated[key]; ok && (s.Score != score || s.Status != d.Status) {
			warn(fmt.Sprintf("domain breakdown %q: plan reported %d%% (%s), computed %d%% (%s); using computed",
				d.Domain, s.Score, s.Status, score, d.Status))
		}
		breakdown = append(breakdown, domain.DomainPerformance{
			Domain:     d.Domain,
			ExamWeight: weight,
			Score:      score,
			Status:     d.Status,
		})
	}
	plan.Readiness.Breakdown = breakdown
}

// enforceReadiness makes the exam plan's verdict follow policy: the
// status and action derive from the readiness score, any critical risk
// blocks booking, and ready_to_book is consistent with both.
func enforceReadiness(plan *domain.ExamPlan, risks []domain.CriticalRisk, warn func(string)) {
	wantStatus := domain.ReadinessStatusFor(plan.Readiness.OverallScore)
	if len(risks) > 0 && wantStatus == domain.StatusReady {
		wantStatus = domain.StatusNearlyReady
	}
	if plan.Readiness.Status != wantStatus {
		warn(fmt.Sprintf("readiness status %q overridden to %q (score %d, %d critical risks)",
			plan.Readiness.Status, wantStatus, plan.Readiness.OverallScore, len(risks)))
		plan.Readiness.Status = wantStatus
	}

	want := domain.ActionFor(plan.Readiness.OverallScore)
	if len(risks) > 0 && want == domain.ActionBookExam {
		want = domain.ActionDelayAndReinforce
	}

	if plan.Readiness.Action != want {
		warn(fmt.Sprintf("recommended action %q overridden to %q (score %d, %d critical risks)",
			plan.Readiness.Action, want, plan.Readiness.OverallScore, len(risks)))
		plan.Readiness.Action = want
	}

	if len(risks) > 0 {
		plan.Readiness.CriticalRisks = risks
	}

	wantBook := want == domain.ActionBookExam && len(plan.Readiness.CriticalRisks) == 0
	if plan.Readiness.ReadyToBook != wantBook {
		warn(fmt.Sprintf("ready_to_book corrected to %v", wantBook))
		plan.Readiness.ReadyToBook = wantBook
	}
}
