package domain

import (
	"fmt"
	"strings"
)

// ReadinessAction is the exam plan agent's recommended course of action.
type ReadinessAction string

const (
	ActionBookExam          ReadinessAction = "book_exam"
	ActionDelayAndReinforce ReadinessAction = "delay_and_reinforce"
	ActionRebuildFoundation ReadinessAction = "rebuild_foundation"
)

func validReadinessAction(a ReadinessAction) bool {
	switch a {
	case ActionBookExam, ActionDelayAndReinforce, ActionRebuildFoundation:
		return true
	}
	return false
}

// ActionFor maps an overall readiness score to the policy action,
// before critical risks are taken into account.
func ActionFor(score int) ReadinessAction {
	switch {
	case score >= ReadyThresholdScore:
		return ActionBookExam
	case score >= NearlyReadyThresholdScore:
		return ActionDelayAndReinforce
	default:
		return ActionRebuildFoundation
	}
}

// ReadinessStatus is the overall readiness band for the exam.
type ReadinessStatus string

const (
	StatusReady       ReadinessStatus = "ready"
	StatusNearlyReady ReadinessStatus = "nearly_ready"
	StatusNotReady    ReadinessStatus = "not_ready"
)

func validReadinessStatus(s ReadinessStatus) bool {
	switch s {
	case StatusReady, StatusNearlyReady, StatusNotReady:
		return true
	}
	return false
}

// ReadinessStatusFor maps an overall readiness score to its band,
// before critical risks are taken into account.
func ReadinessStatusFor(score int) ReadinessStatus {
	switch {
	case score >= ReadyThresholdScore:
		return StatusReady
	case score >= NearlyReadyThresholdScore:
		return StatusNearlyReady
	default:
		return StatusNotReady
	}
}

// ConfidenceLevel is how sure the exam plan agent is about its verdict.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

func validConfidenceLevel(c ConfidenceLevel) bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// DomainPerformance is the per-domain line of the readiness breakdown.
type DomainPerformance struct {
	Domain     string       `json:"domain_name"`
	ExamWeight string       `json:"exam_weight"` // e.g. "25-30%"
	Score      int          `json:"score"`       // 0-100
	Status     DomainStatus `json:"status"`
}

// ExamInfo carries scheduling facts about the certification exam.
type ExamInfo struct {
	ExamCode         string `json:"exam_code"`
	ExamName         string `json:"exam_name"`
	Cost             string `json:"cost"`
	PassingScore     string `json:"passing_score"`
	DurationMinutes  int    `json:"duration_minutes"`
	QuestionCount    string `json:"question_count"`
	SchedulingURL    string `json:"scheduling_url"`
	RetakePolicy     string `json:"retake_policy"`
}

// CriticalRisk flags a heavily weighted domain where the student is weak.
type CriticalRisk struct {
	Domain     string  `json:"domain"`
	ExamWeight float64 `json:"exam_weight_percent"`
	Score      float64 `json:"score_percentage"`
	Impact     string  `json:"impact"`
}

// ReadinessAssessment is the exam plan agent's readiness verdict.
type ReadinessAssessment struct {
	OverallScore  int                 `json:"overall_readiness_score"` // 0-100
	Status        ReadinessStatus     `json:"status"`
	Confidence    ConfidenceLevel     `json:"confidence_level"`
	Action        ReadinessAction     `json:"recommended_action"`
	ReadyToBook   bool                `json:"ready_to_book"`
	Rationale     string              `json:"rationale"`
	Breakdown     []DomainPerformance `json:"domain_breakdown"` // 1-10 entries
	CriticalRisks []CriticalRisk      `json:"critical_risks"`
}

// TargetedAction is one concrete step in the preparation timeline.
type TargetedAction struct {
	Priority    int    `json:"priority"`
	Description string `json:"description"`
	Domain      string `json:"domain,omitempty"`
	ModuleURL   string `json:"module_url,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
}

// PreparationTimeline lays out the remaining work before exam day.
type PreparationTimeline struct {
	RecommendedExamDate string           `json:"recommended_exam_date"`
	WeeksUntilExam      int              `json:"weeks_until_exam"`
	Actions             []TargetedAction `json:"targeted_actions"`
}

// ExamPlan is the exam plan agent's structured output: exam logistics,
// a readiness verdict, and a concrete preparation timeline.
type ExamPlan struct {
	Exam              string              `json:"exam"`
	ExamInfo          ExamInfo            `json:"exam_info"`
	Readiness         ReadinessAssessment `json:"readiness_assessment"`
	Timeline          PreparationTimeline `json:"preparation_timeline"`
	ExamDayStrategies []string            `json:"exam_day_strategies"` // 3-7 items
	FinalTips         []string            `json:"final_tips"`          // 3-5 items
	NextSteps         []string            `json:"next_steps"`          // up to 5 items
}

func (p *ExamPlan) SchemaName() string { return ExamPlanSchema.Name }

// SummaryText renders a compact human-readable summary.
func (p *ExamPlan) SummaryText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exam: %s (%s)\n", p.ExamInfo.ExamName, p.ExamInfo.ExamCode)
	fmt.Fprintf(&b, "Readiness: %d/100 (%s) - %s\n", p.Readiness.OverallScore, p.Readiness.Status, p.Readiness.Action)
	if p.Readiness.ReadyToBook {
		fmt.Fprintf(&b, "Ready to book. Target date: %s\n", p.Timeline.RecommendedExamDate)
	} else {
		fmt.Fprintf(&b, "Not ready to book yet. %d weeks of preparation remaining.\n", p.Timeline.WeeksUntilExam)
	}

	if len(p.Readiness.Breakdown) > 0 {
		b.WriteString("\nDomain breakdown:\n")
		for _, perf := range p.Readiness.Breakdown {
			fmt.Fprintf(&b, "  - %s (%s of exam): %d%% [%s]\n", perf.Domain, perf.ExamWeight, perf.Score, perf.Status)
		}
	}

	if len(p.Readiness.CriticalRisks) > 0 {
		b.WriteString("\nCritical risks:\n")
		for _, risk := range p.Readiness.CriticalRisks {
			fmt.Fprintf(&b, "  - %s (%.0f%% of exam, scored %.0f%%)\n", risk.Domain, risk.ExamWeight, risk.Score)
		}
	}

	if len(p.NextSteps) > 0 {
		b.WriteString("\nNext steps:\n")
		for i, step := range p.NextSteps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	return b.String()
}

// Validate checks the exam plan contract.
func (p *ExamPlan) Validate() *Report {
	r := &Report{Schema: p.SchemaName()}

	if p.ExamInfo.ExamName == "" {
		r.violate("exam_info.exam_name", "is required")
	}
	if p.Readiness.OverallScore < 0 || p.Readiness.OverallScore > 100 {
		r.violate("readiness_assessment.overall_readiness_score", "must be 0-100, got %d", p.Readiness.OverallScore)
	}
	if !validReadinessStatus(p.Readiness.Status) {
		r.violate("readiness_assessment.status",
			"must be ready, nearly_ready, or not_ready, got %q", p.Readiness.Status)
	}
	if !validConfidenceLevel(p.Readiness.Confidence) {
		r.violate("readiness_assessment.confidence_level",
			"must be low, medium, or high, got %q", p.Readiness.Confidence)
	}
	if !validReadinessAction(p.Readiness.Action) {
		r.violate("readiness_assessment.recommended_action",
			"must be book_exam, delay_and_reinforce, or rebuild_foundation, got %q", p.Readiness.Action)
	}

	if n := len(p.Readiness.Breakdown); n < 1 || n > 10 {
		r.violate("readiness_assessment.domain_breakdown", "expected 1-10 entries, got %d", n)
	}
	for i, perf := range p.Readiness.Breakdown {
		field := func(name string) string {
			return fmt.Sprintf("readiness_assessment.domain_breakdown[%d].%s", i, name)
		}
		if len(perf.Domain) < 3 {
			r.violate(field("domain_name"), "must be at least 3 characters, got %q", perf.Domain)
		}
		if perf.Score < 0 || perf.Score > 100 {
			r.violate(field("score"), "must be 0-100, got %d", perf.Score)
		}
		if !validDomainStatus(perf.Status) {
			r.violate(field("status"), "must be strong, adequate, or weak, got %q", perf.Status)
		} else if perf.Score >= 0 && perf.Score <= 100 {
			if want := DomainStatusFor(float64(perf.Score)); perf.Status != want {
				r.warn("domain_breakdown[%d] status %q disagrees with score %d (expected %q)",
					i, perf.Status, perf.Score, want)
			}
		}
	}

	if n := len(p.ExamDayStrategies); n < 3 || n > 7 {
		r.violate("exam_day_strategies", "expected 3-7 items, got %d", n)
	}
	if n := len(p.FinalTips); n < 3 || n > 5 {
		r.violate("final_tips", "expected 3-5 items, got %d", n)
	}
	if n := len(p.NextSteps); n > 5 {
		r.violate("next_steps", "expected at most 5 items, got %d", n)
	}

	for i, risk := range p.Readiness.CriticalRisks {
		if risk.Domain == "" {
			r.violate(fmt.Sprintf("readiness_assessment.critical_risks[%d].domain", i), "is required")
		}
	}

	if validReadinessStatus(p.Readiness.Status) {
		want := ReadinessStatusFor(p.Readiness.OverallScore)
		if len(p.Readiness.CriticalRisks) > 0 && want == StatusReady {
			want = StatusNearlyReady
		}
		if p.Readiness.Status != want {
			r.warn("status %q disagrees with score %d and %d critical risks (expected %q)",
				p.Readiness.Status, p.Readiness.OverallScore, len(p.Readiness.CriticalRisks), want)
		}
	}

	if validReadinessAction(p.Readiness.Action) {
		want := ActionFor(p.Readiness.OverallScore)
		if len(p.Readiness.CriticalRisks) > 0 && want == ActionBookExam {
			want = ActionDelayAndReinforce
		}
		if p.Readiness.Action != want {
			r.warn("recommended_action %q disagrees with score %d and %d critical risks (expected %q)",
				p.Readiness.Action, p.Readiness.OverallScore, len(p.Readiness.CriticalRisks), want)
		}
		wantBook := p.Readiness.Action == ActionBookExam && len(p.Readiness.CriticalRisks) == 0
		if p.Readiness.ReadyToBook != wantBook {
			r.warn("ready_to_book is %v but action %q and %d critical risks imply %v",
				p.Readiness.ReadyToBook, p.Readiness.Action, len(p.Readiness.CriticalRisks), wantBook)
		}
	}

	return r
}
