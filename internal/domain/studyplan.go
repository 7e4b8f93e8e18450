package domain

import (
	"fmt"
	"strings"
)

// SessionType is the kind of study activity a daily session calls for.
type SessionType string

const (
	SessionLearningModule SessionType = "learning_module"
	SessionReview         SessionType = "review"
	SessionPracticeLab    SessionType = "practice_lab"
	SessionPracticeTest   SessionType = "practice_test"
)

func validSessionType(t SessionType) bool {
	switch t {
	case SessionLearningModule, SessionReview, SessionPracticeLab, SessionPracticeTest:
		return true
	}
	return false
}

// MilestonePercents is the checkpoint set every study plan must carry.
var MilestonePercents = []int{25, 50, 75, 100}

// DailySession is one study session on one day of a week.
type DailySession struct {
	Day          string      `json:"day"` // e.g. "Monday"
	FocusTopic   string      `json:"focus_topic"`
	ModuleTitle  string      `json:"module_title,omitempty"`
	ModuleURL    string      `json:"module_url,omitempty"`
	SessionType  SessionType `json:"session_type"`
	DurationHrs  float64     `json:"duration_hours"`
	SessionGoal  string      `json:"session_goal"`
}

// WeekPlan is one week of the schedule.
type WeekPlan struct {
	WeekNumber    int            `json:"week_number"`
	Theme         string         `json:"theme"`
	TargetDomains []string       `json:"target_domains"`
	Sessions      []DailySession `json:"daily_sessions"`
	WeeklyGoal    string         `json:"weekly_goal"`
}

// Milestone marks a progress checkpoint within the plan.
type Milestone struct {
	PercentComplete int    `json:"percent_complete"`
	Week            int    `json:"week"`
	Checkpoint      string `json:"checkpoint"`
}

// StudyPlan is the study plan generator's structured output: a
// week-by-week schedule fitted to the student's availability.
type StudyPlan struct {
	Exam              string      `json:"exam"`
	DurationWeeks     int         `json:"total_duration_weeks"`
	HoursPerWeek      float64     `json:"hours_per_week"`
	StudyDaysPerWeek  int         `json:"study_days_per_week"`
	Weeks             []WeekPlan  `json:"weekly_schedule"`
	Milestones        []Milestone `json:"milestones"`
	FinalWeekStrategy string      `json:"final_week_strategy"`
}

func (p *StudyPlan) SchemaName() string { return StudyPlanSchema.Name }

// TotalPlannedHours sums all session durations across the schedule.
func (p *StudyPlan) TotalPlannedHours() float64 {
	total := 0.0
	for _, w := range p.Weeks {
		for _, s := range w.Sessions {
			total += s.DurationHrs
		}
	}
	return total
}

// SummaryText renders a compact summary for downstream agent prompts.
func (p *StudyPlan) SummaryText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exam: %s\n", p.Exam)
	fmt.Fprintf(&b, "Duration: %d weeks, %.1f hrs/week over %d days/week\n\n",
		p.DurationWeeks, p.HoursPerWeek, p.StudyDaysPerWeek)

	for _, w := range p.Weeks {
		fmt.Fprintf(&b, "Week %d: %s (%s)\n", w.WeekNumber, w.Theme, strings.Join(w.TargetDomains, ", "))
	}

	if len(p.Milestones) > 0 {
		b.WriteString("\nMilestones:\n")
		for _, m := range p.Milestones {
			fmt.Fprintf(&b, "  %d%% by week %d: %s\n", m.PercentComplete, m.Week, m.Checkpoint)
		}
	}

	if p.FinalWeekStrategy != "" {
		fmt.Fprintf(&b, "\nFinal week: %s\n", p.FinalWeekStrategy)
	}

	return b.String()
}

// Validate checks the study plan contract.
func (p *StudyPlan) Validate() *Report {
	r := &Report{Schema: p.SchemaName()}

	if p.Exam == "" {
		r.violate("exam", "is required")
	}
	if p.DurationWeeks < 1 {
		r.violate("total_duration_weeks", "must be at least 1, got %d", p.DurationWeeks)
	}
	if p.HoursPerWeek <= 0 {
		r.violate("hours_per_week", "must be positive, got %g", p.HoursPerWeek)
	}
	if p.StudyDaysPerWeek < 1 || p.StudyDaysPerWeek > 7 {
		r.violate("study_days_per_week", "must be 1-7, got %d", p.StudyDaysPerWeek)
	}
	if len(p.Weeks) == 0 {
		r.violate("weekly_schedule", "must not be empty")
	}

	seen := make(map[int]bool)
	for i, w := range p.Weeks {
		if w.WeekNumber < 1 {
			r.violate(fmt.Sprintf("weekly_schedule[%d].week_number", i),
				"must be at least 1, got %d", w.WeekNumber)
		} else if seen[w.WeekNumber] {
			r.violate(fmt.Sprintf("weekly_schedule[%d].week_number", i),
				"duplicate week number %d", w.WeekNumber)
		}
		seen[w.WeekNumber] = true

		for j, s := range w.Sessions {
			if !validSessionType(s.SessionType) {
				r.violate(fmt.Sprintf("weekly_schedule[%d].daily_sessions[%d].session_type", i, j),
					"unknown session type %q", s.SessionType)
			}
			if s.DurationHrs <= 0 {
				r.violate(fmt.Sprintf("weekly_schedule[%d].daily_sessions[%d].duration_hours", i, j),
					"must be positive, got %g", s.DurationHrs)
			}
		}
	}

	if p.DurationWeeks >= 1 && len(p.Weeks) > 0 && len(p.Weeks) != p.DurationWeeks {
		r.warn("schedule covers %d weeks but total_duration_weeks is %d", len(p.Weeks), p.DurationWeeks)
	}

	got := make(map[int]bool)
	for _, m := range p.Milestones {
		got[m.PercentComplete] = true
	}
	for _, pct := range MilestonePercents {
		if !got[pct] {
			r.warn("missing %d%% milestone", pct)
		}
	}

	return r
}
