package domain

import (
	"fmt"
	"strings"
)

// ReminderType is the category of a scheduled study reminder.
type ReminderType string

const (
	ReminderSessionStart ReminderType = "session_start"
	ReminderWeeklyRecap  ReminderType = "weekly_recap"
	ReminderMilestone    ReminderType = "milestone_check"
	ReminderMotivation   ReminderType = "motivation"
)

func validReminderType(t ReminderType) bool {
	switch t {
	case ReminderSessionStart, ReminderWeeklyRecap, ReminderMilestone, ReminderMotivation:
		return true
	}
	return false
}

// StudyReminder is one scheduled message to the student.
type StudyReminder struct {
	Week        int          `json:"week"`
	Day         string       `json:"day"`
	Type        ReminderType `json:"reminder_type"`
	Subject     string       `json:"subject"`
	MessageBody string       `json:"message_body"`
	ModuleLink  string       `json:"module_link,omitempty"`
}

// EngagementPlan is the engagement agent's structured output: the full
// reminder schedule that keeps the student on track between sessions.
type EngagementPlan struct {
	Email          string          `json:"recipient_email"`
	Exam           string          `json:"exam"`
	TotalReminders int             `json:"total_reminders"`
	Reminders      []StudyReminder `json:"reminders"`
	EscalationNote string          `json:"escalation_note,omitempty"`
}

func (p *EngagementPlan) SchemaName() string { return EngagementPlanSchema.Name }

// ByWeek groups reminders by week number.
func (p *EngagementPlan) ByWeek() map[int][]StudyReminder {
	out := make(map[int][]StudyReminder)
	for _, rem := range p.Reminders {
		out[rem.Week] = append(out[rem.Week], rem)
	}
	return out
}

// SummaryText renders a compact summary for downstream agent prompts.
func (p *EngagementPlan) SummaryText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Engagement plan for %s (%d reminders)\n", p.Email, len(p.Reminders))
	byType := make(map[ReminderType]int)
	for _, rem := range p.Reminders {
		byType[rem.Type]++
	}
	for _, t := range []ReminderType{ReminderSessionStart, ReminderWeeklyRecap, ReminderMilestone, ReminderMotivation} {
		if n := byType[t]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", t, n)
		}
	}
	return b.String()
}

// Validate checks the engagement plan contract.
func (p *EngagementPlan) Validate() *Report {
	r := &Report{Schema: p.SchemaName()}

	if p.Email == "" {
		r.violate("recipient_email", "is required")
	}
	if len(p.Reminders) == 0 {
		r.violate("reminders", "must not be empty")
	}

	for i, rem := range p.Reminders {
		if rem.Week < 1 {
			r.violate(fmt.Sprintf("reminders[%d].week", i), "must be at least 1, got %d", rem.Week)
		}
		if !validReminderType(rem.Type) {
			r.violate(fmt.Sprintf("reminders[%d].reminder_type", i), "unknown reminder type %q", rem.Type)
		}
		if rem.Subject == "" {
			r.violate(fmt.Sprintf("reminders[%d].subject", i), "is required")
		}
		if rem.MessageBody == "" {
			r.violate(fmt.Sprintf("reminders[%d].message_body", i), "is required")
		}
		if rem.Type == ReminderSessionStart && rem.ModuleLink == "" {
			r.warn("reminders[%d] is a session_start reminder without a module link", i)
		}
	}

	if p.TotalReminders != len(p.Reminders) {
		r.warn("total_reminders is %d but %d reminders listed", p.TotalReminders, len(p.Reminders))
	}

	return r
}
