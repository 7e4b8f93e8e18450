package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCuratedPlan() *CuratedLearningPlan {
	return &CuratedLearningPlan{
		Exam:      "AZ-900",
		UserLevel: LevelBeginner,
		PriorityDomains: []PriorityDomain{
			{DomainName: "Cloud Concepts", ExamWeight: "25-30%", PriorityLevel: PriorityHigh, Reason: "Largest share"},
			{DomainName: "Pricing", ExamWeight: "20-25%", PriorityLevel: PriorityMedium, Reason: "Second largest"},
		},
		RecommendedLearningPaths: []LearningPath{
			{
				Title:           "Azure Fundamentals Part 1",
				URL:             "https://example.com/path1",
				EstimatedHours:  "4.5 hours",
				DifficultyLevel: "beginner",
				RelevanceScore:  9,
				WhyRecommended:  "Covers the biggest domain",
				Modules: []PathModule{
					{ModuleTitle: "Intro to cloud", ModuleURL: "https://example.com/m1", Duration: "45 min", WhyImportant: "Foundation"},
				},
			},
		},
		Coverage: CoverageSummary{HighWeightDomainsCovered: "All high-weight domains", GapsIdentified: "None"},
	}
}

func TestCuratedPlanValidate_Valid(t *testing.T) {
	r := validCuratedPlan().Validate()
	assert.True(t, r.OK())
}

func TestCuratedPlanValidate_PathCardinality(t *testing.T) {
	p := validCuratedPlan()
	p.RecommendedLearningPaths = nil
	assert.False(t, p.Validate().OK())

	p = validCuratedPlan()
	for i := 0; i < 4; i++ {
		p.RecommendedLearningPaths = append(p.RecommendedLearningPaths, p.RecommendedLearningPaths[0])
	}
	assert.False(t, p.Validate().OK())
}

func TestCuratedPlanValidate_RelevanceRange(t *testing.T) {
	p := validCuratedPlan()
	p.RecommendedLearningPaths[0].RelevanceScore = 11
	assert.False(t, p.Validate().OK())
}

func TestCuratedPlanHighPriorityDomains(t *testing.T) {
	p := validCuratedPlan()
	high := p.HighPriorityDomains()
	require.Len(t, high, 1)
	assert.Equal(t, "Cloud Concepts", high[0].DomainName)
}

func TestCuratedPlanTotalEstimatedHours(t *testing.T) {
	p := validCuratedPlan()
	p.RecommendedLearningPaths[0].EstimatedHours = "4.5 hours"
	assert.InDelta(t, 4.5, p.TotalEstimatedHours(), 0.01)

	p.RecommendedLearningPaths[0].EstimatedHours = "2-4 hours"
	assert.InDelta(t, 3.0, p.TotalEstimatedHours(), 0.01)

	p.RecommendedLearningPaths[0].EstimatedHours = "unknown"
	assert.Zero(t, p.TotalEstimatedHours())
}

func validStudyPlan() *StudyPlan {
	return &StudyPlan{
		Exam:             "AZ-900",
		DurationWeeks:    2,
		HoursPerWeek:     10,
		StudyDaysPerWeek: 5,
		Weeks: []WeekPlan{
			{
				WeekNumber:    1,
				Theme:         "Foundations",
				TargetDomains: []string{"Cloud Concepts"},
				Sessions: []DailySession{
					{Day: "Monday", FocusTopic: "Cloud models", SessionType: SessionLearningModule, DurationHrs: 2, SessionGoal: "Understand IaaS vs PaaS"},
				},
				WeeklyGoal: "Finish first module",
			},
			{
				WeekNumber:    2,
				Theme:         "Practice",
				TargetDomains: []string{"Pricing"},
				Sessions: []DailySession{
					{Day: "Monday", FocusTopic: "Cost management", SessionType: SessionPracticeTest, DurationHrs: 2, SessionGoal: "Score 80+"},
				},
				WeeklyGoal: "Pass a practice test",
			},
		},
		Milestones: []Milestone{
			{PercentComplete: 25, Week: 1, Checkpoint: "First module done"},
			{PercentComplete: 50, Week: 1, Checkpoint: "Week one done"},
			{PercentComplete: 75, Week: 2, Checkpoint: "Practice test taken"},
			{PercentComplete: 100, Week: 2, Checkpoint: "Plan complete"},
		},
		FinalWeekStrategy: "Light review only",
	}
}

func TestStudyPlanValidate_Valid(t *testing.T) {
	r := validStudyPlan().Validate()
	assert.True(t, r.OK())
	assert.Empty(t, r.Warnings)
}

func TestStudyPlanValidate_DuplicateWeek(t *testing.T) {
	p := validStudyPlan()
	p.Weeks[1].WeekNumber = 1
	assert.False(t, p.Validate().OK())
}

func TestStudyPlanValidate_BadSessionType(t *testing.T) {
	p := validStudyPlan()
	p.Weeks[0].Sessions[0].SessionType = "cramming"
	assert.False(t, p.Validate().OK())
}

func TestStudyPlanValidate_MissingMilestoneWarns(t *testing.T) {
	p := validStudyPlan()
	p.Milestones = p.Milestones[:2]
	r := p.Validate()
	assert.True(t, r.OK())
	assert.Len(t, r.Warnings, 2)
}

func TestStudyPlanValidate_WeekCountMismatchWarns(t *testing.T) {
	p := validStudyPlan()
	p.DurationWeeks = 4
	r := p.Validate()
	assert.True(t, r.OK())
	assert.NotEmpty(t, r.Warnings)
}

func TestStudyPlanTotalPlannedHours(t *testing.T) {
	assert.InDelta(t, 4.0, validStudyPlan().TotalPlannedHours(), 0.01)
}

func validEngagementPlan() *EngagementPlan {
	return &EngagementPlan{
		Email:          "student@example.com",
		Exam:           "AZ-900",
		TotalReminders: 2,
		Reminders: []StudyReminder{
			{Week: 1, Day: "Monday", Type: ReminderSessionStart, Subject: "Study time", MessageBody: "Cloud models today.", ModuleLink: "https://example.com/m1"},
			{Week: 1, Day: "Sunday", Type: ReminderWeeklyRecap, Subject: "Week one recap", MessageBody: "You covered cloud models."},
		},
	}
}

func TestEngagementPlanValidate_Valid(t *testing.T) {
	r := validEngagementPlan().Validate()
	assert.True(t, r.OK())
	assert.Empty(t, r.Warnings)
}

func TestEngagementPlanValidate_MissingBody(t *testing.T) {
	p := validEngagementPlan()
	p.Reminders[0].MessageBody = ""
	assert.False(t, p.Validate().OK())
}

func TestEngagementPlanValidate_SessionStartWithoutLinkWarns(t *testing.T) {
	p := validEngagementPlan()
	p.Reminders[0].ModuleLink = ""
	r := p.Validate()
	assert.True(t, r.OK())
	assert.NotEmpty(t, r.Warnings)
}

func TestEngagementPlanByWeek(t *testing.T) {
	p := validEngagementPlan()
	byWeek := p.ByWeek()
	require.Len(t, byWeek[1], 2)
}
