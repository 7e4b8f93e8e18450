package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// UserLevel is the student's self-reported experience level.
type UserLevel string

const (
	LevelBeginner     UserLevel = "beginner"
	LevelIntermediate UserLevel = "intermediate"
	LevelAdvanced     UserLevel = "advanced"
)

// ValidUserLevel reports whether s is a known experience level.
func ValidUserLevel(s string) bool {
	switch UserLevel(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// PriorityLevel ranks a certification domain for this student.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "High"
	PriorityMedium PriorityLevel = "Medium"
	PriorityLow    PriorityLevel = "Low"
)

// PriorityDomain is one certification domain ranked by importance.
type PriorityDomain struct {
	DomainName    string        `json:"domain_name"`
	ExamWeight    string        `json:"exam_weight"` // e.g. "25-30%"
	PriorityLevel PriorityLevel `json:"priority_level"`
	Reason        string        `json:"reason"`
}

// PathModule is one module inside a learning path.
type PathModule struct {
	ModuleTitle  string `json:"module_title"`
	ModuleURL    string `json:"module_url"`
	Duration     string `json:"duration"` // e.g. "45 min", "2 hr"
	WhyImportant string `json:"why_important"`
}

// LearningPath is one recommended learning path with its modules.
type LearningPath struct {
	Title           string       `json:"title"`
	URL             string       `json:"url"`
	EstimatedHours  string       `json:"estimated_hours"`
	DifficultyLevel string       `json:"difficulty_level"`
	RelevanceScore  int          `json:"relevance_score"` // 1-10
	WhyRecommended  string       `json:"why_recommended"`
	Modules         []PathModule `json:"modules"`
}

// CoverageSummary reports how well the recommended paths cover the exam.
type CoverageSummary struct {
	HighWeightDomainsCovered string `json:"high_weight_domains_covered"`
	GapsIdentified           string `json:"gaps_identified"`
}

// CuratedLearningPlan is the learning path curator's structured output:
// 1-3 ranked learning paths plus domain priorities and coverage notes.
type CuratedLearningPlan struct {
	Exam                     string           `json:"exam"`
	UserLevel                UserLevel        `json:"user_level"`
	PriorityDomains          []PriorityDomain `json:"priority_domains"`
	RecommendedLearningPaths []LearningPath   `json:"recommended_learning_paths"`
	Coverage                 CoverageSummary  `json:"coverage_summary"`
}

func (p *CuratedLearningPlan) SchemaName() string { return CuratedPlanSchema.Name }

// HighPriorityDomains returns only High-priority domains.
func (p *CuratedLearningPlan) HighPriorityDomains() []PriorityDomain {
	var out []PriorityDomain
	for _, d := range p.PriorityDomains {
		if d.PriorityLevel == PriorityHigh {
			out = append(out, d)
		}
	}
	return out
}

// ModulesByRelevance returns all modules, highest-relevance path first.
func (p *CuratedLearningPlan) ModulesByRelevance() []PathModule {
	paths := make([]LearningPath, len(p.RecommendedLearningPaths))
	copy(paths, p.RecommendedLearningPaths)
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].RelevanceScore > paths[j].RelevanceScore
	})

	var out []PathModule
	for _, path := range paths {
		out = append(out, path.Modules...)
	}
	return out
}

// TotalEstimatedHours sums each path's estimated hours, averaging ranges
// like "2-3" and skipping values that don't parse.
func (p *CuratedLearningPlan) TotalEstimatedHours() float64 {
	total := 0.0
	for _, path := range p.RecommendedLearningPaths {
		fields := strings.Fields(path.EstimatedHours)
		if len(fields) == 0 {
			continue
		}
		raw := fields[0]
		if lo, hi, ok := strings.Cut(raw, "-"); ok {
			a, errA := strconv.ParseFloat(lo, 64)
			b, errB := strconv.ParseFloat(hi, 64)
			if errA == nil && errB == nil {
				total += (a + b) / 2
			}
			continue
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			total += v
		}
	}
	return total
}

// SummaryText renders a compact human-readable summary, used as prompt
// context for downstream agents when the full plan is too long.
func (p *CuratedLearningPlan) SummaryText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exam: %s\n", p.Exam)
	fmt.Fprintf(&b, "User Level: %s\n\n", p.UserLevel)

	b.WriteString("Priority Domains:\n")
	for _, d := range p.PriorityDomains {
		fmt.Fprintf(&b, "  - %s (%s) - %s\n", d.DomainName, d.ExamWeight, d.PriorityLevel)
	}

	fmt.Fprintf(&b, "\nRecommended Learning Paths (%d):\n", len(p.RecommendedLearningPaths))
	for i, path := range p.RecommendedLearningPaths {
		fmt.Fprintf(&b, "  %d. %s (relevance %d/10, %s)\n", i+1, path.Title, path.RelevanceScore, path.EstimatedHours)
	}

	fmt.Fprintf(&b, "\nCoverage: %s\n", p.Coverage.HighWeightDomainsCovered)
	if p.Coverage.GapsIdentified != "" {
		fmt.Fprintf(&b, "Gaps: %s\n", p.Coverage.GapsIdentified)
	}

	return b.String()
}

// Validate checks the curated plan contract.
func (p *CuratedLearningPlan) Validate() *Report {
	r := &Report{Schema: p.SchemaName()}

	if p.Exam == "" {
		r.violate("exam", "is required")
	}
	if !ValidUserLevel(string(p.UserLevel)) {
		r.violate("user_level", "must be beginner, intermediate, or advanced, got %q", p.UserLevel)
	}

	if n := len(p.RecommendedLearningPaths); n < 1 || n > 3 {
		r.violate("recommended_learning_paths", "expected 1-3 paths, got %d", n)
	}
	for i, path := range p.RecommendedLearningPaths {
		if path.Title == "" {
			r.violate(fmt.Sprintf("recommended_learning_paths[%d].title", i), "is required")
		}
		if path.RelevanceScore < 1 || path.RelevanceScore > 10 {
			r.violate(fmt.Sprintf("recommended_learning_paths[%d].relevance_score", i),
				"must be 1-10, got %d", path.RelevanceScore)
		}
	}

	for i, d := range p.PriorityDomains {
		switch d.PriorityLevel {
		case PriorityHigh, PriorityMedium, PriorityLow:
		default:
			r.violate(fmt.Sprintf("priority_domains[%d].priority_level", i),
				"must be High, Medium, or Low, got %q", d.PriorityLevel)
		}
	}

	if len(p.PriorityDomains) == 0 {
		r.warn("no priority domains listed")
	}

	return r
}
