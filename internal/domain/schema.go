package domain

import "github.com/abhisek/certimentor/internal/llm"

// QuizSchema defines the JSON schema for practice quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "practice-quiz",
	Description: "A 10-question practice quiz covering the certification exam domains",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exam": map[string]any{
				"type":        "string",
				"description": "The certification exam this quiz covers",
			},
			"total_questions": map[string]any{
				"type":        "integer",
				"description": "Total number of questions, always 10",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "Exactly 10 questions: 3 easy, 5 medium, 2 hard, at least 2 scenario-based",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_number": map[string]any{
							"type":        "integer",
							"description": "Sequential number 1-10",
						},
						"domain": map[string]any{
							"type":        "string",
							"description": "Exam domain this question tests",
						},
						"learning_objective": map[string]any{
							"type":        "string",
							"description": "The specific skill being tested",
						},
						"bloom_level": map[string]any{
							"type": "string",
							"enum": []any{"Remember", "Understand", "Apply", "Analyze", "Evaluate", "Create"},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"question_text": map[string]any{
							"type":        "string",
							"description": "The full question text",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "Exactly 4 options lettered A through D",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"option": map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
									"text":   map[string]any{"type": "string"},
								},
								"required":             []any{"option", "text"},
								"additionalProperties": false,
							},
						},
						"correct_answer": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct (2-3 sentences)",
						},
						"reference_url": map[string]any{
							"type":        "string",
							"description": "Link to documentation covering this topic",
						},
						"is_scenario_based": map[string]any{
							"type":        "boolean",
							"description": "True if the question describes a realistic work scenario",
						},
					},
					"required": []any{
						"question_number", "domain", "learning_objective", "bloom_level",
						"difficulty", "question_text", "options", "correct_answer",
						"explanation", "is_scenario_based",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"exam", "total_questions", "questions"},
		"additionalProperties": false,
	},
}

// CuratedPlanSchema defines the JSON schema for learning path curation.
var CuratedPlanSchema = &llm.Schema{
	Name:        "curated-learning-plan",
	Description: "Ranked learning paths and domain priorities for a certification exam",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exam": map[string]any{"type": "string"},
			"user_level": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"priority_domains": map[string]any{
				"type":        "array",
				"description": "Exam domains ranked by weight and the student's level",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"domain_name": map[string]any{"type": "string"},
						"exam_weight": map[string]any{
							"type":        "string",
							"description": "Share of the exam, e.g. '25-30%'",
						},
						"priority_level": map[string]any{
							"type": "string",
							"enum": []any{"High", "Medium", "Low"},
						},
						"reason": map[string]any{"type": "string"},
					},
					"required":             []any{"domain_name", "exam_weight", "priority_level", "reason"},
					"additionalProperties": false,
				},
			},
			"recommended_learning_paths": map[string]any{
				"type":        "array",
				"description": "1-3 learning paths, most relevant first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":            map[string]any{"type": "string"},
						"url":              map[string]any{"type": "string"},
						"estimated_hours":  map[string]any{"type": "string"},
						"difficulty_level": map[string]any{"type": "string"},
						"relevance_score": map[string]any{
							"type":        "integer",
							"description": "1-10, how well this path covers high-weight domains",
						},
						"why_recommended": map[string]any{"type": "string"},
						"modules": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"module_title":  map[string]any{"type": "string"},
									"module_url":    map[string]any{"type": "string"},
									"duration":      map[string]any{"type": "string"},
									"why_important": map[string]any{"type": "string"},
								},
								"required":             []any{"module_title", "module_url", "duration", "why_important"},
								"additionalProperties": false,
							},
						},
					},
					"required": []any{
						"title", "url", "estimated_hours", "difficulty_level",
						"relevance_score", "why_recommended", "modules",
					},
					"additionalProperties": false,
				},
			},
			"coverage_summary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"high_weight_domains_covered": map[string]any{"type": "string"},
					"gaps_identified":             map[string]any{"type": "string"},
				},
				"required":             []any{"high_weight_domains_covered", "gaps_identified"},
				"additionalProperties": false,
			},
		},
		"required": []any{
			"exam", "user_level", "priority_domains",
			"recommended_learning_paths", "coverage_summary",
		},
		"additionalProperties": false,
	},
}

// StudyPlanSchema defines the JSON schema for study plan generation.
var StudyPlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A week-by-week study schedule fitted to the student's availability",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exam":                 map[string]any{"type": "string"},
			"total_duration_weeks": map[string]any{"type": "integer"},
			"hours_per_week":       map[string]any{"type": "number"},
			"study_days_per_week":  map[string]any{"type": "integer"},
			"weekly_schedule": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week_number": map[string]any{"type": "integer"},
						"theme":       map[string]any{"type": "string"},
						"target_domains": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"daily_sessions": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"day":          map[string]any{"type": "string"},
									"focus_topic":  map[string]any{"type": "string"},
									"module_title": map[string]any{"type": "string"},
									"module_url":   map[string]any{"type": "string"},
									"session_type": map[string]any{
										"type": "string",
										"enum": []any{"learning_module", "review", "practice_lab", "practice_test"},
									},
									"duration_hours": map[string]any{"type": "number"},
									"session_goal":   map[string]any{"type": "string"},
								},
								"required":             []any{"day", "focus_topic", "session_type", "duration_hours", "session_goal"},
								"additionalProperties": false,
							},
						},
						"weekly_goal": map[string]any{"type": "string"},
					},
					"required":             []any{"week_number", "theme", "target_domains", "daily_sessions", "weekly_goal"},
					"additionalProperties": false,
				},
			},
			"milestones": map[string]any{
				"type":        "array",
				"description": "Checkpoints at 25%, 50%, 75%, and 100% of the plan",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"percent_complete": map[string]any{"type": "integer"},
						"week":             map[string]any{"type": "integer"},
						"checkpoint":       map[string]any{"type": "string"},
					},
					"required":             []any{"percent_complete", "week", "checkpoint"},
					"additionalProperties": false,
				},
			},
			"final_week_strategy": map[string]any{"type": "string"},
		},
		"required": []any{
			"exam", "total_duration_weeks", "hours_per_week", "study_days_per_week",
			"weekly_schedule", "milestones", "final_week_strategy",
		},
		"additionalProperties": false,
	},
}

// EngagementPlanSchema defines the JSON schema for the reminder schedule.
var EngagementPlanSchema = &llm.Schema{
	Name:        "engagement-plan",
	Description: "A schedule of study reminders keyed to the study plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recipient_email": map[string]any{"type": "string"},
			"exam":            map[string]any{"type": "string"},
			"total_reminders": map[string]any{"type": "integer"},
			"reminders": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week": map[string]any{"type": "integer"},
						"day":  map[string]any{"type": "string"},
						"reminder_type": map[string]any{
							"type": "string",
							"enum": []any{"session_start", "weekly_recap", "milestone_check", "motivation"},
						},
						"subject":      map[string]any{"type": "string"},
						"message_body": map[string]any{"type": "string"},
						"module_link": map[string]any{
							"type":        "string",
							"description": "Link to the session's module, for session_start reminders",
						},
					},
					"required":             []any{"week", "day", "reminder_type", "subject", "message_body"},
					"additionalProperties": false,
				},
			},
			"escalation_note": map[string]any{
				"type":        "string",
				"description": "What to do if the student falls behind",
			},
		},
		"required":             []any{"recipient_email", "exam", "total_reminders", "reminders"},
		"additionalProperties": false,
	},
}

// FeedbackSchema defines the JSON schema for assessment evaluation.
var FeedbackSchema = &llm.Schema{
	Name:        "assessment-feedback",
	Description: "Graded quiz results with per-question and per-domain feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exam":             map[string]any{"type": "string"},
			"total_questions":  map[string]any{"type": "integer"},
			"correct_count":    map[string]any{"type": "integer"},
			"score_percentage": map[string]any{"type": "number"},
			"passed": map[string]any{
				"type":        "boolean",
				"description": "True when score_percentage is at least 70",
			},
			"question_feedback": map[string]any{
				"type":        "array",
				"description": "One entry per quiz question, all 10",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_number": map[string]any{"type": "integer"},
						"domain":          map[string]any{"type": "string"},
						"user_answer":     map[string]any{"type": "string"},
						"correct_answer": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"is_correct":  map[string]any{"type": "boolean"},
						"explanation": map[string]any{"type": "string"},
						"review_link": map[string]any{"type": "string"},
					},
					"required": []any{
						"question_number", "domain", "user_answer",
						"correct_answer", "is_correct", "explanation",
					},
					"additionalProperties": false,
				},
			},
			"domain_performance": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"domain":            map[string]any{"type": "string"},
						"questions_asked":   map[string]any{"type": "integer"},
						"questions_correct": map[string]any{"type": "integer"},
						"score_percentage":  map[string]any{"type": "number"},
						"status": map[string]any{
							"type":        "string",
							"enum":        []any{"strong", "adequate", "weak"},
							"description": "strong at 70%+, adequate at 60-69%, weak below 60%",
						},
					},
					"required": []any{
						"domain", "questions_asked", "questions_correct",
						"score_percentage", "status",
					},
					"additionalProperties": false,
				},
			},
			"overall_feedback": map[string]any{"type": "string"},
			"study_recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{
			"exam", "total_questions", "correct_count", "score_percentage", "passed",
			"question_feedback", "domain_performance", "overall_feedback",
			"study_recommendations",
		},
		"additionalProperties": false,
	},
}

// ExamPlanSchema defines the JSON schema for the final exam plan.
var ExamPlanSchema = &llm.Schema{
	Name:        "exam-plan",
	Description: "Exam logistics, a readiness verdict, and a preparation timeline",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exam": map[string]any{"type": "string"},
			"exam_info": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"exam_code":        map[string]any{"type": "string"},
					"exam_name":        map[string]any{"type": "string"},
					"cost":             map[string]any{"type": "string"},
					"passing_score":    map[string]any{"type": "string"},
					"duration_minutes": map[string]any{"type": "integer"},
					"question_count":   map[string]any{"type": "string"},
					"scheduling_url":   map[string]any{"type": "string"},
					"retake_policy":    map[string]any{"type": "string"},
				},
				"required": []any{
					"exam_code", "exam_name", "cost", "passing_score",
					"duration_minutes", "question_count", "scheduling_url", "retake_policy",
				},
				"additionalProperties": false,
			},
			"readiness_assessment": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"overall_readiness_score": map[string]any{
						"type":        "integer",
						"description": "0-100 overall readiness",
					},
					"status": map[string]any{
						"type":        "string",
						"enum":        []any{"ready", "nearly_ready", "not_ready"},
						"description": "ready at 80+ with no critical risks, nearly_ready at 65-79, not_ready below 65",
					},
					"confidence_level": map[string]any{
						"type": "string",
						"enum": []any{"low", "medium", "high"},
					},
					"recommended_action": map[string]any{
						"type":        "string",
						"enum":        []any{"book_exam", "delay_and_reinforce", "rebuild_foundation"},
						"description": "book_exam at 80+ with no critical risks, delay_and_reinforce at 65-79, rebuild_foundation below 65",
					},
					"ready_to_book": map[string]any{"type": "boolean"},
					"rationale":     map[string]any{"type": "string"},
					"domain_breakdown": map[string]any{
						"type":        "array",
						"description": "Per-domain performance, one entry per graded domain",
						"minItems":    1,
						"maxItems":    10,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"domain_name": map[string]any{"type": "string", "minLength": 3},
								"exam_weight": map[string]any{
									"type":        "string",
									"description": "Share of the exam, e.g. \"25-30%\"",
								},
								"score": map[string]any{"type": "integer"},
								"status": map[string]any{
									"type": "string",
									"enum": []any{"strong", "adequate", "weak"},
								},
							},
							"required":             []any{"domain_name", "exam_weight", "score", "status"},
							"additionalProperties": false,
						},
					},
					"critical_risks": map[string]any{
						"type":        "array",
						"description": "Domains worth over 20% of the exam where the student scored under 60%",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"domain":              map[string]any{"type": "string"},
								"exam_weight_percent": map[string]any{"type": "number"},
								"score_percentage":    map[string]any{"type": "number"},
								"impact":              map[string]any{"type": "string"},
							},
							"required":             []any{"domain", "exam_weight_percent", "score_percentage", "impact"},
							"additionalProperties": false,
						},
					},
				},
				"required": []any{
					"overall_readiness_score", "status", "confidence_level",
					"recommended_action", "ready_to_book", "rationale",
					"domain_breakdown", "critical_risks",
				},
				"additionalProperties": false,
			},
			"preparation_timeline": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"recommended_exam_date": map[string]any{"type": "string"},
					"weeks_until_exam":      map[string]any{"type": "integer"},
					"targeted_actions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"priority":    map[string]any{"type": "integer"},
								"description": map[string]any{"type": "string"},
								"domain":      map[string]any{"type": "string"},
								"module_url":  map[string]any{"type": "string"},
								"deadline":    map[string]any{"type": "string"},
							},
							"required":             []any{"priority", "description"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"recommended_exam_date", "weeks_until_exam", "targeted_actions"},
				"additionalProperties": false,
			},
			"exam_day_strategies": map[string]any{
				"type":        "array",
				"description": "3-7 strategies for exam day",
				"items":       map[string]any{"type": "string"},
			},
			"final_tips": map[string]any{
				"type":        "array",
				"description": "3-5 final preparation tips",
				"items":       map[string]any{"type": "string"},
			},
			"next_steps": map[string]any{
				"type":        "array",
				"description": "Up to 5 immediate next steps",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required": []any{
			"exam", "exam_info", "readiness_assessment", "preparation_timeline",
			"exam_day_strategies", "final_tips", "next_steps",
		},
		"additionalProperties": false,
	},
}
