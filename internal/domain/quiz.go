package domain

import (
	"sort"
	"strconv"
)

// DifficultyLevel is a question difficulty band.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// BloomLevel is a Bloom's taxonomy cognitive level.
type BloomLevel string

const (
	BloomRemember   BloomLevel = "Remember"
	BloomUnderstand BloomLevel = "Understand"
	BloomApply      BloomLevel = "Apply"
	BloomAnalyze    BloomLevel = "Analyze"
	BloomEvaluate   BloomLevel = "Evaluate"
	BloomCreate     BloomLevel = "Create"
)

// Quiz size and difficulty distribution every generated quiz must follow.
const (
	QuizQuestionCount = 10
	QuizEasyCount     = 3
	QuizMediumCount   = 5
	QuizHardCount     = 2
	QuizMinScenario   = 2
	QuizOptionCount   = 4
)

// QuestionOption is one multiple choice option.
type QuestionOption struct {
	Letter string `json:"option"` // "A".."D"
	Text   string `json:"text"`
}

// Question is a single assessment question.
type Question struct {
	QuestionNumber    int              `json:"question_number"` // 1-10
	Domain            string           `json:"domain"`
	LearningObjective string           `json:"learning_objective"`
	BloomLevel        BloomLevel       `json:"bloom_level"`
	Difficulty        DifficultyLevel  `json:"difficulty"`
	QuestionText      string           `json:"question_text"`
	Options           []QuestionOption `json:"options"` // exactly 4, lettered A-D
	CorrectAnswer     string           `json:"correct_answer"`
	Explanation       string           `json:"explanation"`
	ReferenceURL      string           `json:"reference_url"`
	IsScenarioBased   bool             `json:"is_scenario_based"`
}

// Quiz is a complete readiness assessment: exactly 10 questions with a
// fixed 3/5/2 easy/medium/hard split and at least 2 scenario questions.
type Quiz struct {
	Exam           string     `json:"exam"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

func (q *Quiz) SchemaName() string { return QuizSchema.Name }

// Sorted returns the questions ordered by question number.
func (q *Quiz) Sorted() []Question {
	out := make([]Question, len(q.Questions))
	copy(out, q.Questions)
	sort.Slice(out, func(i, j int) bool {
		return out[i].QuestionNumber < out[j].QuestionNumber
	})
	return out
}

// CorrectAnswers returns the correct answer letters in question order.
func (q *Quiz) CorrectAnswers() []string {
	sorted := q.Sorted()
	out := make([]string, len(sorted))
	for i, question := range sorted {
		out[i] = question.CorrectAnswer
	}
	return out
}

// ByDifficulty returns all questions at the given difficulty.
func (q *Quiz) ByDifficulty(d DifficultyLevel) []Question {
	var out []Question
	for _, question := range q.Questions {
		if question.Difficulty == d {
			out = append(out, question)
		}
	}
	return out
}

// ScenarioCount returns the number of scenario-based questions.
func (q *Quiz) ScenarioCount() int {
	n := 0
	for _, question := range q.Questions {
		if question.IsScenarioBased {
			n++
		}
	}
	return n
}

// Validate checks the quiz contract. Wrong question or option counts and
// bad enum values are hard violations; an off-target difficulty
// distribution or a low scenario count is reported as a warning because
// regenerating the quiz costs another model call.
func (q *Quiz) Validate() *Report {
	r := &Report{Schema: q.SchemaName()}

	if len(q.Questions) != QuizQuestionCount {
		r.violate("questions", "expected exactly %d questions, got %d", QuizQuestionCount, len(q.Questions))
		return r
	}

	seen := make(map[int]bool, len(q.Questions))
	for i, question := range q.Questions {
		field := func(name string) string {
			return "questions[" + strconv.Itoa(i) + "]." + name
		}

		if question.QuestionNumber < 1 || question.QuestionNumber > QuizQuestionCount {
			r.violate(field("question_number"), "must be 1-%d, got %d", QuizQuestionCount, question.QuestionNumber)
		} else if seen[question.QuestionNumber] {
			r.violate(field("question_number"), "duplicate question number %d", question.QuestionNumber)
		}
		seen[question.QuestionNumber] = true

		if question.QuestionText == "" {
			r.violate(field("question_text"), "is required")
		}
		if question.Domain == "" {
			r.violate(field("domain"), "is required")
		}
		if !validDifficulty(question.Difficulty) {
			r.violate(field("difficulty"), "must be easy, medium, or hard, got %q", question.Difficulty)
		}
		if !validBloom(question.BloomLevel) {
			r.violate(field("bloom_level"), "unknown Bloom level %q", question.BloomLevel)
		}
		if len(question.Options) != QuizOptionCount {
			r.violate(field("options"), "expected exactly %d options, got %d", QuizOptionCount, len(question.Options))
		} else {
			letters := []string{AnswerA, AnswerB, AnswerC, AnswerD}
			for j, opt := range question.Options {
				if opt.Letter != letters[j] {
					r.violate(field("options"), "option %d must be lettered %q, got %q", j, letters[j], opt.Letter)
				}
			}
		}
		if !ValidAnswer(question.CorrectAnswer) {
			r.violate(field("correct_answer"), "must be A, B, C, or D, got %q", question.CorrectAnswer)
		}
	}

	if q.TotalQuestions != 0 && q.TotalQuestions != len(q.Questions) {
		r.warn("total_questions declares %d but quiz has %d questions", q.TotalQuestions, len(q.Questions))
	}

	easy := len(q.ByDifficulty(DifficultyEasy))
	medium := len(q.ByDifficulty(DifficultyMedium))
	hard := len(q.ByDifficulty(DifficultyHard))
	if easy != QuizEasyCount || medium != QuizMediumCount || hard != QuizHardCount {
		r.warn("difficulty distribution is %d/%d/%d easy/medium/hard, want %d/%d/%d",
			easy, medium, hard, QuizEasyCount, QuizMediumCount, QuizHardCount)
	}

	if n := q.ScenarioCount(); n < QuizMinScenario {
		r.warn("only %d scenario-based questions, want at least %d", n, QuizMinScenario)
	}

	return r
}

func validDifficulty(d DifficultyLevel) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func validBloom(b BloomLevel) bool {
	switch b {
	case BloomRemember, BloomUnderstand, BloomApply, BloomAnalyze, BloomEvaluate, BloomCreate:
		return true
	}
	return false
}
