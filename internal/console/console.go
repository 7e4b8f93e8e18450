// Package console collects student input from a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/certimentor/internal/domain"
	"github.com/abhisek/certimentor/internal/workflow"
)

// Setup defaults used when the student presses enter.
const (
	DefaultLevel            = domain.LevelBeginner
	DefaultStudyDaysPerWeek = 5
	DefaultHoursPerDay      = 2.0
)

// Interactive reads answers line by line from a terminal. On EOF it
// falls back to defaults so a piped run still completes.
type Interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive creates a console over the given streams.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewReader(in), out: out}
}

func (c *Interactive) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	return line, nil
}

// prompt prints the question and reads one trimmed line. EOF yields
// the fallback.
func (c *Interactive) prompt(question, fallback string) (string, error) {
	fmt.Fprintf(c.out, "%s ", question)
	line, err := c.readLine()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out, fallback)
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

// ReadSetup collects the student's topics, email, level, and
// availability, applying defaults where input is blank.
func (c *Interactive) ReadSetup() (workflow.Setup, error) {
	setup := workflow.Setup{
		Level:            DefaultLevel,
		StudyDaysPerWeek: DefaultStudyDaysPerWeek,
		HoursPerDay:      DefaultHoursPerDay,
	}

	topics, err := c.prompt("What certification topics are you studying?", "")
	if err != nil {
		return setup, err
	}
	if topics == "" {
		return setup, errors.New("study topics are required")
	}
	setup.Topics = topics

	email, err := c.prompt("Email for study reminders?", "")
	if err != nil {
		return setup, err
	}
	setup.Email = email

	for {
		level, err := c.prompt("Experience level (beginner/intermediate/advanced)? [beginner]", string(DefaultLevel))
		if err != nil {
			return setup, err
		}
		level = strings.ToLower(level)
		if domain.ValidUserLevel(level) {
			setup.Level = domain.UserLevel(level)
			break
		}
		fmt.Fprintln(c.out, "Please answer beginner, intermediate, or advanced.")
	}

	days, err := c.promptInt("Study days per week (1-7)? [5]", DefaultStudyDaysPerWeek, 1, 7)
	if err != nil {
		return setup, err
	}
	setup.StudyDaysPerWeek = days

	hours, err := c.promptFloat("Hours per study day? [2]", DefaultHoursPerDay)
	if err != nil {
		return setup, err
	}
	setup.HoursPerDay = hours

	return setup, nil
}

func (c *Interactive) promptInt(question string, fallback, min, max int) (int, error) {
	for {
		line, err := c.prompt(question, strconv.Itoa(fallback))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintf(c.out, "Please enter a number between %d and %d.\n", min, max)
	}
}

func (c *Interactive) promptFloat(question string, fallback float64) (float64, error) {
	for {
		line, err := c.prompt(question, strconv.FormatFloat(fallback, 'g', -1, 64))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil && v > 0 {
			return v, nil
		}
		fmt.Fprintln(c.out, "Please enter a positive number.")
	}
}

// Confirm asks a yes/no question. Blank input and EOF take the default.
func (c *Interactive) Confirm(prompt string, def bool) (bool, error) {
	suffix := "[Y/n]"
	if !def {
		suffix = "[y/N]"
	}
	for {
		line, err := c.prompt(fmt.Sprintf("%s %s", prompt, suffix), "")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}

// AskQuestion shows one quiz question and reads an answer A-D. EOF
// answers "A" so a piped run still finishes the quiz.
func (c *Interactive) AskQuestion(q domain.Question) (string, error) {
	fmt.Fprintf(c.out, "\nQ%d. %s\n", q.QuestionNumber, q.QuestionText)
	for _, opt := range q.Options {
		fmt.Fprintf(c.out, "  %s. %s\n", opt.Letter, opt.Text)
	}
	for {
		line, err := c.prompt("Your answer (A-D)?", "A")
		if err != nil {
			return "", err
		}
		answer := strings.ToUpper(strings.TrimSpace(line))
		if domain.ValidAnswer(answer) {
			return answer, nil
		}
		fmt.Fprintln(c.out, "Please answer A, B, C, or D.")
	}
}

// Auto answers every prompt without input: it proceeds past the
// checkpoint and answers each question with its fixed choice. Used
// for unattended runs.
type Auto struct {
	Answer string
}

// NewAuto creates an Auto console answering every question the same way.
func NewAuto(answer string) *Auto {
	if !domain.ValidAnswer(answer) {
		answer = "A"
	}
	return &Auto{Answer: answer}
}

func (a *Auto) Confirm(string, bool) (bool, error) { return true, nil }

func (a *Auto) AskQuestion(domain.Question) (string, error) { return a.Answer, nil }
