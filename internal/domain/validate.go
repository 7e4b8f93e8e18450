package domain

import (
	"fmt"
	"strings"
)

// Violation is a hard validation failure: a missing required field, a
// cardinality or range breach, or an invalid enum value. An object with
// violations must not be used.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Report is the outcome of validating a domain object. Violations are
// fatal; Warnings flag derived-field mismatches (a declared score that
// disagrees with the computed one, a distribution that is off) where the
// object is still usable.
type Report struct {
	Schema     string
	Violations []Violation
	Warnings   []string
}

func (r *Report) violate(field, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// OK reports whether the object passed hard validation.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Err returns a *SchemaViolation when hard violations exist, nil otherwise.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return &SchemaViolation{Schema: r.Schema, Violations: r.Violations}
}

// SchemaViolation is the error for hard validation failures.
type SchemaViolation struct {
	Schema     string
	Violations []Violation
}

func (e *SchemaViolation) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("schema %q: %s", e.Schema, strings.Join(msgs, "; "))
}

// Validatable is implemented by every structured agent output type.
// Validate is pure: it inspects the object and never mutates it.
type Validatable interface {
	SchemaName() string
	Validate() *Report
}

// Answer letters for multiple choice questions.
const (
	AnswerA = "A"
	AnswerB = "B"
	AnswerC = "C"
	AnswerD = "D"
)

// ValidAnswer reports whether s is one of the four option letters.
func ValidAnswer(s string) bool {
	switch s {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// Pass/performance thresholds shared across assessment and planning.
const (
	PassThresholdPercent = 70.0

	StrongThresholdPercent   = 70.0
	AdequateThresholdPercent = 60.0

	ReadyThresholdScore       = 80
	NearlyReadyThresholdScore = 65

	// A critical risk is a domain carrying more than this share of the
	// exam while scoring below CriticalRiskScore.
	CriticalRiskWeightPercent = 20.0
	CriticalRiskScore         = 60
)

// DomainStatusFor maps a domain score percentage to its status band.
func DomainStatusFor(scorePercentage float64) DomainStatus {
	switch {
	case scorePercentage >= StrongThresholdPercent:
		return DomainStrong
	case scorePercentage >= AdequateThresholdPercent:
		return DomainAdequate
	default:
		return DomainWeak
	}
}

// DomainStatus is the performance band for one knowledge domain.
type DomainStatus string

const (
	DomainStrong   DomainStatus = "strong"
	DomainAdequate DomainStatus = "adequate"
	DomainWeak     DomainStatus = "weak"
)

func validDomainStatus(s DomainStatus) bool {
	switch s {
	case DomainStrong, DomainAdequate, DomainWeak:
		return true
	}
	return false
}
