// Package extract turns raw agent output into validated domain objects.
// Extraction never retries and never panics: anything that goes wrong
// is reported as a Failure value the caller can inspect.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/certimentor/internal/domain"
)

// Failure reasons.
const (
	ReasonNoValidJSON     = "no_valid_json"
	ReasonSchemaViolation = "schema_violation"
)

// excerptLimit caps how much raw text a Failure carries.
const excerptLimit = 500

// Output is the raw material extraction works from: the agent's text
// plus, when the provider produced one, a structured payload already
// tagged with its schema name.
type Output struct {
	Text       string
	Structured json.RawMessage
	SchemaName string
}

// Failure describes why extraction could not produce a valid object.
type Failure struct {
	Reason     string
	Violations []domain.Violation
	Excerpt    string
}

func (f *Failure) Error() string {
	switch f.Reason {
	case ReasonSchemaViolation:
		return fmt.Sprintf("extraction failed: %d schema violations", len(f.Violations))
	default:
		return "extraction failed: no valid JSON found in output"
	}
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > excerptLimit {
		return s[:excerptLimit]
	}
	return s
}

// Payload locates the JSON document in an output, trying strategies in
// order of reliability:
//
//  1. a structured payload tagged with the wanted schema name
//  2. the whole text as a JSON document
//  3. the first fenced ```json block
//  4. the span from the first '{' to the last '}'
//
// It returns nil when no strategy yields parseable JSON.
func Payload(out Output, schemaName string) json.RawMessage {
	if len(out.Structured) > 0 && out.SchemaName == schemaName {
		if json.Valid(out.Structured) {
			return out.Structured
		}
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return nil
	}

	if json.Valid([]byte(text)) {
		return json.RawMessage(text)
	}

	if block := fencedBlock(text); block != "" && json.Valid([]byte(block)) {
		return json.RawMessage(block)
	}

	if span := braceSpan(text); span != "" && json.Valid([]byte(span)) {
		return json.RawMessage(span)
	}

	return nil
}

// fencedBlock returns the contents of the first ```json fenced block,
// or the first plain ``` block as a fallback.
func fencedBlock(text string) string {
	for _, marker := range []string{"```json", "```"} {
		start := strings.Index(text, marker)
		if start < 0 {
			continue
		}
		rest := text[start+len(marker):]
		end := strings.Index(rest, "```")
		if end < 0 {
			continue
		}
		return strings.TrimSpace(rest[:end])
	}
	return ""
}

// braceSpan returns the text between the first '{' and the last '}'.
func braceSpan(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// Object extracts, decodes, and validates a domain object of type T
// from an agent output. On success it returns the object plus any
// soft warnings from validation. On failure it returns a Failure
// describing what went wrong; the returned object is nil.
func Object[T any, PT interface {
	*T
	domain.Validatable
}](out Output) (*T, []string, *Failure) {
	var zero T
	schemaName := PT(&zero).SchemaName()

	raw := Payload(out, schemaName)
	if raw == nil {
		return nil, nil, &Failure{Reason: ReasonNoValidJSON, Excerpt: excerpt(out.Text)}
	}

	obj := new(T)
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, nil, &Failure{
			Reason:     ReasonNoValidJSON,
			Violations: []domain.Violation{{Field: "$", Message: err.Error()}},
			Excerpt:    excerpt(string(raw)),
		}
	}

	report := PT(obj).Validate()
	if !report.OK() {
		return nil, report.Warnings, &Failure{
			Reason:     ReasonSchemaViolation,
			Violations: report.Violations,
			Excerpt:    excerpt(string(raw)),
		}
	}

	return obj, report.Warnings, nil
}
