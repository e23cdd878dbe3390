package waypoint

import (
	"fmt"
)

// TransportError is a failure below HTTP semantics (dns, tls, connection reset, ...).
type TransportError struct {
	Step string
	Err  error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("waypoint: %s: transport: %s", e.Step, e.Err.Error())
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// HttpError is a response whose status or shape is not what the step expected,
// it carries the response for diagnostics.
type HttpError struct {
	Step   string
	Status int
	Reason string
	Body   string
}

func (e HttpError) Error() string {
	return fmt.Sprintf("waypoint: %s: unexpected response (status %d): %s", e.Step, e.Status, e.Reason)
}

type Field string

const (
	FIELD_GAME          Field = "game"
	FIELD_CAMPAIGN_MODE Field = "campaign_mode"
	FIELD_MISSION_ID    Field = "mission_id"
	FIELD_DIFFICULTY    Field = "difficulty"
	FIELD_TIME          Field = "time"
	FIELD_SCORE         Field = "score"
)

type FieldProblem int

const (
	// PROBLEM_MISSING means the element or attribute holding the field was not found.
	PROBLEM_MISSING FieldProblem = iota
	// PROBLEM_UNKNOWN means the value is not one of a finite set of literals.
	PROBLEM_UNKNOWN
	// PROBLEM_INVALID means the value could not be parsed.
	PROBLEM_INVALID
)

// FieldError is a single field that could not be extracted from a statistics page.
type FieldError struct {
	Field   Field
	Problem FieldProblem
	Raw     string
}

func (e FieldError) Error() string {
	switch e.Problem {
	case PROBLEM_UNKNOWN:
		return fmt.Sprintf("waypoint: unknown %s %q", e.Field, e.Raw)
	case PROBLEM_INVALID:
		return fmt.Sprintf("waypoint: invalid %s %q", e.Field, e.Raw)
	}
	return fmt.Sprintf("waypoint: missing %s", e.Field)
}

func missingField(field Field) FieldError {
	return FieldError{Field: field, Problem: PROBLEM_MISSING}
}

func unknownField(field Field, raw string) FieldError {
	return FieldError{Field: field, Problem: PROBLEM_UNKNOWN, Raw: raw}
}

func invalidField(field Field, raw string) FieldError {
	return FieldError{Field: field, Problem: PROBLEM_INVALID, Raw: raw}
}
