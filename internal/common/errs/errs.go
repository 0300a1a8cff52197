// Package errs defines the construction-time error taxonomy used by
// building ingest, graph construction, and graph validation. Runtime
// (per-step) code never returns these: the stepper assumes
// pre-validated input and treats any invariant violation as a defect
// (a panic).
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a construction-time failure.
type ErrorCode string

const (
	// CodeIngestMalformed: an element failed to parse (bad UUID,
	// missing field, unknown sign).
	CodeIngestMalformed ErrorCode = "INGEST_MALFORMED"

	// CodeTransitGeometryInvalid: the exactly-two-interior-vertices
	// rule was violated, the computed width did not exceed MinWidth,
	// or an intersected-edge lookup found a count other than one.
	CodeTransitGeometryInvalid ErrorCode = "TRANSIT_GEOMETRY_INVALID"

	// CodeGraphConnectivityBroken: some non-safety zone was not
	// reached by the validator's traversal.
	CodeGraphConnectivityBroken ErrorCode = "GRAPH_CONNECTIVITY_BROKEN"

	// CodeInvariantViolation: negative num_of_people, negative
	// density, direction == 0 on a stair, or a computed negative
	// speed.
	CodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
)

// AppError is a construction-time error carrying a taxonomy code and
// the specific offending item, if any.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// New creates an AppError with no wrapped cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a taxonomy code to an existing error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// Is delegates to errors.Is so callers can test against sentinel
// errors without importing the standard library package directly.
func Is(err, target error) bool { return errors.Is(err, target) }

// As delegates to errors.As.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Code extracts the ErrorCode carried by err, if any.
func Code(err error) (ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// Offense describes one offending item inside an aggregated report:
// a malformed element, an ill-formed transit, or an unreachable zone.
type Offense struct {
	Sign  string
	ID    string
	Name  string
	Level string
	Note  string
}

func (o Offense) String() string {
	parts := []string{o.Sign + "(" + o.ID + ")"}
	if o.Name != "" {
		parts = append(parts, "name="+o.Name)
	}
	if o.Level != "" {
		parts = append(parts, "level="+o.Level)
	}
	if o.Note != "" {
		parts = append(parts, o.Note)
	}
	return strings.Join(parts, ", ")
}

// Aggregate collects multiple offenses of the same taxonomy code into
// a single fatal error. Construction never returns a partial result:
// every entry point that detects offenses builds one Aggregate and
// returns it instead of the value under construction.
type Aggregate struct {
	Code     ErrorCode
	Summary  string
	Offenses []Offense
}

func (a *Aggregate) Error() string {
	lines := make([]string, 0, len(a.Offenses)+1)
	lines = append(lines, fmt.Sprintf("%s: %s", a.Code, a.Summary))
	for _, o := range a.Offenses {
		lines = append(lines, "  "+o.String())
	}
	return strings.Join(lines, "\n")
}

// NewAggregate builds an Aggregate error, or nil if offenses is empty.
func NewAggregate(code ErrorCode, summary string, offenses []Offense) error {
	if len(offenses) == 0 {
		return nil
	}
	return &Aggregate{Code: code, Summary: summary, Offenses: offenses}
}
