package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is against any *Error.
var (
	ErrRuleNotFound            = errors.New("rule not found")
	ErrAmbiguousRule           = errors.New("rule documented more than once")
	ErrAvailabilityMissing     = errors.New("availability missing")
	ErrAvailabilityMismatch    = errors.New("profile not available")
	ErrNoTestCases             = errors.New("no test cases")
	ErrMissingDirective        = errors.New("hidden directive missing")
	ErrMissingExpectedErrors   = errors.New("expectedErrors missing")
	ErrMissingCodeBlock        = errors.New("code block missing")
	ErrInvariantViolation      = errors.New("good/bad does not match expectedErrors")
	ErrCountMismatch           = errors.New("diagnostic count mismatch")
	ErrRuleAttributionMismatch = errors.New("diagnostic from unexpected rule")
	ErrEngine                  = errors.New("lint engine failure")
)

// Error is the base error type with context.
type Error struct {
	Kind       error
	Phase      string // "config", "scan", "parse", "check", "lint", "export"
	File       string
	LineNumber int
	Rule       string
	Case       string
	Message    string
	Suggestion string
	Cause      error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.LineNumber > 0 {
		s += fmt.Sprintf(":%d", e.LineNumber)
	}
	if e.Case != "" {
		s += fmt.Sprintf(" %q", e.Case)
	} else if e.Rule != "" {
		s += fmt.Sprintf(" rule %q", e.Rule)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (%s)", e.Suggestion)
	}
	return s
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewError creates a new Error without a kind.
func NewError(phase, file string, line int, message string, cause error) *Error {
	return &Error{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Cause:      cause,
	}
}

// NewErrorWithSuggestion creates an Error carrying a hint for fixing it.
func NewErrorWithSuggestion(phase, file string, line int, message, suggestion string, cause error) *Error {
	e := NewError(phase, file, line, message, cause)
	e.Suggestion = suggestion
	return e
}

// NewKindError creates an Error of the given kind scoped to a rule.
func NewKindError(kind error, phase, rule, message string) *Error {
	return &Error{
		Kind:    kind,
		Phase:   phase,
		Rule:    rule,
		Message: message,
	}
}

// At sets the file location and returns e.
func (e *Error) At(file string, line int) *Error {
	e.File = file
	e.LineNumber = line
	return e
}

// ForCase sets the test case title and returns e.
func (e *Error) ForCase(title string) *Error {
	e.Case = title
	return e
}
