package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RangeError reports a slider configuration write that would break the
// value-space invariants (minimum below maximum, positive interval,
// non-negative gap). The rejected value is kept for diagnostics.
type RangeError struct {
	Property string
	Value    float64
	Err      error
}

// NewRangeError constructs a RangeError for the named property.
func NewRangeError(property string, value float64, err error) error {
	return &RangeError{Property: property, Value: value, Err: err}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("range error: %s=%g rejected", e.Property, e.Value)
	}
	return fmt.Sprintf("range error: %s=%g: %v", e.Property, e.Value, e.Err)
}

// Unwrap exposes the root cause, usually one of the slider sentinels.
func (e *RangeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
