// Package errors provides the closed error taxonomy for powercost.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeMissingHeader indicates the tabular header row was not found
	TypeMissingHeader Type = "MISSING_HEADER"

	// TypeParsing indicates a row or timestamp could not be parsed
	TypeParsing Type = "PARSING_ERROR"

	// TypeClassification indicates a record could not be bucketed
	TypeClassification Type = "CLASSIFICATION_ERROR"

	// TypeEmptyInput indicates zero total usage
	TypeEmptyInput Type = "EMPTY_INPUT"

	// TypeUnitAmbiguity indicates an unrecognized or inconsistent usage unit
	TypeUnitAmbiguity Type = "UNIT_AMBIGUITY"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// EmptyInput creates an empty input error
func EmptyInput(message string) *Error {
	return New(TypeEmptyInput, message)
}

// UnitAmbiguity creates a unit ambiguity error
func UnitAmbiguity(unit string) *Error {
	return Newf(TypeUnitAmbiguity, "unrecognized usage unit %q (expected kWh or Wh)", unit)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
