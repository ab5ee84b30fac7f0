package errors

import (
	"fmt"
)

// ParseError represents a catalog parsing failure with optional line metadata.
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

// ValidationError captures catalog validation issues.
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

// ReferenceError indicates a catalog entry pointing at an undefined id,
// such as a book naming an author or genre the catalog never declares.
type ReferenceError struct {
	Kind string
	ID   string
	Err  error
}

// NewReferenceError constructs a ReferenceError for the given id kind.
func NewReferenceError(kind, id string, err error) error {
	return &ReferenceError{Kind: kind, ID: id, Err: err}
}

func (e *ReferenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("reference error: unknown %s %q", e.Kind, e.ID)
	}
	return fmt.Sprintf("reference error: unknown %s", e.Kind)
}

// Unwrap exposes the underlying error.
func (e *ReferenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
