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

// ValidationError captures baseline validation issues.
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

// PatternError indicates an extraction rule that cannot be applied: the
// regular expression does not compile or the capture group index is out of
// range for the compiled pattern.
type PatternError struct {
	Parameter string
	Pattern   string
	Err       error
}

// NewPatternError constructs a PatternError for the given parameter.
func NewPatternError(parameter, pattern string, err error) error {
	return &PatternError{Parameter: parameter, Pattern: pattern, Err: err}
}

func (e *PatternError) Error() string {
	if e == nil {
		return ""
	}
	if e.Parameter != "" {
		return fmt.Sprintf("pattern error [%s]: %q: %v", e.Parameter, e.Pattern, e.Err)
	}
	return fmt.Sprintf("pattern error: %q: %v", e.Pattern, e.Err)
}

// Unwrap exposes the underlying error.
func (e *PatternError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TransportError represents a failure while talking to the device: refused
// connections, authentication failures, timeouts, or a dropped session.
type TransportError struct {
	Host    string
	Command string
	Err     error
}

// NewTransportError constructs a TransportError.
func NewTransportError(host, command string, err error) error {
	return &TransportError{Host: host, Command: command, Err: err}
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Command != "" {
		return fmt.Sprintf("transport error on %s running %q: %v", e.Host, e.Command, e.Err)
	}
	return fmt.Sprintf("transport error on %s: %v", e.Host, e.Err)
}

// Unwrap exposes the root error.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
