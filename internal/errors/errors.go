// Package errors provides a lightweight structured error type (GuideGenError)
// for category-based classification in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a guidegen error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Source document errors
	CategorySource ErrorCategory = "source"
	CategoryDecode ErrorCategory = "decode"

	// Output errors
	CategoryWrite ErrorCategory = "write"

	// Lint and runtime errors
	CategoryLint     ErrorCategory = "lint"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// GuideGenError is a structured error with category and context
type GuideGenError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for GuideGenError
type ContextFields map[string]any

// Error implements the error interface
func (e *GuideGenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *GuideGenError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *GuideGenError) WithContext(key string, value any) *GuideGenError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new GuideGenError
func New(category ErrorCategory, severity ErrorSeverity, message string) *GuideGenError {
	return &GuideGenError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new GuideGenError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *GuideGenError {
	return &GuideGenError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ge, ok := err.(*GuideGenError); ok {
		return ge.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a GuideGenError
func GetCategory(err error) ErrorCategory {
	if ge, ok := err.(*GuideGenError); ok {
		return ge.Category
	}
	return CategoryInternal
}

// SourceNotFound creates a fatal error for a missing source directory or manifest entry.
func SourceNotFound(path string) *GuideGenError {
	return New(CategorySource, SeverityFatal, "source not found").WithContext("path", path)
}

// DecodeError creates a fatal error for a source file that is not valid text.
func DecodeError(path string) *GuideGenError {
	return New(CategoryDecode, SeverityFatal, "source file is not valid UTF-8 text").WithContext("path", path)
}

// WriteError wraps a destination write failure.
func WriteError(err error, path string) *GuideGenError {
	return Wrap(err, CategoryWrite, SeverityFatal, "failed to write output").WithContext("path", path)
}

// ConfigError wraps a configuration loading or validation failure.
func ConfigError(err error, message string) *GuideGenError {
	return Wrap(err, CategoryConfig, SeverityFatal, message)
}
