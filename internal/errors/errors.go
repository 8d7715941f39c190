// Package errors provides a lightweight structured error type (ScriptDocError)
// for category-based classification and exit code mapping in the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a scriptdoc error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Generation and processing errors
	CategoryBuild      ErrorCategory = "build"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ScriptDocError is a structured error with category, severity, and context
type ScriptDocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ScriptDocError
type ContextFields map[string]any

// Error implements the error interface
func (e *ScriptDocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ScriptDocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ScriptDocError) WithContext(key string, value any) *ScriptDocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ScriptDocError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ScriptDocError {
	return &ScriptDocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ScriptDocError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ScriptDocError {
	return &ScriptDocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the first ScriptDocError in the chain, if any.
func As(err error) (*ScriptDocError, bool) {
	var sde *ScriptDocError
	if stdErrors.As(err, &sde) {
		return sde, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if sde, ok := As(err); ok {
		return sde.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a ScriptDocError
func GetCategory(err error) ErrorCategory {
	if sde, ok := As(err); ok {
		return sde.Category
	}
	return CategoryInternal
}
