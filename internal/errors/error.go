package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig     Category = "config"
	CategorySchema     Category = "schema"
	CategoryValidation Category = "validation"
	CategoryBuild      Category = "build"
	CategoryCLI        Category = "cli"
	CategoryPublish    Category = "publish"
)

// ForgeError is a structured error with a code, suggestions, and documentation.
type ForgeError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (config, schema, validation, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Component is the component the error refers to, if any.
	Component string

	// Field is the descriptor field or file path the error refers to, if any.
	Field string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ForgeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ForgeError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *ForgeError) WithDetail(d string) *ForgeError {
	e.Detail = d
	return e
}

// WithComponent records which component the error refers to.
func (e *ForgeError) WithComponent(name string) *ForgeError {
	e.Component = name
	return e
}

// WithField records which descriptor field or file the error refers to.
func (e *ForgeError) WithField(field string) *ForgeError {
	e.Field = field
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ForgeError) WithSuggestion(s string) *ForgeError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *ForgeError) Wrap(err error) *ForgeError {
	e.Wrapped = err
	return e
}

// New creates a ForgeError from a registered error code.
func New(code string) *ForgeError {
	template, ok := registry[code]
	if !ok {
		return &ForgeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ForgeError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new ForgeError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ForgeError {
	return &ForgeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ForgeError.
func FromError(err error, code string) *ForgeError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*ForgeError); ok {
		return fe
	}
	return New(code).Wrap(err)
}
