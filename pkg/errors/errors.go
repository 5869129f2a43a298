/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package errors

import "fmt"

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeSyntax indicates a document that could not be parsed.
	ErrCodeSyntax ErrorCode = "SYNTAX_ERROR"
	// ErrCodeMissingField indicates a required section or field is absent.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidEnum indicates a value outside its allowed set.
	ErrCodeInvalidEnum ErrorCode = "INVALID_ENUMERATION"
	// ErrCodeInvalidFormat indicates a value with the wrong shape or syntax.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeNotFound indicates a target file path did not resolve.
	ErrCodeNotFound ErrorCode = "FILE_NOT_FOUND"
	// ErrCodeUsage indicates invalid command-line invocation.
	ErrCodeUsage ErrorCode = "USAGE_ERROR"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}
