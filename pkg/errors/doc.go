// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Error codes mirror the validation failure taxonomy: syntax errors,
// missing fields, enumeration violations, format violations, unresolved
// file paths, and usage errors.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeSyntax,
//	    "failed to parse broker definition",
//	    parseErr,
//	    map[string]interface{}{
//	        "path": filePath,
//	    },
//	)
package errors
