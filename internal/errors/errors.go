// Package errors provides standardized error types for the parka CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// ConfigError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_INITIALIZED, MALFORMED, etc.)
//   - Message: Human-readable error description
//   - Path: The filesystem path involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrNotInitialized  // configuration file does not exist yet
//	errors.ErrMalformedConfig // configuration file is not a JSON object
//	errors.ErrPermissionDenied
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Configuration has not been installed yet
//	return errors.NotInitialized(configPath)
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeFilesystem, "failed to remove configuration root", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrNotInitialized) {
//	    // Handle uninitialized case
//	}
//
// Use errors.As for type assertion:
//
//	var cfgErr *errors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("Error code: %s, Path: %s\n", cfgErr.Code, cfgErr.Path)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotInitialized ErrorCode = "NOT_INITIALIZED" // Configuration file missing
	ErrCodeMalformed      ErrorCode = "MALFORMED"       // Configuration file is not valid JSON
	ErrCodeFilesystem     ErrorCode = "FILESYSTEM"      // Underlying filesystem I/O failure
	ErrCodeValidation     ErrorCode = "VALIDATION"      // Input validation failed
	ErrCodePermission     ErrorCode = "PERMISSION"      // Permission denied
	ErrCodeInternal       ErrorCode = "INTERNAL"        // Internal/unexpected error
)

// ConfigError represents a structured error with context about the operation.
type ConfigError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // Filesystem path (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrNotInitialized indicates the configuration file does not exist yet.
	ErrNotInitialized = &ConfigError{Code: ErrCodeNotInitialized, Message: "configuration not initialized (run install first)"}

	// ErrMalformedConfig indicates the configuration file is not a valid JSON object.
	ErrMalformedConfig = &ConfigError{Code: ErrCodeMalformed, Message: "configuration file is not a valid JSON object"}

	// ErrInvalidPath indicates a watched path argument is not valid.
	ErrInvalidPath = &ConfigError{Code: ErrCodeValidation, Message: "invalid path"}

	// ErrPermissionDenied indicates insufficient privileges for the operation.
	ErrPermissionDenied = &ConfigError{Code: ErrCodePermission, Message: "permission denied"}
)

// NotInitialized creates an error for a configuration file that doesn't exist.
func NotInitialized(path string) error {
	return &ConfigError{
		Code:    ErrCodeNotInitialized,
		Message: "configuration not initialized (run install first)",
		Path:    path,
	}
}

// Malformed creates an error for a configuration file that failed to decode.
func Malformed(path string, err error) error {
	return &ConfigError{
		Code:    ErrCodeMalformed,
		Message: "configuration file is not a valid JSON object",
		Path:    path,
		Err:     err,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &ConfigError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapPath creates an error with path context and underlying error.
func WrapPath(code ErrorCode, msg, path string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
