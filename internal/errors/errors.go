package errors

import (
	"fmt"
)

// Error is the structured error type for logargs.
// Every failure that aborts startup is reported as an *Error.
type Error struct {
	// Code is the unique error code (e.g., "ERR_401_INVALID_ARGUMENT").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Sentinels for errors.Is checks. Matching is by code only.
var (
	ErrInvalidArgument       = &Error{Code: ErrCodeInvalidArgument}
	ErrIncompatibleArguments = &Error{Code: ErrCodeIncompatibleArguments}
	ErrFileOpen              = &Error{Code: ErrCodeFileOpen}
	ErrConfigInvalid         = &Error{Code: ErrCodeConfigInvalid}
	ErrConfigParse           = &Error{Code: ErrCodeConfigParse}
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with *Error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *Error) WithDetail(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// New creates a new Error with the given code and message.
// The category is derived from the code.
func New(code string, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates an Error from an existing error.
// The error's message becomes the Error message.
func Wrap(code string, err error) *Error {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// InvalidArgument reports an unrecognized value for a command-line argument.
func InvalidArgument(message string) *Error {
	return New(ErrCodeInvalidArgument, message, nil)
}

// IncompatibleArguments reports a combination of arguments that cannot be honored together.
func IncompatibleArguments(message string) *Error {
	return New(ErrCodeIncompatibleArguments, message, nil)
}

// IOError reports a failed file operation. The cause is kept so callers can
// still match on fs.ErrNotExist and friends.
func IOError(message string, cause error) *Error {
	return New(ErrCodeFileOpen, message, cause)
}

// ConfigError reports an unreadable or malformed configuration file.
func ConfigError(message string, cause error) *Error {
	return New(ErrCodeConfigParse, message, cause)
}
