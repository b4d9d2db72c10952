// Package apperrors provides typed error handling for text-to-cw.
// Every error here is fatal: the program reports a diagnostic and
// terminates without producing partial output. Unsupported input
// characters and out-of-range speed parameters are not errors at all;
// they are silently mapped to a no-tone result or a default value.
package apperrors

import "fmt"

// Code categorizes errors for consistent handling and exit reporting.
type Code int

// Error codes for categorizing application errors.
const (
	// CodeUnknown indicates an unspecified error type
	CodeUnknown Code = iota
	// CodeAllocation indicates that sample storage could not be grown
	CodeAllocation
	// CodeInputUnavailable indicates the input byte stream could not be opened or read
	CodeInputUnavailable
	// CodeEncoding indicates the container encoder failed
	CodeEncoding
	// CodeInvalidInput indicates a malformed command invocation
	CodeInvalidInput
)

// Error represents an application error with a category code.
type Error struct {
	Code    Code   // Error category
	Message string // Human-readable diagnostic
	Err     error  // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeAllocation:
		return "allocation"
	case CodeInputUnavailable:
		return "input_unavailable"
	case CodeEncoding:
		return "encoding"
	case CodeInvalidInput:
		return "invalid_input"
	default:
		return fmt.Sprintf("unknown_code_%d", c)
	}
}

// Is reports whether target matches this error's code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Allocation creates a new allocation-failure error.
func Allocation(format string, args ...any) *Error {
	return &Error{
		Code:    CodeAllocation,
		Message: fmt.Sprintf(format, args...),
	}
}

// InputUnavailable creates a new input-unavailable error.
func InputUnavailable(format string, args ...any) *Error {
	return &Error{
		Code:    CodeInputUnavailable,
		Message: fmt.Sprintf(format, args...),
	}
}

// Encoding creates a new encoding error.
func Encoding(format string, args ...any) *Error {
	return &Error{
		Code:    CodeEncoding,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidInput creates a new invalid-invocation error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}
