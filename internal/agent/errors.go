package agent

import "fmt"

// ErrorCode identifies a failure class. The HTTP layer maps codes onto
// status codes; everything else treats them as opaque.
type ErrorCode string

const (
	CodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	CodeInvalidReference    ErrorCode = "INVALID_REFERENCE"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeSummarizationFailed ErrorCode = "SUMMARIZATION_FAILED"
)

// Error carries a taxonomy code and a caller-safe reason alongside the
// underlying cause.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
