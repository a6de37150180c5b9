package app

import (
	"errors"

	"github.com/tzbucket/tzbucket/core/bucket"
	"github.com/tzbucket/tzbucket/core/dst"
	"github.com/tzbucket/tzbucket/core/parse"
	"github.com/tzbucket/tzbucket/core/timezone"
)

// Process exit codes shared by the CLI and mirrored as HTTP classes by
// the API (2 -> 400, 3 -> 500).
const (
	ExitSuccess = 0
	ExitInput   = 2
	ExitRuntime = 3
)

// Error is a classified operation failure. Code is the process exit
// code; Status names the DST condition for policy failures so callers
// can surface it in the error envelope.
type Error struct {
	Message string
	Code    int
	Status  string
}

func (e *Error) Error() string { return e.Message }

// InputError builds an input-class failure.
func InputError(msg string) *Error {
	return &Error{Message: msg, Code: ExitInput}
}

// RuntimeError builds a runtime-class failure.
func RuntimeError(msg string) *Error {
	return &Error{Message: msg, Code: ExitRuntime}
}

// Classify maps core errors onto exit codes. Malformed input and
// unresolved DST conditions are the caller's fault; everything else,
// oracle failures included, is a runtime error.
func Classify(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	var parseErr *parse.Error
	if errors.As(err, &parseErr) {
		return &Error{Message: err.Error(), Code: ExitInput}
	}
	var dstErr *dst.Error
	if errors.As(err, &dstErr) {
		return &Error{Message: err.Error(), Code: ExitInput, Status: dstErr.Kind.String()}
	}
	var orderErr *bucket.InvalidOrderError
	if errors.As(err, &orderErr) {
		return &Error{Message: err.Error(), Code: ExitInput}
	}
	var tzErr *timezone.RuntimeError
	if errors.As(err, &tzErr) {
		return &Error{Message: err.Error(), Code: ExitRuntime}
	}
	return &Error{Message: err.Error(), Code: ExitRuntime}
}
