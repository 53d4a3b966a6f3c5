package cliutil

import (
	"errors"
	"fmt"
)

// ExitError carries a process exit code alongside the underlying error
// so that commands can demand a specific code (invalid input is 2,
// missing DLQ entries are 1) without calling os.Exit themselves.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code.
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// Exitf wraps a formatted message with an explicit exit code.
func Exitf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// Code resolves the exit code for an error: the wrapped code if one was
// set, 1 for any other error, 0 for nil.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
