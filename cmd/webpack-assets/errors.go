package main

import (
	"errors"
	"fmt"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrNoEntries   = errors.New("at least one entrypoint is required")
	ErrCheckFailed = errors.New("check failed")
)

// checkError summarizes a failed check run. It matches both ErrCheckFailed
// and the first entrypoint failure, so the exit code follows that failure.
type checkError struct {
	failed int
	total  int
	first  error
}

func (e *checkError) Error() string {
	return fmt.Sprintf("%s: %d of %d entrypoints", ErrCheckFailed, e.failed, e.total)
}

func (e *checkError) Unwrap() []error {
	return []error{ErrCheckFailed, e.first}
}
