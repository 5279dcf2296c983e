package domain

import (
	"errors"
	"fmt"
)

// Domain errors can be checked with errors.Is.
var (
	// ErrIO is the single failure kind for reading or writing files.
	ErrIO = errors.New("mdmedium: io failure")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("mdmedium: invalid configuration")

	// ErrInvalidInput is returned when an interactive answer cannot be used.
	ErrInvalidInput = errors.New("mdmedium: invalid input")
)

// IOError records a failed filesystem operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError wraps err, returning nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports ErrIO as a match so callers need not know the concrete type.
func (e *IOError) Is(target error) bool { return target == ErrIO }
