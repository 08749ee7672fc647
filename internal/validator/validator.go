// Package validator holds the per-format capabilities that try to
// unlock a target file with a single candidate password, and the
// registry that resolves a detected format kind to the right one.
package validator

import (
	"errors"
	"fmt"

	"brutefile/internal/format"
)

// ErrWrongPassword reports that a candidate did not unlock the target.
// It is the expected outcome of almost every attempt and is never
// surfaced individually, only counted.
var ErrWrongPassword = errors.New("wrong password")

// ErrUnsupportedFormat reports that no validator exists for the
// detected format kind.
var ErrUnsupportedFormat = errors.New("unsupported target format")

// MissingDependencyError reports that a validator exists for the kind
// but its backing tool is not installed. Distinct from
// ErrUnsupportedFormat so the user gets a remediation hint instead of
// a dead end.
type MissingDependencyError struct {
	Kind format.Kind
	Hint string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s support requires a missing dependency (%s)", e.Kind, e.Hint)
}

// StructuralError reports that the target artifact itself is unusable:
// truncated, corrupt, or not actually password protected. It retires
// the worker that hit it; the run only aborts if every worker does.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("target %s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func structural(path string, err error) error {
	return &StructuralError{Path: path, Err: err}
}

// Validator attempts to unlock one target with one candidate.
//
// Attempt returns nil when the candidate unlocks the target,
// ErrWrongPassword when it does not, and *StructuralError when the
// target itself is broken. Any other error is transient and the
// caller treats it like a failed candidate. Implementations must be
// safe for concurrent Attempt calls.
type Validator interface {
	Kind() format.Kind
	Attempt(candidate string) error
}
