// Package errs defines the error taxonomy shared by the generator layers.
//
// Every error surfaced to the operator wraps exactly one of the kinds below so
// callers can decide with errors.Is whether a failure ends the whole run or
// only the model being generated.
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrValidation is a rejected option combination. Nothing is generated.
	ErrValidation = errors.New("validation failed")
	// ErrModelNotFound is an explicitly requested model missing from the models path.
	ErrModelNotFound = errors.New("model not found")
	// ErrInvalidModel is a class that is not a concrete persistence model.
	ErrInvalidModel = errors.New("invalid model")
	// ErrTemplateNotFound is a stub missing from both the override directory and the embedded set.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrIO is a filesystem failure while writing an artifact.
	ErrIO = errors.New("i/o error")
	// ErrDatabase is a failed connectivity preflight.
	ErrDatabase = errors.New("database error")
)

// Wrap annotates cause with an error kind and a message.
// Both kind and cause remain matchable with errors.Is.
func Wrap(kind, cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%s: %w", msg, kind)
	}
	return fmt.Errorf("%s: %w: %w", msg, kind, cause)
}

// IsBatchFatal reports whether err aborts the whole run rather than a single model.
func IsBatchFatal(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrDatabase)
}
