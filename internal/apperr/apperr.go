package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds shared by the repository, the session engine and the
// HTTP layer. Services wrap them with context via fmt.Errorf("…: %w", …) and
// handlers classify with errors.Is.
var (
	// ErrValidation marks malformed input: empty quizzes, broken questions,
	// out-of-range indices, scores outside [0,100].
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks operations against a missing quiz or session ID.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition marks operations that are illegal in the current
	// session phase, e.g. answering after finish or selecting a mode twice.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Transitionf wraps ErrInvalidTransition with a formatted detail message.
func Transitionf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransition, fmt.Sprintf(format, args...))
}
