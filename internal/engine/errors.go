package engine

import (
	"errors"
	"fmt"
)

// User preconditions. These are shown to the user; state is left unchanged.
var (
	ErrNoSubjects         = errors.New("no subjects yet: add a subject to start studying")
	ErrNoSubjectSelected  = errors.New("no subject selected")
	ErrTimerRunning       = errors.New("timer is running")
	ErrTimerNotRunning    = errors.New("timer is not running")
	ErrEmptySession       = errors.New("session must last at least one second")
	ErrInvalidTheme       = errors.New("theme must be light or dark")
	ErrProfileNameMissing = errors.New("profile name is required")
)

// ErrNoScheduler is returned by Timer.Start on a Service built without WithScheduler.
var ErrNoScheduler = errors.New("timer has no scheduler")

// ErrInvalidInput wraps malformed user input such as a blank name or a bad date.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidMode wraps an unknown timer mode.
var ErrInvalidMode = errors.New("invalid timer mode")

// NotFoundError reports a missing subject or task.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

type InvalidCategoryError struct {
	Category string
}

func (e InvalidCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Category)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func errInvalidMode(m Mode) error {
	return fmt.Errorf("%w %q", ErrInvalidMode, m)
}
