package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStudioConfigured is returned when neither the YAML file nor the
	// environment provides a usable studio account.
	ErrNoStudioConfigured = errors.New("couldn't find any studio account configuration")
	// ErrIncompleteStudio is returned when a named studio entry is missing
	// its email or password.
	ErrIncompleteStudio = errors.New("incomplete studio configuration")
	// ErrNoDefaultStudio is returned when no studio is marked default and
	// there are no course entries to compensate.
	ErrNoDefaultStudio = errors.New("because there are no course configuration entries, at least one studio configuration must be marked as default")
)

// Error is the user-facing configuration failure. Every instance points the
// reader at the example configuration file and unwraps to one of the
// sentinel causes above, so callers can branch with errors.Is.
//
// File read and YAML parse failures are deliberately NOT converted to this
// type: they propagate as-is so that a malformed configuration file halts
// startup with the decoder's own diagnostics.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s\nPlease see the example file (git2edx.env.example.yml) for a detailed configuration walkthrough.", e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

func newError(cause error) error {
	return &Error{cause: cause}
}

func incompleteStudio(name, field string) error {
	return newError(fmt.Errorf("the %q studio configuration has no %s entry: %w", name, field, ErrIncompleteStudio))
}
