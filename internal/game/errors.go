package game

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOnboarded is returned by commands that need a profile before
	// one has been created.
	ErrNotOnboarded = errors.New("no profile yet, run onboarding first")

	// ErrAlreadyOnboarded guards the one-profile-per-installation rule.
	ErrAlreadyOnboarded = errors.New("a profile already exists")

	ErrInsufficientFunds = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrNotOwned          = errors.New("item not owned")
)

// ValidationError rejects bad input before any state mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FocusNotStartedError is returned when a focus task is completed without
// going through a focus session first.
type FocusNotStartedError struct {
	TaskID string
}

func (e FocusNotStartedError) Error() string {
	return fmt.Sprintf("focus task %s has no session yet; start one with the timer", e.TaskID)
}
