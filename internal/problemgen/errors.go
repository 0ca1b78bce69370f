package problemgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSettings matches every *SettingsError.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInsufficientDistractors is returned when the product table cannot
	// supply the requested number of wrong numbers.
	ErrInsufficientDistractors = errors.New("insufficient distractors")

	// ErrInsufficientDecoys is returned when the decoy catalog is smaller
	// than the requested decoy count.
	ErrInsufficientDecoys = errors.New("insufficient decoys")
)

// SettingsError describes a configuration value out of range.
type SettingsError struct {
	Field  string // Settings field name, e.g. "table"
	Value  string // Offending value as given
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *SettingsError) Unwrap() error { return ErrInvalidSettings }

// InsufficientCandidatesError reports a candidate pool smaller than the
// number of entries requested from it.
type InsufficientCandidatesError struct {
	Kind string // "distractors" or "decoys"
	Need int
	Have int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("need %d %s, only %d available", e.Need, e.Kind, e.Have)
}

func (e *InsufficientCandidatesError) Unwrap() error {
	if e.Kind == kindDecoys {
		return ErrInsufficientDecoys
	}
	return ErrInsufficientDistractors
}

const (
	kindDistractors = "distractors"
	kindDecoys      = "decoys"
)
