package ticket

import (
	"fmt"

	"hatid/internal/pkg/errs"
)

// Status represents the lifecycle state of a support ticket.
//
// State transitions:
//
//	Open -> InProgress -> Resolved -> Closed
//
// The status is strictly monotonic: it may skip forward over intermediate
// statuses (open -> resolved is legal) but never moves backward, so a
// ticket cannot be reopened. Closed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when a ticket is first created.
	Open

	// InProgress indicates someone is actively working the ticket.
	InProgress

	// Resolved indicates the reported issue was addressed.
	Resolved

	// Closed indicates the thread is finished.
	// This is a terminal state.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Open:       "open",
		InProgress: "in_progress",
		Resolved:   "resolved",
		Closed:     "closed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "open",
		InProgress: "in_progress",
		Resolved:   "resolved",
		Closed:     "closed",
	}
}

// StatusFromString parses a status from its string form.
// Used when reconstructing tickets from persistence or external input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid ticket status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other undefined values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is legal from this status.
func (s Status) IsTerminal() bool {
	return s == Closed
}

// CanTransitionTo checks whether target is a legal move from s without
// performing the transition.
//
// Any strictly forward move is legal, including skips over intermediate
// statuses. Staying in place or moving backward is rejected.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(), target.String(),
			fmt.Errorf("%s is a terminal status", s),
		)
	}

	if target > s {
		return nil
	}

	return errs.NewInvalidTransitionError(s.String(), target.String())
}

// TransitionTo applies a transition to target, returning the resulting
// status or an InvalidTransitionError for non-forward moves.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}
	return target, nil
}
