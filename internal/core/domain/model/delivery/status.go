package delivery

import (
	"fmt"

	"hatid/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Assigned -> Accepted -> PickedUp -> InTransit -> Completed
//	    \          \           \           \
//	     └──────────┴───────────┴───────────┴──────> Cancelled
//
// Completed and Cancelled are terminal. Each status implies an exact
// combination of the four delivery flags; see Flags.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status once a rider is assigned to an order.
	Assigned

	// Accepted indicates the rider accepted the assignment.
	Accepted

	// PickedUp indicates the rider collected the package.
	PickedUp

	// InTransit indicates the rider is en route to the customer.
	InTransit

	// Completed indicates the delivery was handed over. Terminal.
	Completed

	// Cancelled indicates the delivery was called off. Terminal; flags stay
	// frozen at their value at the time of cancellation.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "assigned",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the Status value is valid.
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
	return s == Completed || s == Cancelled
}

// CanTransitionTo checks whether target is a legal move from s without
// performing the transition. Legal targets are the immediate successor in the
// forward sequence, Cancelled from any non-terminal status, and Completed
// repeated from Completed (idempotent retry).
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s == Completed && target == Completed {
		return nil
	}

	if s.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(), target.String(),
			fmt.Errorf("%s is a terminal status", s),
		)
	}

	if target == Cancelled || target == s+1 {
		return nil
	}

	return errs.NewInvalidTransitionError(s.String(), target.String())
}

// TransitionTo applies a transition to target, returning the resulting status
// and whether it actually changed. A Completed retry from Completed is a
// no-op success.
func (s Status) TransitionTo(target Status) (Status, bool, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, false, err
	}

	if s == Completed && target == Completed {
		return s, false, nil
	}

	return target, true, nil
}

// Flags is the set of four booleans denormalized onto a delivery record.
// They are a pure function of status for every status except Cancelled,
// where they keep the value they had when the delivery was cancelled.
type Flags struct {
	IsAssigned  bool
	IsAccepted  bool
	IsPickedUp  bool
	IsCompleted bool
}

// statusFlags is the authoritative flag table for non-cancelled statuses.
func statusFlags() map[Status]Flags {
	return map[Status]Flags{
		Assigned:  {IsAssigned: true},
		Accepted:  {IsAssigned: true, IsAccepted: true},
		PickedUp:  {IsAssigned: true, IsAccepted: true, IsPickedUp: true},
		InTransit: {IsAssigned: true, IsAccepted: true, IsPickedUp: true},
		Completed: {IsAssigned: true, IsAccepted: true, IsPickedUp: true, IsCompleted: true},
	}
}

// Flags returns the flag combination implied by the status.
// Cancelled has no derivable combination (its flags are frozen on the
// aggregate), so it returns an error, as do invalid statuses.
func (s Status) Flags() (Flags, error) {
	if flags, ok := statusFlags()[s]; ok {
		return flags, nil
	}
	return Flags{}, errs.NewValueIsInvalidErrorWithCause(
		"status has no derived flags",
		fmt.Errorf("%s does not derive a flag combination", s),
	)
}

// MatchesStatus reports whether the flag combination is exactly the one the
// table derives for the given status. For Cancelled it reports whether the
// flags are a combination that could have been frozen, i.e. any row of the
// table except the completed one.
func (f Flags) MatchesStatus(status Status) bool {
	if status == Cancelled {
		for from, flags := range statusFlags() {
			if from != Completed && f == flags {
				return true
			}
		}
		return false
	}

	flags, err := status.Flags()
	if err != nil {
		return false
	}
	return f == flags
}
