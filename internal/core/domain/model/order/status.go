package order

import (
	"fmt"

	"hatid/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending -> Confirmed -> Preparing -> Picked -> InTransit -> Delivered -> Completed
//	    \          \            \          \           \            \
//	     └──────────┴────────────┴──────────┴───────────┴────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no further transitions are allowed.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for confirmation.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Preparing indicates the order is being prepared for pickup.
	Preparing

	// Picked indicates the order has been picked up at its origin.
	Picked

	// InTransit indicates the order is on its way to the customer.
	InTransit

	// Delivered indicates the order reached the customer.
	Delivered

	// Completed indicates the order was confirmed received and settled.
	// This is a terminal state.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state, reachable from every non-terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Picked:    "picked",
		InTransit: "in_transit",
		Delivered: "delivered",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Picked:    "picked",
		InTransit: "in_transit",
		Delivered: "delivered",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its string form.
// Used when reconstructing orders from persistence or external input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
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
	return s == Completed || s == Cancelled
}

// Next returns the immediate successor in the canonical sequence.
//
// Returns an error for terminal statuses and for Unknown, which have no
// successor.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), "",
			fmt.Errorf("%s is a terminal status", s),
		)
	}

	return s + 1, nil
}

// CanTransitionTo checks whether target is a legal move from s without
// performing the transition.
//
// Legal targets are:
//   - the immediate successor in the canonical sequence
//   - Cancelled, from any non-terminal status
//   - Delivered or Completed when s already equals target (idempotent retry)
//
// Returns nil if the transition is allowed, or an InvalidTransitionError
// describing the rejected move.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s.isIdempotentRetry(target) {
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

// TransitionTo applies a transition to target.
//
// Returns the resulting status and whether the status actually changed.
// A repeated request for Delivered or Completed from that same status is
// reported as (target, false, nil): a no-op success, not an error. This
// guards against at-least-once delivery from an unreliable caller.
func (s Status) TransitionTo(target Status) (Status, bool, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, false, err
	}

	if s.isIdempotentRetry(target) {
		return s, false, nil
	}

	return target, true, nil
}

// isIdempotentRetry reports whether the requested target repeats a settled
// Delivered or Completed status. Only those two statuses absorb retries.
func (s Status) isIdempotentRetry(target Status) bool {
	return s == target && (s == Delivered || s == Completed)
}
