package errs

import "fmt"

// ErrInvalidTransition is the sentinel error for status changes outside the
// legal transition set of a lifecycle state machine.
var ErrInvalidTransition = fmt.Errorf("transition is invalid")

// InvalidTransitionError reports a rejected status change. The entity is left
// unchanged whenever this error is returned.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// source and target statuses.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From: from,
		To:   to,
	}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError
// wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:  from,
		To:    to,
		Cause: cause,
	}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: from is: %s, to is: %s (cause: %s)",
			ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ErrInvariantViolated is the sentinel error for entity snapshots that break a
// cross-field invariant.
var ErrInvariantViolated = fmt.Errorf("invariant is violated")

// InvariantViolatedError reports which rule a candidate entity snapshot broke.
// Violations are reported, never silently coerced.
type InvariantViolatedError struct {
	Entity string
	Field  string
	Rule   string
	Cause  error
}

// NewInvariantViolatedError creates an InvariantViolatedError for the given
// entity, field, and rule.
func NewInvariantViolatedError(entity, field, rule string) *InvariantViolatedError {
	return &InvariantViolatedError{
		Entity: entity,
		Field:  field,
		Rule:   rule,
	}
}

// NewInvariantViolatedErrorWithCause creates an InvariantViolatedError
// wrapping an underlying cause.
func NewInvariantViolatedErrorWithCause(entity, field, rule string, cause error) *InvariantViolatedError {
	return &InvariantViolatedError{
		Entity: entity,
		Field:  field,
		Rule:   rule,
		Cause:  cause,
	}
}

func (e *InvariantViolatedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: entity is: %s, field is: %s, rule is: %s (cause: %s)",
			ErrInvariantViolated, e.Entity, e.Field, e.Rule, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s.%s: %s", ErrInvariantViolated, e.Entity, e.Field, e.Rule))
}

func (e *InvariantViolatedError) Unwrap() error {
	return ErrInvariantViolated
}

// ErrPrecursorNotMet is the sentinel error for cross-entity ordering rules
// that do not hold, e.g. completing a delivery before its order is delivered.
var ErrPrecursorNotMet = fmt.Errorf("precursor is not met")

// PrecursorNotMetError reports a cross-entity precondition that must hold
// before the requested operation is legal.
type PrecursorNotMetError struct {
	Entity            string
	RequiredCondition string
	Cause             error
}

// NewPrecursorNotMetError creates a PrecursorNotMetError for the given entity
// and the condition it requires.
func NewPrecursorNotMetError(entity, requiredCondition string) *PrecursorNotMetError {
	return &PrecursorNotMetError{
		Entity:            entity,
		RequiredCondition: requiredCondition,
	}
}

// NewPrecursorNotMetErrorWithCause creates a PrecursorNotMetError wrapping an
// underlying cause.
func NewPrecursorNotMetErrorWithCause(entity, requiredCondition string, cause error) *PrecursorNotMetError {
	return &PrecursorNotMetError{
		Entity:            entity,
		RequiredCondition: requiredCondition,
		Cause:             cause,
	}
}

func (e *PrecursorNotMetError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: entity is: %s, required condition is: %s (cause: %s)",
			ErrPrecursorNotMet, e.Entity, e.RequiredCondition, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s requires %s", ErrPrecursorNotMet, e.Entity, e.RequiredCondition))
}

func (e *PrecursorNotMetError) Unwrap() error {
	return ErrPrecursorNotMet
}

// ErrDuplicateRating is the sentinel error for repeated rating submissions.
var ErrDuplicateRating = fmt.Errorf("rating already exists")

// DuplicateRatingError reports a second rating attempt for an (order, rater)
// pair that has already been rated. The first rating is unaffected.
type DuplicateRatingError struct {
	OrderID string
	RaterID string
	Cause   error
}

// NewDuplicateRatingError creates a DuplicateRatingError for the given order
// and rater identifiers.
func NewDuplicateRatingError(orderID, raterID string) *DuplicateRatingError {
	return &DuplicateRatingError{
		OrderID: orderID,
		RaterID: raterID,
	}
}

// NewDuplicateRatingErrorWithCause creates a DuplicateRatingError wrapping an
// underlying cause, typically a unique constraint violation.
func NewDuplicateRatingErrorWithCause(orderID, raterID string, cause error) *DuplicateRatingError {
	return &DuplicateRatingError{
		OrderID: orderID,
		RaterID: raterID,
		Cause:   cause,
	}
}

func (e *DuplicateRatingError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: order is: %s, rater is: %s (cause: %s)",
			ErrDuplicateRating, e.OrderID, e.RaterID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: order is: %s, rater is: %s", ErrDuplicateRating, e.OrderID, e.RaterID))
}

func (e *DuplicateRatingError) Unwrap() error {
	return ErrDuplicateRating
}
