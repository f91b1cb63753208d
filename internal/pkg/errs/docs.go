// Package errs provides standardized error types for the hatid application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and error types for the domain lifecycle rules:
//   - InvalidTransitionError: For status changes outside the legal transition set
//   - InvariantViolatedError: For entity snapshots that break cross-field invariants
//   - PrecursorNotMetError: For cross-entity ordering rules that do not hold
//   - DuplicateRatingError: For repeated rating submissions on the same order
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All errors are returned as values from the responsible component; no
// component catches and silently ignores a violation. None of these error
// kinds are fatal to the process; each is scoped to one requested operation
// and leaves all entities in their last valid state.
package errs
