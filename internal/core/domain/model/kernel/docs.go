// Package kernel contains the shared value objects of the hatid domain model.
//
// The kernel holds types that more than one aggregate depends on: identifiers
// (UUID), Philippine phone numbers, money amounts, rating scores, pagination
// bounds, message bodies, service types, and the status-change event emitted
// by every successful lifecycle transition.
//
// All types here are immutable value objects constructed through validating
// factory functions. Construction either succeeds with a valid value or fails
// with a typed error from internal/pkg/errs; a zero value is detectable via
// the Validate method. No type in this package performs I/O or holds mutable
// shared state, so values can be used concurrently without coordination.
package kernel
