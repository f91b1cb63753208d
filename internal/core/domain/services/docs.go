// Package services provides domain services that orchestrate business
// operations across multiple domain entities. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryDispatcher: selects the best available rider for a confirmed order
//   - InvariantChecker: reports every invariant a raw entity snapshot breaks
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
