// Package order provides domain entities and business logic for customer order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, customer, service type, and address
//   - The total amount must be at least the service fee, which must be non-negative
//   - Order status follows a fixed sequence:
//     pending -> confirmed -> preparing -> picked -> in_transit -> delivered -> completed
//   - Cancellation is reachable from every status except the terminal ones
//   - Re-requesting delivered or completed on an order already in that status
//     is a no-op success, so callers with at-least-once semantics stay safe
//   - Service type, service fee, and identity never change after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
