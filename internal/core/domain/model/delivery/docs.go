// Package delivery provides domain entities and business logic for the
// rider-side fulfillment record tied 1:1 to an order. It implements the
// Delivery aggregate root with lifecycle management, derived flag handling,
// and the coupling rules between a delivery and its owning order.
//
// The package includes:
//   - Delivery: The aggregate root managing the fulfillment lifecycle
//   - Status: A state machine enforcing valid delivery status transitions
//   - Flags: The four booleans (is_assigned, is_accepted, is_picked_up,
//     is_completed) derived from status, never independently settable
//
// Key business rules:
//   - Delivery status follows a fixed sequence:
//     assigned -> accepted -> picked_up -> in_transit -> completed
//   - Cancellation is reachable from any non-terminal status and freezes the
//     flags at their value at the time of cancellation
//   - Every transition recomputes all four flags from the status table as part
//     of the same update; a flag combination not in the table is invalid
//   - Completing a delivery requires the owning order to be delivered or
//     completed already
//   - Earnings are set exactly once, at completion, and are immutable after
//
// The delivery's lifetime is contained in its order's lifetime: it exists only
// once a rider is assigned, and cancelling either side cascades to the other
// unless the counterpart is already terminal.
package delivery
