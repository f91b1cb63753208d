package delivery

import (
	"errors"
	"fmt"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

// entityKind labels delivery status change events for downstream consumers.
const entityKind = "delivery"

// orderDeliveredCondition names the cross-entity precondition for completing
// a delivery.
const orderDeliveredCondition = "owning order must be delivered or completed"

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrFlagsDivergeFromStatus is returned when restoring a delivery whose
	// stored flags do not match the combination its status derives.
	ErrFlagsDivergeFromStatus = errs.NewInvariantViolatedError(
		entityKind, "flags", "flags must match the combination derived from status")

	// ErrEarningsWithoutCompletion is returned when restoring a delivery that
	// has earnings recorded but never completed.
	ErrEarningsWithoutCompletion = errs.NewInvariantViolatedError(
		entityKind, "earnings", "earnings are only set on a completed delivery")
)

// Delivery is the rider-side fulfillment record tied 1:1 to an order. It is
// an aggregate root created the moment a rider is assigned and owned by the
// order it fulfills.
//
// The four booleans (is_assigned, is_accepted, is_picked_up, is_completed)
// are derived from status on every transition and can never be set
// independently; on cancellation they freeze at their current value.
// Earnings are written exactly once, when the delivery completes, and are
// immutable afterward.
//
// Cross-entity rules are enforced at the transition that needs them: the
// owning order's status is passed in and checked, never fetched. The
// aggregate performs no I/O.
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	riderID   kernel.UUID
	status    Status
	flags     Flags
	earnings  *kernel.Money
	createdAt time.Time
	updatedAt time.Time

	events []kernel.StatusChangedEvent
	guard  guard.ConstructorGuard
}

// NewDelivery creates a Delivery in Assigned status for the given order and
// rider. The flags start at the assigned row of the table.
func NewDelivery(id, orderID, riderID kernel.UUID, now time.Time) (*Delivery, error) {
	assignedFlags, err := Assigned.Flags()
	if err != nil {
		return nil, err
	}

	delivery := &Delivery{
		status:    Assigned,
		flags:     assignedFlags,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setRiderID(riderID),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
//
// The stored flags must match the combination the status derives (for
// Cancelled: any freezable row of the table), and earnings may only be
// present on a completed delivery. Snapshots violating either rule are
// rejected, never coerced.
func RestoreDelivery(
	id, orderID, riderID kernel.UUID,
	status Status,
	flags Flags,
	earnings *kernel.Money,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	delivery := &Delivery{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setRiderID(riderID),
		delivery.setStatusAndFlags(status, flags),
		delivery.setRestoredEarnings(earnings),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// Validate ensures the Delivery was created through a factory function.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the owning order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// RiderID returns the identifier of the assigned rider.
func (d *Delivery) RiderID() kernel.UUID {
	return d.riderID
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Flags returns the current flag combination. For every status but Cancelled
// this is the row of the table for Status(); for Cancelled it is the frozen
// combination from the time of cancellation.
func (d *Delivery) Flags() Flags {
	return d.flags
}

// Earnings returns the rider earnings and whether they have been set.
// Earnings exist only once the delivery has completed.
func (d *Delivery) Earnings() (kernel.Money, bool) {
	if d.earnings == nil {
		return kernel.Money{}, false
	}
	return *d.earnings, true
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the delivery last changed.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsTerminal reports whether the delivery reached a terminal status.
func (d *Delivery) IsTerminal() bool {
	return d.status.IsTerminal()
}

// Accept moves the delivery from Assigned to Accepted.
func (d *Delivery) Accept(now time.Time) error {
	return d.progress(Accepted, now)
}

// PickUp moves the delivery from Accepted to PickedUp.
func (d *Delivery) PickUp(now time.Time) error {
	return d.progress(PickedUp, now)
}

// StartTransit moves the delivery from PickedUp to InTransit.
func (d *Delivery) StartTransit(now time.Time) error {
	return d.progress(InTransit, now)
}

// Complete moves the delivery from InTransit to Completed, recording the
// rider's earnings.
//
// The owning order must already be delivered or completed; otherwise the
// transition is rejected with a PrecursorNotMetError and nothing changes.
// A Complete retry on an already-completed delivery is a no-op success and
// leaves the originally recorded earnings untouched.
func (d *Delivery) Complete(earnings kernel.Money, orderStatus order.Status, now time.Time) error {
	newStatus, changed, err := d.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	if orderStatus != order.Delivered && orderStatus != order.Completed {
		return errs.NewPrecursorNotMetErrorWithCause(
			entityKind, orderDeliveredCondition,
			fmt.Errorf("order is %s", orderStatus),
		)
	}

	completedFlags, err := Completed.Flags()
	if err != nil {
		return err
	}

	d.recordStatusChange(d.status, newStatus, now)
	d.status = newStatus
	d.flags = completedFlags
	d.earnings = &earnings
	d.updatedAt = now
	return nil
}

// Cancel moves the delivery to Cancelled from any non-terminal status.
// The flags keep the value they had at the time of cancellation; no earnings
// are recorded. Callers coordinate the cascade to the owning order.
func (d *Delivery) Cancel(now time.Time) error {
	newStatus, _, err := d.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	d.recordStatusChange(d.status, newStatus, now)
	d.status = newStatus
	d.updatedAt = now
	return nil
}

// PopEvents returns the status change events recorded since the last call and
// clears the internal buffer.
func (d *Delivery) PopEvents() []kernel.StatusChangedEvent {
	events := d.events
	d.events = nil
	return events
}

// progress applies a forward transition and recomputes the flags from the
// table as part of the same update.
func (d *Delivery) progress(target Status, now time.Time) error {
	newStatus, changed, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	newFlags, err := newStatus.Flags()
	if err != nil {
		return err
	}

	d.recordStatusChange(d.status, newStatus, now)
	d.status = newStatus
	d.flags = newFlags
	d.updatedAt = now
	return nil
}

func (d *Delivery) recordStatusChange(from, to Status, now time.Time) {
	d.events = append(d.events, kernel.NewStatusChangedEvent(
		entityKind, d.id, from.String(), to.String(), now,
	))
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	d.riderID = riderID
	return nil
}

func (d *Delivery) setStatusAndFlags(status Status, flags Flags) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if !flags.MatchesStatus(status) {
		return ErrFlagsDivergeFromStatus
	}
	d.status = status
	d.flags = flags
	return nil
}

func (d *Delivery) setRestoredEarnings(earnings *kernel.Money) error {
	if earnings != nil && d.status != Completed {
		return ErrEarningsWithoutCompletion
	}
	if earnings == nil && d.status == Completed {
		return ErrEarningsWithoutCompletion
	}
	d.earnings = earnings
	return nil
}
