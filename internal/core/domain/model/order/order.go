package order

import (
	"errors"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

// entityKind labels order status change events for downstream consumers.
const entityKind = "order"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrStreetIsRequired is returned when attempting to create an order without
	// a delivery address.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")

	// ErrTotalBelowServiceFee is returned when the order total is less than the
	// service fee. The total covers the fee plus item cost, so it can never be
	// smaller than the fee alone.
	ErrTotalBelowServiceFee = errs.NewInvariantViolatedError(
		entityKind, "total_amount", "total amount must be at least the service fee")
)

// Order represents a customer-initiated request for delivery or a home
// service. It is the aggregate root that manages the order lifecycle from
// pending through completion or cancellation.
//
// Order maintains these invariants:
//   - identifier and customer reference are valid UUIDs
//   - service type is fixed at creation and never changes
//   - total amount >= service fee >= 0
//   - status transitions follow the Status state machine
//
// Successful transitions are recorded as kernel.StatusChangedEvent values,
// retrievable once via PopEvents for the notification collaborator. The
// aggregate performs no I/O itself; callers persist the updated snapshot.
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	serviceType kernel.ServiceType
	serviceFee  kernel.Money
	totalAmount kernel.Money
	street      string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	events []kernel.StatusChangedEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the customer placing the order
//   - serviceType: what is being requested (fixed for the order's lifetime)
//   - serviceFee: the platform fee portion of the total
//   - totalAmount: service fee plus item cost; must be >= serviceFee
//   - street: delivery or service address
//   - now: creation timestamp supplied by the caller
//
// Returns a validation error if any parameter is invalid; errors for multiple
// invalid parameters are joined.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceType kernel.ServiceType,
	serviceFee kernel.Money,
	totalAmount kernel.Money,
	street string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setServiceType(serviceType),
		order.setAmounts(serviceFee, totalAmount),
		order.setStreet(street),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Unlike NewOrder it accepts an arbitrary valid status and the stored
// timestamps, and emits no events.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceType kernel.ServiceType,
	serviceFee kernel.Money,
	totalAmount kernel.Money,
	street string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setServiceType(serviceType),
		order.setAmounts(serviceFee, totalAmount),
		order.setStreet(street),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created through a factory function.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built instances.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ServiceType returns the requested service type. Immutable after creation.
func (o *Order) ServiceType() kernel.ServiceType {
	return o.serviceType
}

// ServiceFee returns the platform fee portion of the total amount.
func (o *Order) ServiceFee() kernel.Money {
	return o.serviceFee
}

// TotalAmount returns the full amount charged: service fee plus item cost.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Street returns the delivery or service address.
func (o *Order) Street() string {
	return o.street
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsTerminal reports whether the order reached a terminal status.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// TransitionTo moves the order to target status.
//
// The move must be the immediate successor in the canonical sequence, or
// Cancelled from any non-terminal status. Re-requesting Delivered or
// Completed when already there is a no-op success. On rejection the order is
// left completely unchanged.
//
// On an actual change the order's updated_at is set to now and a status
// change event is recorded. Identity, service type, and amounts are never
// altered by a transition.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	newStatus, changed, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	o.recordStatusChange(o.status, newStatus, now)
	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel moves the order to Cancelled.
// Fails with an InvalidTransitionError if the order is already terminal.
func (o *Order) Cancel(now time.Time) error {
	return o.TransitionTo(Cancelled, now)
}

// PopEvents returns the status change events recorded since the last call and
// clears the internal buffer. Callers hand these to the notification
// collaborator after the surrounding transaction commits.
func (o *Order) PopEvents() []kernel.StatusChangedEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) recordStatusChange(from, to Status, now time.Time) {
	o.events = append(o.events, kernel.NewStatusChangedEvent(
		entityKind, o.id, from.String(), to.String(), now,
	))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setAmounts(serviceFee, totalAmount kernel.Money) error {
	if !totalAmount.GreaterOrEqual(serviceFee) {
		return ErrTotalBelowServiceFee
	}
	o.serviceFee = serviceFee
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	o.street = street
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
