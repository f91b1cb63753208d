package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStreetIsRequired = errors.New("street is required")
)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the customer, the requested service, the pricing, and the
// delivery or service address.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	serviceType kernel.ServiceType
	serviceFee  kernel.Money
	totalAmount kernel.Money
	street      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, service type, amounts and address.
// Returns an error if any validation fails; errors are joined.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	serviceType kernel.ServiceType,
	serviceFee kernel.Money,
	totalAmount kernel.Money,
	street string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setServiceType(serviceType),
		orderCommand.setAmounts(serviceFee, totalAmount),
		orderCommand.setStreet(street),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceType returns the requested service type.
func (c CreateOrderCommand) ServiceType() kernel.ServiceType {
	return c.serviceType
}

// ServiceFee returns the platform fee portion of the total.
func (c CreateOrderCommand) ServiceFee() kernel.Money {
	return c.serviceFee
}

// TotalAmount returns the full amount to charge.
func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// Street returns the delivery or service address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setAmounts(serviceFee, totalAmount kernel.Money) error {
	c.serviceFee = serviceFee
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}
