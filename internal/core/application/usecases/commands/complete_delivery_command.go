package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to complete a delivery and
// settle the rider's earnings. Completion requires the owning order to have
// reached delivered or completed; earnings are written exactly once.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	earnings   kernel.Money

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete the given delivery
// with the given earnings.
func NewCompleteDeliveryCommand(deliveryID kernel.UUID, earnings kernel.Money) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDeliveryID(deliveryID); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	command.earnings = earnings

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Earnings returns the rider's earnings for the delivery.
func (c CompleteDeliveryCommand) Earnings() kernel.Money {
	return c.earnings
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
