package commands

import (
	"errors"
	"fmt"

	"hatid/internal/core/domain/model/delivery"
	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

var ErrProgressDeliveryCommandIsNotConstructed = errors.New(
	"ProgressDeliveryCommand must be created via NewProgressDeliveryCommand constructor",
)

// ProgressDeliveryCommand represents a rider's request to move a delivery
// forward: accepting the assignment, picking the package up, or starting
// transit. Completion and cancellation have their own commands since they
// carry extra semantics.
type ProgressDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	targetStatus delivery.Status

	guard guard.ConstructorGuard
}

// NewProgressDeliveryCommand creates a command to move a delivery to
// targetStatus. Only Accepted, PickedUp and InTransit are accepted here.
func NewProgressDeliveryCommand(deliveryID kernel.UUID, targetStatus delivery.Status) (ProgressDeliveryCommand, error) {
	command := ProgressDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return ProgressDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrProgressDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to move.
func (c ProgressDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TargetStatus returns the requested status.
func (c ProgressDeliveryCommand) TargetStatus() delivery.Status {
	return c.targetStatus
}

func (c *ProgressDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ProgressDeliveryCommand) setTargetStatus(targetStatus delivery.Status) error {
	switch targetStatus {
	case delivery.Accepted, delivery.PickedUp, delivery.InTransit:
		c.targetStatus = targetStatus
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"target status is invalid",
			fmt.Errorf("%s is not a progress target; use the dedicated complete or cancel command", targetStatus),
		)
	}
}
