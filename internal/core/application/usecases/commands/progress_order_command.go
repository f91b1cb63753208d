package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/pkg/guard"
)

var ErrProgressOrderCommandIsNotConstructed = errors.New(
	"ProgressOrderCommand must be created via NewProgressOrderCommand constructor",
)

// ProgressOrderCommand represents a request to move an order to a target
// status. The legality of the move is the aggregate's decision; the command
// only guarantees a well-formed request.
type ProgressOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewProgressOrderCommand creates a command to move an order to targetStatus.
func NewProgressOrderCommand(orderID kernel.UUID, targetStatus order.Status) (ProgressOrderCommand, error) {
	command := ProgressOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return ProgressOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressOrderCommand) Validate() error {
	return c.guard.Validate(ErrProgressOrderCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c ProgressOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested status.
func (c ProgressOrderCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *ProgressOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProgressOrderCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
