package commands

import (
	"errors"

	"hatid/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand triggers the assignment of an available rider to a
// confirmed order without a delivery yet. It finds the first such order and
// creates a delivery for the best matching rider.
type AssignDeliveryCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a new command to trigger rider assignment.
// This is a parameterless command that initiates the rider-order matching process.
func NewAssignDeliveryCommand() AssignDeliveryCommand {
	return AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryCommandIsNotConstructed if validation fails.
func (c *AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignDeliveryCommandIsNotConstructed,
	)
}
