package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand represents a rider toggling whether they can
// take work. Turning availability on requires the rider to be online and
// verified; the profile enforces the rule.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID   kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand creates a command to set the rider's
// availability flag.
func NewSetRiderAvailabilityCommand(riderID kernel.UUID, available bool) (SetRiderAvailabilityCommand, error) {
	command := SetRiderAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setRiderID(riderID); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the rider whose availability changes.
func (c SetRiderAvailabilityCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Available returns the requested availability.
func (c SetRiderAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetRiderAvailabilityCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
