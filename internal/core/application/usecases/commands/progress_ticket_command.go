package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/ticket"
	"hatid/internal/pkg/guard"
)

var ErrProgressTicketCommandIsNotConstructed = errors.New(
	"ProgressTicketCommand must be created via NewProgressTicketCommand constructor",
)

// ProgressTicketCommand represents a request to move a ticket to a target
// status. Only forward moves are legal; the aggregate decides.
type ProgressTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID     kernel.UUID
	targetStatus ticket.Status

	guard guard.ConstructorGuard
}

// NewProgressTicketCommand creates a command to move a ticket to targetStatus.
func NewProgressTicketCommand(ticketID kernel.UUID, targetStatus ticket.Status) (ProgressTicketCommand, error) {
	command := ProgressTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTicketID(ticketID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return ProgressTicketCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressTicketCommand) Validate() error {
	return c.guard.Validate(ErrProgressTicketCommandIsNotConstructed)
}

// TicketID returns the ticket to move.
func (c ProgressTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// TargetStatus returns the requested status.
func (c ProgressTicketCommand) TargetStatus() ticket.Status {
	return c.targetStatus
}

func (c *ProgressTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	c.ticketID = ticketID
	return nil
}

func (c *ProgressTicketCommand) setTargetStatus(targetStatus ticket.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
