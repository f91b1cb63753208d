package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/guard"
)

var (
	ErrOpenTicketCommandIsNotConstructed = errors.New(
		"OpenTicketCommand must be created via NewOpenTicketCommand constructor",
	)
	ErrSubjectIsRequired = errors.New("subject is required")
)

// OpenTicketCommand represents a user opening a support ticket.
type OpenTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	openerID kernel.UUID
	subject  string

	guard guard.ConstructorGuard
}

// NewOpenTicketCommand creates a command to open a ticket.
func NewOpenTicketCommand(ticketID, openerID kernel.UUID, subject string) (OpenTicketCommand, error) {
	command := OpenTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTicketID(ticketID),
		command.setOpenerID(openerID),
		command.setSubject(subject),
	); err != nil {
		return OpenTicketCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenTicketCommand) Validate() error {
	return c.guard.Validate(ErrOpenTicketCommandIsNotConstructed)
}

// TicketID returns the identifier for the new ticket.
func (c OpenTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// OpenerID returns the user opening the ticket.
func (c OpenTicketCommand) OpenerID() kernel.UUID {
	return c.openerID
}

// Subject returns the ticket subject line.
func (c OpenTicketCommand) Subject() string {
	return c.subject
}

func (c *OpenTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	c.ticketID = ticketID
	return nil
}

func (c *OpenTicketCommand) setOpenerID(openerID kernel.UUID) error {
	if err := openerID.Validate(); err != nil {
		return err
	}

	c.openerID = openerID
	return nil
}

func (c *OpenTicketCommand) setSubject(subject string) error {
	if subject == "" {
		return ErrSubjectIsRequired
	}

	c.subject = subject
	return nil
}
