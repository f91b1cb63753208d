package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/guard"
)

var ErrPostTicketMessageCommandIsNotConstructed = errors.New(
	"PostTicketMessageCommand must be created via NewPostTicketMessageCommand constructor",
)

// PostTicketMessageCommand represents a user posting a message to a ticket
// thread. The body obeys the message length rule.
type PostTicketMessageCommand struct { //nolint:recvcheck //using for validation
	ticketID  kernel.UUID
	messageID kernel.UUID
	senderID  kernel.UUID
	body      string

	guard guard.ConstructorGuard
}

// NewPostTicketMessageCommand creates a command to post a thread message.
func NewPostTicketMessageCommand(
	ticketID, messageID, senderID kernel.UUID,
	body string,
) (PostTicketMessageCommand, error) {
	command := PostTicketMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(ticketID, messageID, senderID),
		command.setBody(body),
	); err != nil {
		return PostTicketMessageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PostTicketMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostTicketMessageCommandIsNotConstructed)
}

// TicketID returns the ticket receiving the message.
func (c PostTicketMessageCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// MessageID returns the identifier for the new message.
func (c PostTicketMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

// SenderID returns the user posting the message.
func (c PostTicketMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Body returns the message text.
func (c PostTicketMessageCommand) Body() string {
	return c.body
}

func (c *PostTicketMessageCommand) setIDs(ticketID, messageID, senderID kernel.UUID) error {
	if err := errors.Join(
		ticketID.Validate(),
		messageID.Validate(),
		senderID.Validate(),
	); err != nil {
		return err
	}

	c.ticketID = ticketID
	c.messageID = messageID
	c.senderID = senderID
	return nil
}

func (c *PostTicketMessageCommand) setBody(body string) error {
	if err := kernel.ValidateMessageBody(body); err != nil {
		return err
	}

	c.body = body
	return nil
}
