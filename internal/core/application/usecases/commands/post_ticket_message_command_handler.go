package commands

import (
	"context"
	"time"

	"hatid/internal/core/domain/model/ticket"
)

// PostTicketMessageCommandHandler appends messages to ticket threads.
type PostTicketMessageCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewPostTicketMessageCommandHandler creates a handler for posting thread messages.
func NewPostTicketMessageCommandHandler(uowFactory TicketUoWFactory) PostTicketMessageCommandHandler {
	return PostTicketMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the message posting command.
// Closed tickets reject new messages; the aggregate enforces the rule.
func (h *PostTicketMessageCommandHandler) Handle(ctx context.Context, cmd PostTicketMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticketRepo := uow.TicketRepository()
	aggregate, err := ticketRepo.Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	now := time.Now()
	message, err := ticket.NewMessage(cmd.MessageID(), cmd.SenderID(), cmd.Body(), now)
	if err != nil {
		return err
	}

	if err = aggregate.PostMessage(message, now); err != nil {
		return err
	}

	if err = ticketRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
