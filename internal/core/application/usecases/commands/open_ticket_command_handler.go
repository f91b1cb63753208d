package commands

import (
	"context"
	"time"

	"hatid/internal/core/domain/model/ticket"
)

// OpenTicketCommandHandler opens support tickets.
type OpenTicketCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewOpenTicketCommandHandler creates a handler for ticket opening.
func NewOpenTicketCommandHandler(uowFactory TicketUoWFactory) OpenTicketCommandHandler {
	return OpenTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ticket opening command.
func (h *OpenTicketCommandHandler) Handle(ctx context.Context, cmd OpenTicketCommand) error {
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

	aggregate, err := ticket.NewTicket(cmd.TicketID(), cmd.OpenerID(), cmd.Subject(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.TicketRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
