package commands

import (
	"context"
	"time"

	"hatid/internal/core/ports"
)

// ProgressTicketCommandHandler moves a ticket through its lifecycle.
type ProgressTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	publisher  ports.NotificationPublisher
}

// NewProgressTicketCommandHandler creates a handler for ticket transitions.
func NewProgressTicketCommandHandler(
	uowFactory TicketUoWFactory,
	publisher ports.NotificationPublisher,
) ProgressTicketCommandHandler {
	return ProgressTicketCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the ticket transition command.
func (h *ProgressTicketCommandHandler) Handle(ctx context.Context, cmd ProgressTicketCommand) error {
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

	if err = aggregate.TransitionTo(cmd.TargetStatus(), time.Now()); err != nil {
		return err
	}

	if err = ticketRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishStatusChanged(ctx, aggregate.PopEvents())
	return nil
}
