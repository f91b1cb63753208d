package commands

import (
	"context"
	"time"

	"hatid/internal/core/ports"
)

// ProgressOrderCommandHandler moves an order through its lifecycle.
// Rejected transitions leave the order untouched; idempotent retries of
// delivered or completed succeed without a second event.
type ProgressOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewProgressOrderCommandHandler creates a handler for order transitions.
func NewProgressOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) ProgressOrderCommandHandler {
	return ProgressOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order transition command.
// Loads the order, applies the transition, persists the updated snapshot,
// and publishes the resulting status change event after commit.
func (h *ProgressOrderCommandHandler) Handle(ctx context.Context, cmd ProgressOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.TargetStatus(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishStatusChanged(ctx, aggregate.PopEvents())
	return nil
}
