package commands

import (
	"context"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/ports"
)

// ExpireStaleOrdersCommandHandler cancels pending orders that were never
// confirmed within the allowed window. Runs from the expiry sweep job.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale order expiry.
func NewExpireStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the expiry command. All stale orders are cancelled within
// one transaction; a single failing order aborts the whole sweep so the next
// run retries it.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) error {
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

	now := time.Now()
	cutoff := now.Add(-cmd.MaxAge())

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	events := make([]kernel.StatusChangedEvent, 0, len(stale))
	for _, aggregate := range stale {
		if err = aggregate.Cancel(now); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		events = append(events, aggregate.PopEvents()...)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishStatusChanged(ctx, events)
	return nil
}
