package commands

import (
	"context"
	"errors"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/ports"
	"hatid/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and cascades the cancellation
// into the order's delivery. A delivery that already reached a terminal
// status is left alone.
type CancelOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.NotificationPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a DeliveryUoWFactory since the cascade spans both aggregates.
func NewCancelOrderCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.NotificationPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order cancellation command.
// Cancels the order, then the owning order's delivery unless it is terminal,
// all within one transaction. Events from both aggregates are published after
// commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	events := aggregate.PopEvents()

	deliveryRepo := uow.DeliveryRepository()
	del, err := deliveryRepo.GetByOrder(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// No delivery assigned yet, nothing to cascade into.
	case err != nil:
		return err
	case !del.IsTerminal():
		if err = del.Cancel(now); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, del); err != nil {
			return err
		}
		events = append(events, del.PopEvents()...)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, events)
	return nil
}

func (h *CancelOrderCommandHandler) publish(ctx context.Context, events []kernel.StatusChangedEvent) {
	_ = h.publisher.PublishStatusChanged(ctx, events)
}
