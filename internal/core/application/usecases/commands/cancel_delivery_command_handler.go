package commands

import (
	"context"
	"time"

	"hatid/internal/core/ports"
)

// CancelDeliveryCommandHandler cancels a delivery and cascades the
// cancellation into the owning order. The delivery's flags stay frozen at
// their value at cancellation time; an order that already reached a terminal
// status is left alone.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.NotificationPublisher
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.NotificationPublisher,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery cancellation command.
// Cancels the delivery, then the owning order unless it is terminal, all
// within one transaction. Events from both aggregates are published after
// commit.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	del, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = del.Cancel(now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, del); err != nil {
		return err
	}

	events := del.PopEvents()

	orderRepo := uow.OrderRepository()
	owner, err := orderRepo.Get(ctx, del.OrderID())
	if err != nil {
		return err
	}

	if !owner.IsTerminal() {
		if err = owner.Cancel(now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, owner); err != nil {
			return err
		}
		events = append(events, owner.PopEvents()...)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishStatusChanged(ctx, events)
	return nil
}
