package commands

import (
	"context"
	"time"

	"hatid/internal/core/domain/model/delivery"
	"hatid/internal/core/ports"
)

// ProgressDeliveryCommandHandler moves a delivery through its forward
// sequence. The aggregate recomputes its flags as part of the transition.
type ProgressDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.NotificationPublisher
}

// NewProgressDeliveryCommandHandler creates a handler for delivery transitions.
func NewProgressDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.NotificationPublisher,
) ProgressDeliveryCommandHandler {
	return ProgressDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery transition command.
func (h *ProgressDeliveryCommandHandler) Handle(ctx context.Context, cmd ProgressDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	del, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := time.Now()
	switch cmd.TargetStatus() {
	case delivery.Accepted:
		err = del.Accept(now)
	case delivery.PickedUp:
		err = del.PickUp(now)
	default:
		err = del.StartTransit(now)
	}
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, del); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishStatusChanged(ctx, del.PopEvents())
	return nil
}
