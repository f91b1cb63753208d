package commands

import (
	"context"
	"time"

	"hatid/internal/core/ports"
)

// CompleteDeliveryCommandHandler completes a delivery.
// Reads the owning order in the same transaction so the aggregate can verify
// the completion precursor; a retry of an already completed delivery is a
// no-op success and leaves earnings untouched.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.NotificationPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.NotificationPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	owner, err := uow.OrderRepository().Get(ctx, del.OrderID())
	if err != nil {
		return err
	}

	if err = del.Complete(cmd.Earnings(), owner.Status(), time.Now()); err != nil {
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
