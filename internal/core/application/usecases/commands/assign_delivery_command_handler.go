package commands

import (
	"context"
	"errors"
	"time"

	"hatid/internal/core/domain/model/delivery"
	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/core/domain/services"
	"hatid/internal/pkg/errs"
)

var (
	ErrNoAvailableRidersFound = errors.New("no available riders found")
	ErrNoOrderFound           = errors.New("no order found")
)

// AssignDeliveryCommandHandler orchestrates the rider assignment process.
// Finds confirmed orders without a delivery and matches them with available
// riders through the DeliveryDispatcher. Ensures transactional consistency
// between the new delivery and the rider pool it was chosen from.
type AssignDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for rider assignment.
// Requires an AssignmentUoWFactory for coordinating reads across orders and
// riders with the delivery insert.
func NewAssignDeliveryCommandHandler(uowFactory AssignmentUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider assignment command.
// Picks the first confirmed order that has no delivery yet, gathers the
// available riders for its service type, and lets the dispatcher choose.
// Returns ErrNoOrderFound when every confirmed order already has a delivery
// and ErrNoAvailableRidersFound when the rider pool is empty.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := h.firstUnassignedOrder(ctx, uow)
	if err != nil {
		return err
	}

	candidates, err := h.gatherCandidates(ctx, uow, aggregate.ServiceType())
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return ErrNoAvailableRidersFound
	}

	chosen, err := services.NewDeliveryDispatcher().Dispatch(aggregate, candidates)
	if err != nil {
		return err
	}

	del, err := delivery.NewDelivery(
		kernel.NewUUID(), aggregate.ID(), chosen.Profile.RiderID(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, del); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// firstUnassignedOrder scans confirmed orders for one without a delivery.
func (h AssignDeliveryCommandHandler) firstUnassignedOrder(
	ctx context.Context,
	uow AssignmentUoW,
) (*order.Order, error) {
	orders, err := uow.OrderRepository().GetAllInConfirmedStatus(ctx)
	if err != nil {
		return nil, err
	}

	deliveryRepo := uow.DeliveryRepository()
	for _, aggregate := range orders {
		_, err = deliveryRepo.GetByOrder(ctx, aggregate.ID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return aggregate, nil
		}
		if err != nil {
			return nil, err
		}
	}

	return nil, ErrNoOrderFound
}

// gatherCandidates pairs every available profile with its user record.
func (h AssignDeliveryCommandHandler) gatherCandidates(
	ctx context.Context,
	uow AssignmentUoW,
	serviceType kernel.ServiceType,
) ([]services.Candidate, error) {
	profiles, err := uow.RiderProfileRepository().GetAllAvailable(ctx, serviceType)
	if err != nil {
		return nil, err
	}

	userRepo := uow.UserRepository()
	candidates := make([]services.Candidate, 0, len(profiles))
	for _, profile := range profiles {
		user, err := userRepo.Get(ctx, profile.RiderID())
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, services.Candidate{Profile: profile, User: user})
	}

	return candidates, nil
}
