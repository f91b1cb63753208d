package commands

import (
	"context"
)

// SetRiderAvailabilityCommandHandler toggles a rider's availability flag.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory RiderProfileUoWFactory
}

// NewSetRiderAvailabilityCommandHandler creates a handler for availability changes.
func NewSetRiderAvailabilityCommandHandler(uowFactory RiderProfileUoWFactory) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change command.
// The profile rejects turning availability on while offline or unverified.
func (h *SetRiderAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetRiderAvailabilityCommand) error {
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

	profileRepo := uow.RiderProfileRepository()
	profile, err := profileRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = profile.SetAvailable(cmd.Available()); err != nil {
		return err
	}

	if err = profileRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
