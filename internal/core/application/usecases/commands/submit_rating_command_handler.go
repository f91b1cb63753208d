package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hatid/internal/core/domain/model/order"
	"hatid/internal/core/domain/model/rating"
	"hatid/internal/pkg/errs"
)

// SubmitRatingCommandHandler records a rating and folds the score into the
// ratee's running average, atomically. The once-per-pair rule is checked by
// lookup inside the transaction; the storage layer backs it with a unique
// index for concurrent submitters.
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(uowFactory RatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission command.
// Ratings are only accepted for orders that reached a terminal settled
// state; a second rating for the same (order, rater) pair fails with a
// DuplicateRatingError.
func (h *SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	ratedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if ratedOrder.Status() != order.Delivered && ratedOrder.Status() != order.Completed {
		return errs.NewPrecursorNotMetErrorWithCause(
			"rating", "order must be delivered or completed before rating",
			fmt.Errorf("order is %s", ratedOrder.Status()),
		)
	}

	ratingRepo := uow.RatingRepository()
	_, err = ratingRepo.GetByOrderAndRater(ctx, cmd.OrderID(), cmd.RaterID())
	if err == nil {
		return errs.NewDuplicateRatingError(cmd.OrderID().String(), cmd.RaterID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	record, err := rating.NewRating(
		cmd.RatingID(), cmd.OrderID(), cmd.RaterID(), cmd.RateeID(),
		cmd.Score(), cmd.Comment(), time.Now())
	if err != nil {
		return err
	}

	if err = ratingRepo.Add(ctx, record); err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	ratee, err := userRepo.Get(ctx, cmd.RateeID())
	if err != nil {
		return err
	}

	if err = ratee.ApplyRating(cmd.Score()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, ratee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
