package ratingrepo

import (
	"context"
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/rating"
	"hatid/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating to the database. A unique index violation on
// (order_id, rater_id) means a concurrent submission won the race; it is
// surfaced as a DuplicateRatingError so callers handle both paths the same.
// Requires the connection to be opened with TranslateError enabled.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateRatingErrorWithCause(
				aggregate.OrderID().String(), aggregate.RaterID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderAndRater retrieves the rating the given user submitted for the
// given order.
func (r *GormRatingRepository) GetByOrderAndRater(ctx context.Context, orderID, raterID kernel.UUID) (*rating.Rating, error) {
	if err := errors.Join(orderID.Validate(), raterID.Validate()); err != nil {
		return nil, err
	}

	var dto RatingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND rater_id = ?", orderID.Bytes(), raterID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id/rater_id", orderID.String()+"/"+raterID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
