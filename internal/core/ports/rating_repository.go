package ports

import (
	"context"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for rating records.
// Ratings are written once and never updated.
type RatingRepository interface {
	// Add persists a new rating. The storage layer backs the once-per-pair
	// rule with a unique index on (order_id, rater_id).
	Add(ctx context.Context, aggregate *rating.Rating) error

	// GetByOrderAndRater retrieves the rating the given user submitted for
	// the given order. Returns an ObjectNotFoundError when the pair has not
	// rated yet.
	GetByOrderAndRater(ctx context.Context, orderID, raterID kernel.UUID) (*rating.Rating, error)
}
