// Package ratingrepo provides data transfer objects and mapping functions for
// rating persistence. Ratings are immutable records; the repository exposes no
// update path.
package ratingrepo

import (
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting rating records.
// The unique index on (order_id, rater_id) backs the one-rating-per-pair rule
// even under concurrent submissions.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rater"`
	RaterID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rater"`
	RateeID   uuid.UUID `gorm:"type:uuid;index"`
	Score     int
	Comment   string
	CreatedAt time.Time
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "ratings"
}

// fromDomain converts a rating record to its database representation.
func fromDomain(rating *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:        rating.ID().Bytes(),
		OrderID:   rating.OrderID().Bytes(),
		RaterID:   rating.RaterID().Bytes(),
		RateeID:   rating.RateeID().Bytes(),
		Score:     rating.Score().Value(),
		Comment:   rating.Comment(),
		CreatedAt: rating.CreatedAt(),
	}
}

// toDomain converts a database DTO to a rating record.
func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	raterID, err := kernel.UUIDFromBytes(dto.RaterID[:])
	if err != nil {
		return nil, err
	}

	rateeID, err := kernel.UUIDFromBytes(dto.RateeID[:])
	if err != nil {
		return nil, err
	}

	score, err := kernel.NewScore(dto.Score)
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(id, orderID, raterID, rateeID, score, dto.Comment, dto.CreatedAt)
}
