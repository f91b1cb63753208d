// Package rating contains the Rating record written once per (order, rater)
// pair. Uniqueness is enforced at submission time by the command handler and
// backed by a unique index in storage; the record itself is immutable.
package rating

import (
	"errors"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

var (
	// ErrRatingIsNotConstructed is returned when a Rating instance was not
	// created through the NewRating or RestoreRating factory functions.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating")

	// ErrRaterIsRatee is returned when a user attempts to rate themselves.
	ErrRaterIsRatee = errs.NewInvariantViolatedError(
		"rating", "ratee_id", "rater and ratee must be different users")
)

// Rating is one side's score for the other on a completed order. A customer
// rates the rider and vice versa, each at most once per order.
type Rating struct {
	id        kernel.UUID
	orderID   kernel.UUID
	raterID   kernel.UUID
	rateeID   kernel.UUID
	score     kernel.Score
	comment   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRating creates a Rating. The comment is optional; when present it obeys
// the message body length rule.
func NewRating(
	id kernel.UUID,
	orderID kernel.UUID,
	raterID kernel.UUID,
	rateeID kernel.UUID,
	score kernel.Score,
	comment string,
	now time.Time,
) (*Rating, error) {
	rating := &Rating{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rating.setID(id),
		rating.setParticipants(orderID, raterID, rateeID),
		rating.setScore(score),
		rating.setComment(comment),
	); err != nil {
		return nil, err
	}

	return rating, nil
}

// RestoreRating reconstructs a Rating from persistent storage.
func RestoreRating(
	id kernel.UUID,
	orderID kernel.UUID,
	raterID kernel.UUID,
	rateeID kernel.UUID,
	score kernel.Score,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	return NewRating(id, orderID, raterID, rateeID, score, comment, createdAt)
}

// Validate ensures the Rating was created through a factory function.
func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order this rating belongs to.
func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

// RaterID returns the user who gave the rating.
func (r *Rating) RaterID() kernel.UUID {
	return r.raterID
}

// RateeID returns the user who received the rating.
func (r *Rating) RateeID() kernel.UUID {
	return r.rateeID
}

// Score returns the given score.
func (r *Rating) Score() kernel.Score {
	return r.score
}

// Comment returns the optional free-text comment, empty when none was given.
func (r *Rating) Comment() string {
	return r.comment
}

// CreatedAt returns when the rating was submitted.
func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setParticipants(orderID, raterID, rateeID kernel.UUID) error {
	if err := errors.Join(
		orderID.Validate(),
		raterID.Validate(),
		rateeID.Validate(),
	); err != nil {
		return err
	}

	if raterID.IsEqual(rateeID) {
		return ErrRaterIsRatee
	}

	r.orderID = orderID
	r.raterID = raterID
	r.rateeID = rateeID
	return nil
}

func (r *Rating) setScore(score kernel.Score) error {
	if err := score.Validate(); err != nil {
		return err
	}
	r.score = score
	return nil
}

func (r *Rating) setComment(comment string) error {
	if comment == "" {
		return nil
	}
	if err := kernel.ValidateMessageBody(comment); err != nil {
		return err
	}
	r.comment = comment
	return nil
}
