package commands

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents one side's rating of the other on an order.
// A (order, rater) pair rates at most once; a second submission fails with a
// DuplicateRatingError and leaves the first value untouched.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID kernel.UUID
	orderID  kernel.UUID
	raterID  kernel.UUID
	rateeID  kernel.UUID
	score    kernel.Score
	comment  string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to submit a rating.
// The comment is optional; when present it obeys the message length rule.
func NewSubmitRatingCommand(
	ratingID kernel.UUID,
	orderID kernel.UUID,
	raterID kernel.UUID,
	rateeID kernel.UUID,
	score kernel.Score,
	comment string,
) (SubmitRatingCommand, error) {
	command := SubmitRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(ratingID, orderID, raterID, rateeID),
		command.setScore(score),
		command.setComment(comment),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// RatingID returns the identifier for the new rating record.
func (c SubmitRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

// OrderID returns the rated order.
func (c SubmitRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RaterID returns the user giving the rating.
func (c SubmitRatingCommand) RaterID() kernel.UUID {
	return c.raterID
}

// RateeID returns the user receiving the rating.
func (c SubmitRatingCommand) RateeID() kernel.UUID {
	return c.rateeID
}

// Score returns the given score.
func (c SubmitRatingCommand) Score() kernel.Score {
	return c.score
}

// Comment returns the optional free-text comment.
func (c SubmitRatingCommand) Comment() string {
	return c.comment
}

func (c *SubmitRatingCommand) setIDs(ratingID, orderID, raterID, rateeID kernel.UUID) error {
	if err := errors.Join(
		ratingID.Validate(),
		orderID.Validate(),
		raterID.Validate(),
		rateeID.Validate(),
	); err != nil {
		return err
	}

	c.ratingID = ratingID
	c.orderID = orderID
	c.raterID = raterID
	c.rateeID = rateeID
	return nil
}

func (c *SubmitRatingCommand) setScore(score kernel.Score) error {
	if err := score.Validate(); err != nil {
		return err
	}

	c.score = score
	return nil
}

func (c *SubmitRatingCommand) setComment(comment string) error {
	if comment == "" {
		return nil
	}
	if err := kernel.ValidateMessageBody(comment); err != nil {
		return err
	}

	c.comment = comment
	return nil
}
