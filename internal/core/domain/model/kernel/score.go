package kernel

import (
	"hatid/internal/pkg/errs"
)

const (
	// MinScore is the lowest rating a user can give.
	MinScore = 1
	// MaxScore is the highest rating a user can give.
	MaxScore = 5
)

// ErrScoreIsNotConstructed indicates a Score zero value that was not created
// via NewScore.
var ErrScoreIsNotConstructed = errs.NewValueIsRequiredError("score must be created via NewScore")

// Score is a rating value given by one user to another for a single order.
// Scores are whole numbers between MinScore and MaxScore inclusive; fractions
// only appear in the derived running average on a user profile.
type Score struct {
	value int
}

// NewScore creates a Score, rejecting values outside [MinScore, MaxScore].
func NewScore(value int) (Score, error) {
	if value < MinScore || value > MaxScore {
		return Score{}, errs.NewValueIsOutOfRangeError("score", value, MinScore, MaxScore)
	}
	return Score{value: value}, nil
}

// IsValidScore reports whether value is a legal rating score.
func IsValidScore(value int) bool {
	return value >= MinScore && value <= MaxScore
}

// Value returns the score as an int.
func (s Score) Value() int {
	return s.value
}

// Validate returns ErrScoreIsNotConstructed for zero-value scores.
func (s Score) Validate() error {
	if s.value == 0 {
		return ErrScoreIsNotConstructed
	}
	return nil
}
