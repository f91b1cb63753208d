package services

import (
	"fmt"

	"hatid/internal/core/domain/model/delivery"
	"hatid/internal/core/domain/model/kernel"
)

// Violation identifies one broken rule on a candidate entity snapshot.
// The triple is stable and machine-readable; it is what API consumers and
// logs see, so the rule text describes the rule, not the offending value.
type Violation struct {
	Entity string
	Field  string
	Rule   string
}

// String returns the violation in "entity.field: rule" form.
// Implements fmt.Stringer.
func (v Violation) String() string {
	return fmt.Sprintf("%s.%s: %s", v.Entity, v.Field, v.Rule)
}

// OrderSnapshot is the subset of an order record the checker inspects.
// Amounts are in centavos, as stored.
type OrderSnapshot struct {
	ServiceFee  int64
	TotalAmount int64
}

// DeliverySnapshot is the subset of a delivery record the checker inspects.
type DeliverySnapshot struct {
	Status delivery.Status
	Flags  delivery.Flags
}

// RiderProfileSnapshot is the subset of a rider profile record the checker
// inspects.
type RiderProfileSnapshot struct {
	IsAvailable bool
	IsVerified  bool
	IsOnline    bool
}

// RatingSnapshot is the subset of a rating record the checker inspects.
type RatingSnapshot struct {
	Score int
}

// UserSnapshot is the subset of a user record the checker inspects.
type UserSnapshot struct {
	RatingSum  int64
	NumRatings int64
}

// InvariantChecker is a domain service that reports every invariant a
// candidate entity snapshot breaks. It runs synchronously over plain
// records, performs no I/O, and never coerces a snapshot into validity:
// callers get the full list of violations (empty means valid) and decide
// what to do with it.
//
// The aggregates enforce the same rules in their factories; the checker
// exists for the paths that handle raw records before an aggregate is
// built, such as admin imports and pre-persist audits.
type InvariantChecker struct{}

// NewInvariantChecker creates a new InvariantChecker instance.
func NewInvariantChecker() InvariantChecker {
	return InvariantChecker{}
}

// CheckOrder verifies total_amount >= service_fee >= 0.
func (c InvariantChecker) CheckOrder(snapshot OrderSnapshot) []Violation {
	var violations []Violation

	if snapshot.ServiceFee < 0 {
		violations = append(violations, Violation{
			Entity: "order",
			Field:  "service_fee",
			Rule:   "service fee must not be negative",
		})
	}

	if snapshot.TotalAmount < snapshot.ServiceFee {
		violations = append(violations, Violation{
			Entity: "order",
			Field:  "total_amount",
			Rule:   "total amount must be at least the service fee",
		})
	}

	return violations
}

// CheckDelivery verifies the four delivery flags exactly match the
// combination the status derives. A cancelled delivery matches when its
// frozen flags are any combination a non-completed status could have left
// behind.
func (c InvariantChecker) CheckDelivery(snapshot DeliverySnapshot) []Violation {
	var violations []Violation

	if err := snapshot.Status.Validate(); err != nil {
		violations = append(violations, Violation{
			Entity: "delivery",
			Field:  "status",
			Rule:   "status must be a valid delivery status",
		})
		return violations
	}

	if !snapshot.Flags.MatchesStatus(snapshot.Status) {
		violations = append(violations, Violation{
			Entity: "delivery",
			Field:  "flags",
			Rule:   "flags must match the combination derived from status",
		})
	}

	return violations
}

// CheckRiderProfile verifies is_available implies is_online and is_verified.
func (c InvariantChecker) CheckRiderProfile(snapshot RiderProfileSnapshot) []Violation {
	var violations []Violation

	if snapshot.IsAvailable && !snapshot.IsOnline {
		violations = append(violations, Violation{
			Entity: "rider_profile",
			Field:  "is_available",
			Rule:   "available rider must be online",
		})
	}

	if snapshot.IsAvailable && !snapshot.IsVerified {
		violations = append(violations, Violation{
			Entity: "rider_profile",
			Field:  "is_available",
			Rule:   "available rider must be verified",
		})
	}

	return violations
}

// CheckRating verifies the score lies within the allowed range.
func (c InvariantChecker) CheckRating(snapshot RatingSnapshot) []Violation {
	if kernel.IsValidScore(snapshot.Score) {
		return nil
	}

	return []Violation{{
		Entity: "rating",
		Field:  "rating",
		Rule:   fmt.Sprintf("rating must be an integer between %d and %d", kernel.MinScore, kernel.MaxScore),
	}}
}

// CheckUser verifies the running rating state: neutral (zero sum) while the
// user has no ratings, and an average within the score range otherwise.
func (c InvariantChecker) CheckUser(snapshot UserSnapshot) []Violation {
	var violations []Violation

	if snapshot.NumRatings < 0 {
		violations = append(violations, Violation{
			Entity: "user",
			Field:  "num_ratings",
			Rule:   "number of ratings must not be negative",
		})
		return violations
	}

	if snapshot.NumRatings == 0 {
		if snapshot.RatingSum != 0 {
			violations = append(violations, Violation{
				Entity: "user",
				Field:  "rating_sum",
				Rule:   "rating sum must be zero while the user has no ratings",
			})
		}
		return violations
	}

	minSum := snapshot.NumRatings * int64(kernel.MinScore)
	maxSum := snapshot.NumRatings * int64(kernel.MaxScore)
	if snapshot.RatingSum < minSum || snapshot.RatingSum > maxSum {
		violations = append(violations, Violation{
			Entity: "user",
			Field:  "rating_sum",
			Rule: fmt.Sprintf("rating average must stay between %d and %d",
				kernel.MinScore, kernel.MaxScore),
		})
	}

	return violations
}
