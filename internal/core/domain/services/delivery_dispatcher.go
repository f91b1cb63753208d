package services

import (
	"errors"
	"fmt"

	"hatid/internal/core/domain/model/account"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/pkg/errs"
)

// ErrRiderNotFound is returned when no suitable rider is available for order
// dispatch. This occurs when either no riders are provided or none of the
// provided riders is available, verified, online, and offering the order's
// service type.
var ErrRiderNotFound = errors.New("rider not found")

// Candidate pairs a rider's profile with the rider's user record so the
// dispatcher can weigh reputation alongside availability.
type Candidate struct {
	Profile *account.RiderProfile
	User    *account.User
}

// DeliveryDispatcher is a domain service responsible for selecting the best
// rider for a confirmed order.
//
// Business rules:
//   - Orders must be valid and in Confirmed status before dispatch
//   - Riders must be available, which implies online and verified
//   - The rider's offered service type must match the order's
//   - Selection prioritizes the highest rider rating; ties go to the first
//     candidate in the provided slice
//
// The dispatcher only chooses; creating the Delivery and moving the order
// forward is the caller's transaction.
type DeliveryDispatcher struct{}

// NewDeliveryDispatcher creates a new DeliveryDispatcher instance.
func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// Dispatch selects the best rider for the given order.
//
// Returns ErrRiderNotFound when no candidate is eligible, or a validation
// error when the order or a candidate is malformed.
func (d DeliveryDispatcher) Dispatch(o *order.Order, candidates []Candidate) (Candidate, error) {
	if err := o.Validate(); err != nil {
		return Candidate{}, err
	}

	if o.Status() != order.Confirmed {
		return Candidate{}, errs.NewPrecursorNotMetErrorWithCause(
			"order", "order must be confirmed before dispatch",
			fmt.Errorf("order is %s", o.Status()),
		)
	}

	return d.findBestRider(o, candidates)
}

func (d DeliveryDispatcher) findBestRider(o *order.Order, candidates []Candidate) (Candidate, error) {
	var (
		best      Candidate
		bestFound bool
		bestScore = -1.0
	)

	for _, candidate := range candidates {
		if err := candidate.Profile.Validate(); err != nil {
			return Candidate{}, err
		}
		if err := candidate.User.Validate(); err != nil {
			return Candidate{}, err
		}

		if !d.isEligible(o, candidate) {
			continue
		}

		if score := candidate.User.Rating(); score > bestScore {
			bestScore = score
			best = candidate
			bestFound = true
		}
	}

	if !bestFound {
		return Candidate{}, ErrRiderNotFound
	}

	return best, nil
}

func (d DeliveryDispatcher) isEligible(o *order.Order, candidate Candidate) bool {
	return candidate.Profile.IsAvailable() &&
		candidate.User.IsRider() &&
		candidate.Profile.ServiceType() == o.ServiceType()
}
