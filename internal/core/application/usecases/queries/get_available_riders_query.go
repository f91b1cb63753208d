package queries

import (
	"errors"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/guard"
)

var ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
	"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
)

// GetAvailableRidersQuery retrieves riders currently available for the given
// service type, best rated first.
type GetAvailableRidersQuery struct {
	serviceType kernel.ServiceType

	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates a query for available riders offering
// serviceType.
func NewGetAvailableRidersQuery(serviceType kernel.ServiceType) (GetAvailableRidersQuery, error) {
	if err := serviceType.Validate(); err != nil {
		return GetAvailableRidersQuery{}, err
	}

	return GetAvailableRidersQuery{
		serviceType: serviceType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// ServiceType returns the requested service type.
func (q GetAvailableRidersQuery) ServiceType() kernel.ServiceType {
	return q.serviceType
}

// GetAvailableRidersQueryResponse represents one available rider row.
// Rating is the running average in [1,5], zero while the rider is unrated.
type GetAvailableRidersQueryResponse struct {
	RiderID kernel.UUID
	Name    string
	Rating  float64
}
