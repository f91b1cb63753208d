package ports

import (
	"context"

	"hatid/internal/core/domain/model/account"
	"hatid/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
}

// RiderProfileRepository defines the persistence contract for rider profiles.
type RiderProfileRepository interface {
	// Add persists a new rider profile to storage.
	Add(ctx context.Context, aggregate *account.RiderProfile) error

	// Update persists changes to an existing rider profile.
	Update(ctx context.Context, aggregate *account.RiderProfile) error

	// Get retrieves the profile extending the given rider user.
	Get(ctx context.Context, riderID kernel.UUID) (*account.RiderProfile, error)

	// GetAllAvailable retrieves profiles of riders currently available for
	// the given service type. Used by dispatch and the available-riders query.
	GetAllAvailable(ctx context.Context, serviceType kernel.ServiceType) ([]*account.RiderProfile, error)
}
