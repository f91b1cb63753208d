package ports

import (
	"context"

	"hatid/internal/core/domain/model/delivery"
	"hatid/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery owned by the given order.
	// An order owns at most one delivery. Returns an ObjectNotFoundError
	// when no delivery was ever assigned.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
