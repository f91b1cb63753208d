// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form so reporting queries can filter on it
// without knowing the enum encoding.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	ServiceType string
	ServiceFee  int64
	TotalAmount int64
	Street      string
	Status      string `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:          order.ID().Bytes(),
		CustomerID:  order.CustomerID().Bytes(),
		ServiceType: order.ServiceType().String(),
		ServiceFee:  order.ServiceFee().Centavos(),
		TotalAmount: order.TotalAmount().Centavos(),
		Street:      order.Street(),
		Status:      order.Status().String(),
		CreatedAt:   order.CreatedAt(),
		UpdatedAt:   order.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so stored rows pass
// the same validation as freshly created orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := kernel.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	serviceFee, err := kernel.NewMoney(dto.ServiceFee)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, serviceType,
		serviceFee, totalAmount,
		dto.Street, status,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
