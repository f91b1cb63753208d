// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence. The progress flags are stored as individual columns
// alongside the status so a cancelled row keeps the frozen combination it had
// at cancellation time.
package deliveryrepo

import (
	"time"

	"hatid/internal/core/domain/model/delivery"
	"hatid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The unique index on OrderID backs the one-delivery-per-order rule. Earnings
// stay NULL until the rider completes the job.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RiderID     uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"index"`
	IsAssigned  bool
	IsAccepted  bool
	IsPickedUp  bool
	IsCompleted bool
	Earnings    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(delivery *delivery.Delivery) DeliveryDTO {
	var earnings *int64
	if amount, ok := delivery.Earnings(); ok {
		raw := amount.Centavos()
		earnings = &raw
	}

	flags := delivery.Flags()
	return DeliveryDTO{
		ID:          delivery.ID().Bytes(),
		OrderID:     delivery.OrderID().Bytes(),
		RiderID:     delivery.RiderID().Bytes(),
		Status:      delivery.Status().String(),
		IsAssigned:  flags.IsAssigned,
		IsAccepted:  flags.IsAccepted,
		IsPickedUp:  flags.IsPickedUp,
		IsCompleted: flags.IsCompleted,
		Earnings:    earnings,
		CreatedAt:   delivery.CreatedAt(),
		UpdatedAt:   delivery.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// RestoreDelivery re-checks that the stored flags match the stored status,
// so a row mangled outside the application fails loudly here.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var earnings *kernel.Money
	if dto.Earnings != nil {
		amount, moneyErr := kernel.NewMoney(*dto.Earnings)
		if moneyErr != nil {
			return nil, moneyErr
		}
		earnings = &amount
	}

	flags := delivery.Flags{
		IsAssigned:  dto.IsAssigned,
		IsAccepted:  dto.IsAccepted,
		IsPickedUp:  dto.IsPickedUp,
		IsCompleted: dto.IsCompleted,
	}

	return delivery.RestoreDelivery(
		id, orderID, riderID,
		status, flags, earnings,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
