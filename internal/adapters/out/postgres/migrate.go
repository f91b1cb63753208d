package postgres

import (
	"hatid/internal/adapters/out/postgres/accountrepo"
	"hatid/internal/adapters/out/postgres/deliveryrepo"
	"hatid/internal/adapters/out/postgres/orderrepo"
	"hatid/internal/adapters/out/postgres/ratingrepo"
	"hatid/internal/adapters/out/postgres/ticketrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persisted aggregate.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&accountrepo.UserDTO{},
		&accountrepo.RiderProfileDTO{},
		&ratingrepo.RatingDTO{},
		&ticketrepo.TicketDTO{},
		&ticketrepo.MessageDTO{},
	)
}
