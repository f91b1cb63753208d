package queries

import (
	"context"

	"hatid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableRidersQueryHandler retrieves available riders from the database.
// Joins rider profiles with user records so consumers get names and ratings
// in one read.
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for available rider queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle executes the query to retrieve available riders for a service type.
// Unrated riders report a zero rating and sort last.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]GetAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAvailableRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.rider_id,
			u.name,
			CASE WHEN u.num_ratings > 0
				THEN u.rating_sum::float / u.num_ratings
				ELSE 0
			END AS rating
		FROM rider_profiles p
		JOIN users u ON u.id = p.rider_id
		WHERE p.is_available AND p.service_type = ?
		ORDER BY rating DESC, p.rider_id
	`, query.ServiceType().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			name   string
			rating float64
		)

		if err = rows.Scan(&id, &name, &rating); err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		riders = append(riders, GetAvailableRidersQueryResponse{
			RiderID: riderID,
			Name:    name,
			Rating:  rating,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
