package queries

import (
	"context"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Cancelled and completed orders are excluded; results are newest first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve one page of active orders.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			service_type,
			status,
			total_amount,
			street,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, order.Completed.String(), order.Cancelled.String(),
		query.PageSize().Value(), query.Page().Offset(query.PageSize())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			customerID  uuid.UUID
			serviceType string
			status      string
			totalAmount int64
			street      string
			createdAt   time.Time
		)

		if err = rows.Scan(
			&id, &customerID, &serviceType, &status, &totalAmount, &street, &createdAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:          orderID,
			CustomerID:  custID,
			ServiceType: serviceType,
			Status:      status,
			TotalAmount: totalAmount,
			Street:      street,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
