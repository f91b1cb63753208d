// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"
	"hatid/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a page of orders that have not reached a
// terminal status, newest first.
type GetActiveOrdersQuery struct {
	page     kernel.Page
	pageSize kernel.PageSize

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for one page of active orders.
func NewGetActiveOrdersQuery(page kernel.Page, pageSize kernel.PageSize) (GetActiveOrdersQuery, error) {
	if !kernel.IsValidPage(page.Value()) {
		return GetActiveOrdersQuery{}, errs.NewValueIsInvalidError("page must be created via NewPage")
	}
	if !kernel.IsValidPageSize(pageSize.Value()) {
		return GetActiveOrdersQuery{}, errs.NewValueIsInvalidError("page size must be created via NewPageSize")
	}

	return GetActiveOrdersQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Page returns the requested page, starting at 1.
func (q GetActiveOrdersQuery) Page() kernel.Page {
	return q.page
}

// PageSize returns the requested page size.
func (q GetActiveOrdersQuery) PageSize() kernel.PageSize {
	return q.pageSize
}

// GetActiveOrdersQueryResponse represents one active order row.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	ServiceType string
	Status      string
	TotalAmount int64
	Street      string
	CreatedAt   time.Time
}
