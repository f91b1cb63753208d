package kernel

import (
	"hatid/internal/pkg/errs"
)

const (
	// MinPage is the first page number.
	MinPage = 1
	// MinPageSize is the smallest allowed page size.
	MinPageSize = 1
	// MaxPageSize caps how many records a single page may request.
	MaxPageSize = 100
)

// Page is a 1-based page number for paginated queries.
type Page struct {
	value int
}

// NewPage creates a Page, rejecting values below MinPage.
func NewPage(value int) (Page, error) {
	if value < MinPage {
		return Page{}, errs.NewValueIsInvalidError("page must be 1 or greater")
	}
	return Page{value: value}, nil
}

// IsValidPage reports whether value is a legal page number.
func IsValidPage(value int) bool {
	return value >= MinPage
}

// Value returns the page number.
func (p Page) Value() int {
	return p.value
}

// Offset returns the record offset of the page for the given size.
func (p Page) Offset(size PageSize) int {
	return (p.value - 1) * size.Value()
}

// PageSize is the number of records per page for paginated queries.
type PageSize struct {
	value int
}

// NewPageSize creates a PageSize, rejecting values outside
// [MinPageSize, MaxPageSize].
func NewPageSize(value int) (PageSize, error) {
	if value < MinPageSize || value > MaxPageSize {
		return PageSize{}, errs.NewValueIsOutOfRangeError("page size", value, MinPageSize, MaxPageSize)
	}
	return PageSize{value: value}, nil
}

// IsValidPageSize reports whether value is a legal page size.
func IsValidPageSize(value int) bool {
	return value >= MinPageSize && value <= MaxPageSize
}

// Value returns the page size.
func (s PageSize) Value() int {
	return s.value
}
