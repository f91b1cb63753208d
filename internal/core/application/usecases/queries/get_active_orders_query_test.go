package queries_test

import (
	"testing"

	"hatid/internal/core/application/usecases/queries"
	"hatid/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_ValidInput(t *testing.T) {
	page, err := kernel.NewPage(2)
	require.NoError(t, err)
	size, err := kernel.NewPageSize(20)
	require.NoError(t, err)

	query, err := queries.NewGetActiveOrdersQuery(page, size)
	require.NoError(t, err)
	assert.Equal(t, 2, query.Page().Value())
	assert.Equal(t, 20, query.PageSize().Value())
	assert.Equal(t, 20, query.Page().Offset(query.PageSize()))
}

func TestNewGetActiveOrdersQuery_ZeroValues(t *testing.T) {
	page, err := kernel.NewPage(1)
	require.NoError(t, err)
	size, err := kernel.NewPageSize(20)
	require.NoError(t, err)

	_, err = queries.NewGetActiveOrdersQuery(kernel.Page{}, size)
	require.Error(t, err)

	_, err = queries.NewGetActiveOrdersQuery(page, kernel.PageSize{})
	require.Error(t, err)
}

func TestGetActiveOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.GetActiveOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetAvailableRidersQuery(t *testing.T) {
	query, err := queries.NewGetAvailableRidersQuery(kernel.ServiceTypeDelivery)
	require.NoError(t, err)
	assert.Equal(t, kernel.ServiceTypeDelivery, query.ServiceType())

	_, err = queries.NewGetAvailableRidersQuery(kernel.ServiceTypeUnknown)
	require.Error(t, err)
}
