package kernel_test

import (
	"fmt"
	"testing"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("should accept pages from 1 upward", func(t *testing.T) {
		for _, value := range []int{1, 2, 100, 100000} {
			t.Run(fmt.Sprintf("should accept page %d", value), func(t *testing.T) {
				page, err := kernel.NewPage(value)

				require.NoError(t, err)
				assert.Equal(t, value, page.Value())
				assert.True(t, kernel.IsValidPage(value))
			})
		}
	})

	t.Run("should reject pages below 1", func(t *testing.T) {
		for _, value := range []int{0, -1, -100} {
			t.Run(fmt.Sprintf("should reject page %d", value), func(t *testing.T) {
				_, err := kernel.NewPage(value)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.False(t, kernel.IsValidPage(value))
			})
		}
	})
}

func TestNewPageSize(t *testing.T) {
	t.Run("should accept sizes in bounds", func(t *testing.T) {
		for _, value := range []int{1, 20, 100} {
			t.Run(fmt.Sprintf("should accept size %d", value), func(t *testing.T) {
				size, err := kernel.NewPageSize(value)

				require.NoError(t, err)
				assert.Equal(t, value, size.Value())
				assert.True(t, kernel.IsValidPageSize(value))
			})
		}
	})

	t.Run("should reject sizes out of bounds", func(t *testing.T) {
		for _, value := range []int{0, -1, 101, 1000} {
			t.Run(fmt.Sprintf("should reject size %d", value), func(t *testing.T) {
				_, err := kernel.NewPageSize(value)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
				assert.False(t, kernel.IsValidPageSize(value))
			})
		}
	})
}

func TestPage_Offset(t *testing.T) {
	t.Run("first page starts at zero", func(t *testing.T) {
		page, err := kernel.NewPage(1)
		require.NoError(t, err)
		size, err := kernel.NewPageSize(20)
		require.NoError(t, err)

		assert.Equal(t, 0, page.Offset(size))
	})

	t.Run("later pages advance by page size", func(t *testing.T) {
		page, err := kernel.NewPage(3)
		require.NoError(t, err)
		size, err := kernel.NewPageSize(25)
		require.NoError(t, err)

		assert.Equal(t, 50, page.Offset(size))
	})
}
