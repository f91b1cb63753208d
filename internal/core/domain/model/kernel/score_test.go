package kernel_test

import (
	"fmt"
	"testing"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScore(t *testing.T) {
	t.Run("should accept all scores from 1 to 5", func(t *testing.T) {
		for value := kernel.MinScore; value <= kernel.MaxScore; value++ {
			t.Run(fmt.Sprintf("should accept score %d", value), func(t *testing.T) {
				score, err := kernel.NewScore(value)

				require.NoError(t, err)
				assert.Equal(t, value, score.Value())
				require.NoError(t, score.Validate())
				assert.True(t, kernel.IsValidScore(value))
			})
		}
	})

	t.Run("should reject out-of-range scores", func(t *testing.T) {
		for _, value := range []int{0, -1, -5, 6, 100} {
			t.Run(fmt.Sprintf("should reject score %d", value), func(t *testing.T) {
				_, err := kernel.NewScore(value)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
				assert.False(t, kernel.IsValidScore(value))
			})
		}
	})
}

func TestScore_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var score kernel.Score

		err := score.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrScoreIsNotConstructed, err)
	})
}
