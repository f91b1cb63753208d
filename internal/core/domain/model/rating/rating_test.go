package rating_test

import (
	"strings"
	"testing"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/rating"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScore(t *testing.T, value int) kernel.Score {
	t.Helper()
	score, err := kernel.NewScore(value)
	require.NoError(t, err)
	return score
}

func TestNewRating(t *testing.T) {
	t.Run("should create rating with optional comment", func(t *testing.T) {
		now := time.Now()
		r, err := rating.NewRating(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustScore(t, 5), "fast and polite", now)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 5, r.Score().Value())
		assert.Equal(t, "fast and polite", r.Comment())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("comment may be empty", func(t *testing.T) {
		r, err := rating.NewRating(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustScore(t, 3), "", time.Now())

		require.NoError(t, err)
		assert.Empty(t, r.Comment())
	})

	t.Run("should reject self rating", func(t *testing.T) {
		rater := kernel.NewUUID()

		_, err := rating.NewRating(
			kernel.NewUUID(), kernel.NewUUID(), rater, rater,
			mustScore(t, 4), "", time.Now())

		require.ErrorIs(t, err, rating.ErrRaterIsRatee)
	})

	t.Run("should reject zero-value score", func(t *testing.T) {
		_, err := rating.NewRating(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.Score{}, "", time.Now())

		require.Error(t, err)
	})

	t.Run("should reject an overlong comment", func(t *testing.T) {
		_, err := rating.NewRating(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustScore(t, 4), strings.Repeat("a", kernel.MaxMessageLength+1), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		_, err := rating.NewRating(
			kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			mustScore(t, 4), "", time.Now())

		require.Error(t, err)
	})
}
