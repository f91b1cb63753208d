package ticket_test

import (
	"testing"

	"hatid/internal/core/domain/model/ticket"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("forward moves are allowed, including skips", func(t *testing.T) {
		allowed := []struct {
			from, to ticket.Status
		}{
			{ticket.Open, ticket.InProgress},
			{ticket.Open, ticket.Resolved},
			{ticket.Open, ticket.Closed},
			{ticket.InProgress, ticket.Resolved},
			{ticket.InProgress, ticket.Closed},
			{ticket.Resolved, ticket.Closed},
		}

		for _, tc := range allowed {
			t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
				assert.NoError(t, tc.from.CanTransitionTo(tc.to))
			})
		}
	})

	t.Run("backward moves and self moves are rejected", func(t *testing.T) {
		rejected := []struct {
			from, to ticket.Status
		}{
			{ticket.Open, ticket.Open},
			{ticket.InProgress, ticket.Open},
			{ticket.Resolved, ticket.InProgress},
			{ticket.Resolved, ticket.Resolved},
			{ticket.Closed, ticket.Open},
			{ticket.Closed, ticket.Resolved},
		}

		for _, tc := range rejected {
			t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
				err := tc.from.CanTransitionTo(tc.to)

				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			})
		}
	})

	t.Run("unknown statuses are rejected on either side", func(t *testing.T) {
		require.Error(t, ticket.Unknown.CanTransitionTo(ticket.Closed))
		require.Error(t, ticket.Open.CanTransitionTo(ticket.Unknown))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should move forward", func(t *testing.T) {
		next, err := ticket.Open.TransitionTo(ticket.Resolved)

		require.NoError(t, err)
		assert.Equal(t, ticket.Resolved, next)
	})

	t.Run("should report rejected move details", func(t *testing.T) {
		_, err := ticket.Resolved.TransitionTo(ticket.Open)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "resolved", transitionErr.From)
		assert.Equal(t, "open", transitionErr.To)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, status := range []ticket.Status{
			ticket.Open, ticket.InProgress, ticket.Resolved, ticket.Closed,
		} {
			parsed, err := ticket.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "reopened", "OPEN"} {
			_, err := ticket.StatusFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
