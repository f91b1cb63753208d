package errs_test

import (
	"errors"
	"testing"

	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "0b5c9e2a")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "0b5c9e2a", err.ID)
		assert.Equal(t, "object not found: 0b5c9e2a", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("riderId", "0b5c9e2a", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "riderId")
		assert.Contains(t, err.Error(), "cause: record not found")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("serviceType")

		assert.Equal(t, "value is invalid: serviceType", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unknown value plumbing2")
		err := errs.NewValueIsInvalidErrorWithCause("serviceType", cause)

		assert.Equal(t, "value is invalid: serviceType (cause: unknown value plumbing2)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("reports bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("score", 6, 1, 5)

		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, "value is invalid: 6 is score, min value is 1, max value is 5", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("strips line breaks from interpolated values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("comment", "too\nlong", 0, 500)

		assert.Contains(t, err.Error(), "too long")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "value is required: customerId", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("field missing from payload")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, cause, err.Cause)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("stale aggregate version")
	err := errs.NewVersionIsInvalidError("order", cause)

	assert.Equal(t, "version is invalid: order (cause: stale aggregate version)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}
