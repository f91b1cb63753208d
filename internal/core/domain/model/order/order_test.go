package order_test

import (
	"testing"
	"time"

	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, centavos int64) kernel.Money {
	t.Helper()
	amount, err := kernel.NewMoney(centavos)
	require.NoError(t, err)
	return amount
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.ServiceTypeDelivery,
		mustMoney(t, 1500),
		mustMoney(t, 6500),
		"123 Mabini St",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in pending status", func(t *testing.T) {
		now := time.Now()

		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ServiceTypePlumbing,
			mustMoney(t, 1500),
			mustMoney(t, 1500),
			"44 Rizal Ave",
			now,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, kernel.ServiceTypePlumbing, o.ServiceType())
		assert.Equal(t, "44 Rizal Ave", o.Street())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Empty(t, o.PopEvents())
	})

	t.Run("should reject zero-value identifiers", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{},
			kernel.NewUUID(),
			kernel.ServiceTypeDelivery,
			mustMoney(t, 0),
			mustMoney(t, 0),
			"123 Mabini St",
			time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid service type", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ServiceTypeUnknown,
			mustMoney(t, 0),
			mustMoney(t, 0),
			"123 Mabini St",
			time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject empty street", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ServiceTypeDelivery,
			mustMoney(t, 0),
			mustMoney(t, 0),
			"",
			time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject total below service fee", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ServiceTypeDelivery,
			mustMoney(t, 6500),
			mustMoney(t, 1500),
			"123 Mabini St",
			time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvariantViolated)
	})

	t.Run("total equal to service fee is allowed", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ServiceTypeAircon,
			mustMoney(t, 1500),
			mustMoney(t, 1500),
			"123 Mabini St",
			time.Now(),
		)

		require.NoError(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore with arbitrary valid status", func(t *testing.T) {
		created := time.Now().Add(-time.Hour)
		updated := time.Now()

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ServiceTypeDelivery,
			mustMoney(t, 1500),
			mustMoney(t, 6500),
			"123 Mabini St",
			order.InTransit,
			created,
			updated,
		)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.UpdatedAt())
		assert.Empty(t, o.PopEvents())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ServiceTypeDelivery,
			mustMoney(t, 0),
			mustMoney(t, 0),
			"123 Mabini St",
			order.Unknown,
			time.Now(),
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("full canonical walk succeeds and records one event per step", func(t *testing.T) {
		o := newTestOrder(t)
		sequence := []order.Status{
			order.Confirmed,
			order.Preparing,
			order.Picked,
			order.InTransit,
			order.Delivered,
			order.Completed,
		}

		for _, target := range sequence {
			now := time.Now()
			require.NoError(t, o.TransitionTo(target, now))
			assert.Equal(t, target, o.Status())
			assert.Equal(t, now, o.UpdatedAt())
		}

		events := o.PopEvents()
		require.Len(t, events, len(sequence))
		assert.Equal(t, "pending", events[0].OldStatus)
		assert.Equal(t, "confirmed", events[0].NewStatus)
		assert.Equal(t, "completed", events[len(events)-1].NewStatus)
		for _, event := range events {
			assert.Equal(t, "order", event.EntityKind)
			assert.True(t, event.EntityID.IsEqual(o.ID()))
		}

		assert.Empty(t, o.PopEvents(), "events are consumed once")
	})

	t.Run("rejected transition leaves order unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		err := o.TransitionTo(order.Delivered, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
		assert.Empty(t, o.PopEvents())
	})

	t.Run("delivered retry is idempotent with no double side effects", func(t *testing.T) {
		o := newTestOrder(t)
		for _, target := range []order.Status{order.Confirmed, order.Preparing, order.Picked, order.InTransit, order.Delivered} {
			require.NoError(t, o.TransitionTo(target, time.Now()))
		}
		deliveredAt := o.UpdatedAt()
		firstEvents := o.PopEvents()
		require.Len(t, firstEvents, 5)

		err := o.TransitionTo(order.Delivered, time.Now().Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, deliveredAt, o.UpdatedAt(), "no-op retry must not touch updated_at")
		assert.Empty(t, o.PopEvents(), "no-op retry must not emit an event")
	})

	t.Run("transition never alters identity or pricing", func(t *testing.T) {
		o := newTestOrder(t)
		id, customer := o.ID(), o.CustomerID()
		serviceType, fee, total := o.ServiceType(), o.ServiceFee(), o.TotalAmount()

		require.NoError(t, o.TransitionTo(order.Confirmed, time.Now()))

		assert.True(t, id.IsEqual(o.ID()))
		assert.True(t, customer.IsEqual(o.CustomerID()))
		assert.Equal(t, serviceType, o.ServiceType())
		assert.True(t, fee.IsEqual(o.ServiceFee()))
		assert.True(t, total.IsEqual(o.TotalAmount()))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancel from preparing succeeds, further transitions fail", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Confirmed, time.Now()))
		require.NoError(t, o.TransitionTo(order.Preparing, time.Now()))

		require.NoError(t, o.Cancel(time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.IsTerminal())

		err := o.TransitionTo(order.Confirmed, time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel from completed fails", func(t *testing.T) {
		o := newTestOrder(t)
		for _, target := range []order.Status{
			order.Confirmed, order.Preparing, order.Picked,
			order.InTransit, order.Delivered, order.Completed,
		} {
			require.NoError(t, o.TransitionTo(target, time.Now()))
		}

		err := o.Cancel(time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
	})
}
