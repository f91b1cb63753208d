package commands_test

import (
	"testing"
	"time"

	"hatid/internal/core/application/usecases/commands"
	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.ServiceTypeDelivery,
		mustMoney(t, 6500), mustMoney(t, 45000), "123 Katipunan Ave", time.Now())
	require.NoError(t, err)

	for aggregate.Status() != status {
		next, err := aggregate.Status().Next()
		require.NoError(t, err)
		require.NoError(t, aggregate.TransitionTo(next, time.Now()))
	}
	aggregate.PopEvents()
	return aggregate
}

func TestProgressOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewProgressOrderCommand(stored.ID(), order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("PublishStatusChanged", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewProgressOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Confirmed, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProgressOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewProgressOrderCommand(stored.ID(), order.Delivered)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProgressOrderCommandHandler(factory, new(MockNotificationPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, order.Pending, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProgressOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewProgressOrderCommand(orderID, order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProgressOrderCommandHandler(factory, new(MockNotificationPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestProgressOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewProgressOrderCommandHandler(new(MockOrderUoWFactory), new(MockNotificationPublisher))
	err := h.Handle(t.Context(), commands.ProgressOrderCommand{})
	require.Error(t, err)
}
