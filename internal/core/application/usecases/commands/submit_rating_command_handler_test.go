package commands_test

import (
	"testing"
	"time"

	"hatid/internal/core/application/usecases/commands"
	"hatid/internal/core/domain/model/account"
	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/core/domain/model/rating"
	"hatid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredRider(t *testing.T, id kernel.UUID) *account.User {
	t.Helper()
	phone, err := kernel.NewPhoneNumber("09171234567")
	require.NoError(t, err)
	user, err := account.NewUser(id, "Jun Reyes", phone, account.UserTypeRider)
	require.NoError(t, err)
	return user
}

func TestSubmitRatingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Delivered)
	rateeID := kernel.NewUUID()
	ratee := newStoredRider(t, rateeID)
	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), stored.ID(), stored.CustomerID(), rateeID,
		mustScore(t, 5), "fast and polite")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockRatingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("GetByOrderAndRater", mock.Anything, stored.ID(), stored.CustomerID()).
			Return(nil, errs.NewObjectNotFoundError("rating", stored.ID())).Once(),
		ratingRepo.On("Add", mock.Anything, mock.AnythingOfType("*rating.Rating")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, rateeID).Return(ratee, nil).Once(),
		userRepo.On("Update", mock.Anything, ratee).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.InDelta(t, 5.0, ratee.Rating(), 1e-9)
	assert.Equal(t, int64(1), ratee.TotalRatings())
	ratingRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitRatingCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Completed)
	rateeID := kernel.NewUUID()
	existing, err := rating.NewRating(
		kernel.NewUUID(), stored.ID(), stored.CustomerID(), rateeID,
		mustScore(t, 4), "", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), stored.ID(), stored.CustomerID(), rateeID,
		mustScore(t, 1), "changed my mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("GetByOrderAndRater", mock.Anything, stored.ID(), stored.CustomerID()).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicateRating)
	var duplicateErr *errs.DuplicateRatingError
	require.ErrorAs(t, err, &duplicateErr)
	assert.Equal(t, stored.ID().String(), duplicateErr.OrderID)
	ratingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitRatingCommandHandler_Handle_OrderNotSettled(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.InTransit)
	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), stored.ID(), stored.CustomerID(), kernel.NewUUID(),
		mustScore(t, 5), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockRatingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPrecursorNotMet)
}
