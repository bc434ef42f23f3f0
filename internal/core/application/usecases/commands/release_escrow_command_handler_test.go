package commands_test

import (
	"testing"
	"time"

	"dragonpath/internal/core/application/usecases/commands"
	"dragonpath/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := newPendingOrder(t)
	now := time.Now().UTC()
	require.NoError(t, aggregate.ConfirmPayment("TXN-1", now))
	require.NoError(t, aggregate.RecordMilestone(order.Preparing, now))
	require.NoError(t, aggregate.RecordMilestone(order.ReadyForPickup, now))
	require.NoError(t, aggregate.ConfirmLogisticsReceipt("ok", now))
	require.NoError(t, aggregate.RecordMilestone(order.PickedUp, now))
	require.NoError(t, aggregate.RecordMilestone(order.InTransit, now))
	require.NoError(t, aggregate.RecordMilestone(order.OutForDelivery, now))
	require.NoError(t, aggregate.RecordMilestone(order.Delivered, now))
	return aggregate
}

func TestReleaseEscrowCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDeliveredOrder(t)
	cmd, err := commands.NewReleaseEscrowCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseEscrowCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	assert.Equal(t, order.PaymentReleasedToSeller, aggregate.Payment().Status())
	assert.NotNil(t, aggregate.Payment().Escrow().SellerReleasedAt())
	assert.NotNil(t, aggregate.Payment().Escrow().LogisticsReleasedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseEscrowCommandHandler_Handle_NotYetDelivered(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewReleaseEscrowCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseEscrowCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderNotYetDelivered)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
