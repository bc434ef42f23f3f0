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

func TestAttachConditionEvidenceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	require.NoError(t, aggregate.ConfirmPayment("TXN-1", time.Now().UTC()))

	cmd, err := commands.NewAttachConditionEvidenceCommand(
		aggregate.ID(), []string{"https://cdn.example.com/box-1.jpg"}, "https://cdn.example.com/packing.mp4")
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

	h := commands.NewAttachConditionEvidenceCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, aggregate.Condition().SellerPhotos(), 1)
	assert.Equal(t, "https://cdn.example.com/packing.mp4", aggregate.Condition().SellerVideoURL())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachConditionEvidenceCommandHandler_Handle_AfterPickup(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	now := time.Now().UTC()
	require.NoError(t, aggregate.ConfirmPayment("TXN-1", now))
	require.NoError(t, aggregate.RecordMilestone(order.Preparing, now))
	require.NoError(t, aggregate.RecordMilestone(order.ReadyForPickup, now))
	require.NoError(t, aggregate.AttachSellerEvidence([]string{"https://cdn.example.com/box-1.jpg"}, "", now))
	require.NoError(t, aggregate.ConfirmLogisticsReceipt("sealed", now))
	require.NoError(t, aggregate.RecordMilestone(order.PickedUp, now))

	cmd, err := commands.NewAttachConditionEvidenceCommand(
		aggregate.ID(), []string{"https://cdn.example.com/box-2.jpg"}, "")
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

	h := commands.NewAttachConditionEvidenceCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Len(t, aggregate.Condition().SellerPhotos(), 1)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmLogisticsReceiptCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	now := time.Now().UTC()
	require.NoError(t, aggregate.ConfirmPayment("TXN-1", now))
	require.NoError(t, aggregate.RecordMilestone(order.Preparing, now))
	require.NoError(t, aggregate.RecordMilestone(order.ReadyForPickup, now))
	require.NoError(t, aggregate.AttachSellerEvidence([]string{"https://cdn.example.com/box-1.jpg"}, "", now))

	cmd, err := commands.NewConfirmLogisticsReceiptCommand(aggregate.ID(), "package intact, matches photos")
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

	h := commands.NewConfirmLogisticsReceiptCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.Condition().IsConfirmedByLogistics())
	assert.Equal(t, "package intact, matches photos", aggregate.Condition().LogisticsNotes())

	require.NoError(t, aggregate.RecordMilestone(order.PickedUp, now.Add(time.Minute)))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
