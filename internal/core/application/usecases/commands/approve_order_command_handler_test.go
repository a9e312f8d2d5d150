package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	paid := paidOrder(t)
	cmd, err := commands.NewApproveOrderCommand(paid.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, paid.ID()).Return(paid, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, paid).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.AnythingOfType("ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	tracking := new(MockTrackingInvalidator)
	tracking.On("Invalidate", ctx, paid.TrackingID()).Return(nil).Once()

	h := commands.NewApproveOrderCommandHandler(factory, tracking)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, paid.Status())
	repo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	tracking.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	pending := pendingOrder(t)
	cmd, err := commands.NewApproveOrderCommand(pending.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, new(MockTrackingInvalidator))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot approve order in Pending status")
	assert.Equal(t, order.Pending, pending.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApproveOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	h := commands.NewApproveOrderCommandHandler(factory, new(MockTrackingInvalidator))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
