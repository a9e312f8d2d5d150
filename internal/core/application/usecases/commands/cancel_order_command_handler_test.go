package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cancelling := paidOrder(t)
	_, err := cancelling.BeginCancel([]string{"out of stock"}, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(cancelling.ID(), []string{"payment refunded"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cancelling.ID()).Return(cancelling, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, cancelling).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.AnythingOfType("ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	tracking := new(MockTrackingInvalidator)
	tracking.On("Invalidate", ctx, cancelling.TrackingID()).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, tracking)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelling.Status())
	assert.Equal(t, []string{"out of stock", "payment refunded"}, cancelling.FailureMessages())
	repo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	tracking.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	pending := pendingOrder(t)
	cmd, err := commands.NewCancelOrderCommand(pending.ID(), []string{"payment failed"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.AnythingOfType("ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	tracking := new(MockTrackingInvalidator)
	tracking.On("Invalidate", ctx, pending.TrackingID()).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, tracking)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, pending.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	tracking.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	approved := paidOrder(t)
	_, err := approved.Approve(time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(approved.ID(), []string{"too late"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockTrackingInvalidator))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel order in Approved status")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	h := commands.NewCancelOrderCommandHandler(factory, new(MockTrackingInvalidator))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
