package commands_test

import (
	"testing"
	"time"

	"ruralcart/internal/core/application/usecases/commands"
	"ruralcart/internal/core/domain/model/custody"
	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCompleteOrderCommand(t *testing.T, orderID, driverID int64, service order.Service) commands.CompleteOrderCommand {
	t.Helper()
	cmd, err := commands.NewCompleteOrderCommand(orderID, driverID, service)
	require.NoError(t, err)
	return cmd
}

func testAcceptedProduceOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	item, err := order.NewItem("mango-1kg", "Mango 1kg", 80, 3, "", "Orchard 4", "Market stall 2", "fruit")
	require.NoError(t, err)

	o, err := order.NewOrder(
		order.AgriculturalProduct,
		testBuyer(),
		nil,
		"Ban Nong Khai",
		true,
		"",
		[]order.Item{item},
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	require.NoError(t, o.Accept())
	return o
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCompleteOrderCommand(t, 42, 7, order.Necessities)

	testOrder := testAcceptedOrder(t, 42)
	claim := testActiveClaim(t, 1, 7, 42)

	orderRepo := new(MockOrderRepository)
	custodyRepo := new(MockCustodyRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(42)).Return(testOrder, nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("GetActiveForUpdate", ctx, int64(42)).Return(claim, nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("Append", ctx, mock.AnythingOfType("*custody.Record")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendMessageToUser", ctx, int64(21), mock.AnythingOfType("string")).Return(true).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())

	appended := custodyRepo.Calls[1].Arguments[1].(*custody.Record)
	assert.Equal(t, custody.ActionCompleted, appended.Action())
	assert.Equal(t, int64(7), appended.DriverID())

	orderRepo.AssertExpectations(t)
	custodyRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_ProduceOrderIsDelivered(t *testing.T) {
	ctx := t.Context()
	cmd := newCompleteOrderCommand(t, 43, 7, order.AgriculturalProduct)

	testOrder := testAcceptedProduceOrder(t, 43)
	claim, err := custody.RestoreRecord(
		2, 7, 43,
		custody.ActionAccepted, order.AgriculturalProduct,
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	custodyRepo := new(MockCustodyRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(43)).Return(testOrder, nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("GetActiveForUpdate", ctx, int64(43)).Return(claim, nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("Append", ctx, mock.AnythingOfType("*custody.Record")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendMessageToUser", ctx, int64(21), mock.AnythingOfType("string")).Return(true).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
}

func TestCompleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	notifier := new(MockNotifier)
	handler := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCompleteOrderCommandHandler_Handle_NotCurrentHolder(t *testing.T) {
	ctx := t.Context()
	cmd := newCompleteOrderCommand(t, 42, 5, order.Necessities)

	testOrder := testAcceptedOrder(t, 42)
	claim := testActiveClaim(t, 1, 7, 42) // held by driver 7, not 5

	orderRepo := new(MockOrderRepository)
	custodyRepo := new(MockCustodyRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(42)).Return(testOrder, nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("GetActiveForUpdate", ctx, int64(42)).Return(claim, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.Accepted, testOrder.Status())
	notifier.AssertNotCalled(t, "SendMessageToUser")
}

func TestCompleteOrderCommandHandler_Handle_ServiceMismatch(t *testing.T) {
	ctx := t.Context()
	cmd := newCompleteOrderCommand(t, 42, 7, order.AgriculturalProduct)

	testOrder := testAcceptedOrder(t, 42)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(42)).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Accepted, testOrder.Status())
	notifier.AssertNotCalled(t, "SendMessageToUser")
}

func TestCompleteOrderCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	cmd := newCompleteOrderCommand(t, 42, 7, order.Necessities)

	testOrder := testAcceptedOrder(t, 42)
	require.NoError(t, testOrder.Complete())
	claim := testActiveClaim(t, 1, 7, 42)

	orderRepo := new(MockOrderRepository)
	custodyRepo := new(MockCustodyRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(42)).Return(testOrder, nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("GetActiveForUpdate", ctx, int64(42)).Return(claim, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	notifier.AssertNotCalled(t, "SendMessageToUser")
}
