package commands_test

import (
	"testing"
	"time"

	"ruralcart/internal/core/application/usecases/commands"
	"ruralcart/internal/core/domain/model/driver"
	"ruralcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeclareAvailabilityCommand(t *testing.T) commands.DeclareAvailabilityCommand {
	t.Helper()
	cmd, err := commands.NewDeclareAvailabilityCommand(
		7,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		"08:30",
		[]string{"Ban Nong Khai", "Ban Tha Bo"},
	)
	require.NoError(t, err)
	return cmd
}

func TestDeclareAvailabilityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newDeclareAvailabilityCommand(t)

	declarer := testDriver(t, 7, 70, "Somchai", "0899999999")
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, int64(7)).Return(declarer, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("AddAvailability", ctx, mock.AnythingOfType("*driver.Availability")).
			Run(func(args mock.Arguments) {
				window := args.Get(1).(*driver.Availability)
				require.NoError(t, window.AssignID(11))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeclareAvailabilityCommandHandler(factory)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeclareAvailabilityCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newDeclareAvailabilityCommand(t)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, int64(7)).
			Return(nil, errs.NewObjectNotFoundError("driver", int64(7))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeclareAvailabilityCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeclareAvailabilityCommandHandler_Handle_BadStartTime(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeclareAvailabilityCommand(
		7,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		"half past eight",
		[]string{"Ban Nong Khai"},
	)
	require.NoError(t, err)

	factory := new(MockDriverUoWFactory)
	handler := commands.NewDeclareAvailabilityCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
