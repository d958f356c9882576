package commands

import (
	"context"

	"ruralcart/internal/core/domain/model/driver"
)

// DeclareAvailabilityCommandHandler publishes a driver's delivery window.
type DeclareAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeclareAvailabilityCommandHandler creates a handler for availability
// declarations.
func NewDeclareAvailabilityCommandHandler(uowFactory DriverUoWFactory) DeclareAvailabilityCommandHandler {
	return DeclareAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the declaration and returns the identifier assigned by the
// store. The declaring driver must exist.
func (h *DeclareAvailabilityCommandHandler) Handle(ctx context.Context, cmd DeclareAvailabilityCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	window, err := driver.NewAvailability(cmd.DriverID(), cmd.Date(), cmd.StartTime(), cmd.Locations())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return 0, err
	}

	if err = uow.DriverRepository().AddAvailability(ctx, window); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return window.ID(), nil
}
