package commands

import (
	"context"
)

// RemoveAvailabilityCommandHandler withdraws one published delivery window.
type RemoveAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRemoveAvailabilityCommandHandler creates a handler for availability
// withdrawal.
func NewRemoveAvailabilityCommandHandler(uowFactory DriverUoWFactory) RemoveAvailabilityCommandHandler {
	return RemoveAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
func (h *RemoveAvailabilityCommandHandler) Handle(ctx context.Context, cmd RemoveAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DriverRepository().RemoveAvailability(ctx, cmd.AvailabilityID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
