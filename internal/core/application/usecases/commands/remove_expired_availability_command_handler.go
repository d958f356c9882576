package commands

import (
	"context"
)

// RemoveExpiredAvailabilityCommandHandler sweeps stale delivery windows so the
// availability board only shows days drivers can still serve.
type RemoveExpiredAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRemoveExpiredAvailabilityCommandHandler creates a handler for the
// availability sweep.
func NewRemoveExpiredAvailabilityCommandHandler(uowFactory DriverUoWFactory) RemoveExpiredAvailabilityCommandHandler {
	return RemoveExpiredAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and reports how many windows were removed.
func (h *RemoveExpiredAvailabilityCommandHandler) Handle(ctx context.Context, cmd RemoveExpiredAvailabilityCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.DriverRepository().RemoveExpiredAvailability(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
