package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ruralcart/internal/core/domain/model/custody"
	"ruralcart/internal/core/ports"
	"ruralcart/internal/pkg/errs"
)

// AcceptOrderCommandHandler coordinates a driver's claim on an order.
//
// The order row is read under FOR UPDATE NOWAIT, so of any number of drivers
// racing for the same order exactly one transaction observes Unaccepted and
// commits; the others fail the status guard or the lock acquisition, both of
// which surface as conflicts. After the commit the buyer is notified on a
// best-effort basis.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	now        func() time.Time
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the acceptance command. On success the order is Accepted
// and the custody ledger holds an active claim for the driver.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Service() != cmd.Service() {
		return errs.NewValueIsInvalidErrorWithCause("service",
			fmt.Errorf("order %d belongs to service %s", aggregate.ID(), aggregate.Service()))
	}

	claimant, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.Accept(); err != nil {
		return err
	}

	record, err := custody.NewRecord(
		claimant.ID(),
		aggregate.ID(),
		custody.ActionAccepted,
		aggregate.Service(),
		h.now(),
		aggregate.PreviousDriver(),
	)
	if err != nil {
		return err
	}

	if err = uow.CustodyRepository().Append(ctx, record); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Post-commit, best-effort. A failed send never unwinds the acceptance.
	text := fmt.Sprintf("Your order #%d was accepted by %s (%s).",
		aggregate.ID(), claimant.Name(), claimant.Phone())
	if !h.notifier.SendMessageToUser(ctx, aggregate.Buyer().ID, text) {
		slog.Warn("buyer notification failed",
			"order_id", aggregate.ID(),
			"buyer_id", aggregate.Buyer().ID)
	}

	return nil
}
