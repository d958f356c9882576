package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ruralcart/internal/core/domain/model/custody"
	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/core/ports"
	"ruralcart/internal/pkg/errs"
)

// CompleteOrderCommandHandler closes out a delivery.
//
// The order moves to its service's terminal status (Completed for necessities,
// Delivered for agricultural produce) and a closing record is appended to the
// custody ledger. Only the driver holding the active claim may complete; a
// repeated completion fails the status guard and surfaces as a conflict.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	now        func() time.Time
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the completion command. After the commit the buyer receives
// a best-effort summary of the delivered items.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	claim, err := uow.CustodyRepository().GetActiveForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if claim.DriverID() != cmd.DriverID() {
		return errs.NewConflictError("driver does not hold this order")
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	record, err := custody.NewRecord(
		cmd.DriverID(),
		aggregate.ID(),
		custody.ActionCompleted,
		aggregate.Service(),
		h.now(),
		claim.Previous(),
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

	// Post-commit, best-effort. A failed send never unwinds the completion.
	text := fmt.Sprintf("Your order #%d is %s: %s. Total %.2f.",
		aggregate.ID(), aggregate.Status(), itemSummary(aggregate), aggregate.TotalPrice())
	if !h.notifier.SendMessageToUser(ctx, aggregate.Buyer().ID, text) {
		slog.Warn("buyer notification failed",
			"order_id", aggregate.ID(),
			"buyer_id", aggregate.Buyer().ID)
	}

	return nil
}

func itemSummary(aggregate *order.Order) string {
	parts := make([]string, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity(), item.Name()))
	}
	return strings.Join(parts, ", ")
}
