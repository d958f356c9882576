package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ruralcart/internal/core/ports"
)

// TransferOrderCommandHandler coordinates a custody hand-over between two
// drivers.
//
// Both the order row and the active ledger claim are locked, in that fixed
// order, for the duration of the transaction. The active claim is rewritten in
// place with the incoming driver, stamping the outgoing driver into the
// previous-custodian snapshot; the order mirrors that snapshot. Lifecycle
// status does not change: the order stays Accepted under its new custodian.
type TransferOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewTransferOrderCommandHandler creates a handler for custody transfers.
func NewTransferOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) TransferOrderCommandHandler {
	return TransferOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transfer command. After success the receiving driver
// holds the active claim and is notified on a best-effort basis.
func (h *TransferOrderCommandHandler) Handle(ctx context.Context, cmd TransferOrderCommand) error {
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

	incoming, err := uow.DriverRepository().GetByPhone(ctx, cmd.ToPhone())
	if err != nil {
		return err
	}

	outgoing, err := uow.DriverRepository().Get(ctx, cmd.FromDriverID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	record, err := uow.CustodyRepository().GetActiveForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = record.Reassign(incoming.Snapshot(), outgoing.Snapshot()); err != nil {
		return err
	}

	if err = aggregate.RecordTransfer(outgoing.Snapshot()); err != nil {
		return err
	}

	if err = uow.CustodyRepository().Update(ctx, record); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Post-commit, best-effort. A failed send never unwinds the transfer.
	text := fmt.Sprintf("Order #%d was handed over to you by %s (%s).",
		aggregate.ID(), outgoing.Name(), outgoing.Phone())
	if !h.notifier.SendMessageToUser(ctx, incoming.UserID(), text) {
		slog.Warn("driver notification failed",
			"order_id", aggregate.ID(),
			"driver_id", incoming.ID())
	}

	return nil
}
