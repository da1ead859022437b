package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler handles customer-initiated cancellations.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
// Requires a cross-aggregate UoWFactory because the vendor's phone is
// looked up for the cancellation notice.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
// The order must belong to the calling customer and must still be in a
// status the transition table allows cancelling from. The vendor is pinged
// after commit, best effort.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return ErrOrderBelongsToAnotherCustomer
	}

	vendor, err := uow.VendorRepository().Get(ctx, aggregate.VendorID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, vendor.Phone(),
		fmt.Sprintf("Order %s was cancelled by the customer", aggregate.ID()))

	return nil
}
