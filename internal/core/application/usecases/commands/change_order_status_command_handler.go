package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ErrOrderBelongsToAnotherVendor is returned when a vendor-scoped status
// change targets an order placed with a different vendor.
var ErrOrderBelongsToAnotherVendor = errors.New("order belongs to another vendor")

// ChangeOrderStatusCommandHandler applies lifecycle transitions to orders.
// The transition table lives in the order aggregate; the handler only adds
// vendor scoping and customer notifications.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status change command.
// Illegal transitions surface as errors from the aggregate and leave the
// stored order untouched. Customers are pinged on accepted, ready and
// cancelled; the notification is sent after commit and is best effort.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if scope := cmd.ScopeVendorID(); scope != nil && !aggregate.VendorID().IsEqual(*scope) {
		return ErrOrderBelongsToAnotherVendor
	}

	if err = aggregate.ChangeStatus(cmd.Next()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCustomer(ctx, aggregate)

	return nil
}

func (h *ChangeOrderStatusCommandHandler) notifyCustomer(ctx context.Context, aggregate *order.Order) {
	var text string
	switch aggregate.Status() {
	case order.Accepted:
		text = fmt.Sprintf("Order %s accepted by the vendor", aggregate.ID())
	case order.Ready:
		text = fmt.Sprintf("Order %s is ready for pickup", aggregate.ID())
	case order.Cancelled:
		text = fmt.Sprintf("Order %s was cancelled", aggregate.ID())
	default:
		return
	}

	_ = h.notifier.Send(ctx, aggregate.CustomerPhone(), text)
}
