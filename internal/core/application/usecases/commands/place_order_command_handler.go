package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

var (
	// ErrVendorIsNotAvailable is returned when the target vendor is offline
	// or has not been verified yet.
	ErrVendorIsNotAvailable = errors.New("vendor is not accepting orders")

	// ErrItemIsNotOrderable is returned when a requested catalog item is
	// marked unavailable or belongs to a different vendor.
	ErrItemIsNotOrderable = errors.New("item cannot be ordered")
)

// PlaceOrderCommandHandler handles customer checkout.
// Snapshots the requested catalog items into immutable order lines and
// creates the order in "placed" status, then pings the vendor.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
// Requires a cross-aggregate UoWFactory because checkout reads the vendor
// and catalog while writing the order.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the checkout command.
// The vendor must be verified and online, and every requested item must be
// an available item of that vendor. Prices are copied from the catalog at
// this moment; later catalog edits never change the order's total.
// The vendor notification is sent after commit and is best effort.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	vendor, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if !vendor.IsVerified() || !vendor.IsOnline() {
		return ErrVendorIsNotAvailable
	}

	catalogRepo := uow.CatalogRepository()
	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		item, err := catalogRepo.Get(ctx, requested.ItemID)
		if err != nil {
			return err
		}

		if !item.VendorID().IsEqual(cmd.VendorID()) || !item.IsAvailable() {
			return fmt.Errorf("%w: %s", ErrItemIsNotOrderable, item.ID())
		}

		line, err := order.NewLine(item.Title(), item.Unit(), requested.Quantity, item.PricePaise())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.CustomerPhone(),
		cmd.VendorID(),
		cmd.PaymentMode(),
		lines,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, vendor.Phone(),
		fmt.Sprintf("New order %s: %d item(s), total %d paise", newOrder.ID(), len(lines), newOrder.TotalPaise()))

	return nil
}
