package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/catalog"
)

// ErrCatalogLimitReached is returned when a vendor's plan does not allow
// any more catalog items.
var ErrCatalogLimitReached = errors.New("catalog limit for the current plan is reached")

// AddCatalogItemCommandHandler handles catalog additions.
// The vendor's subscription plan caps the catalog size, so the handler
// counts existing items inside the same transaction before inserting.
type AddCatalogItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddCatalogItemCommandHandler creates a handler for catalog additions.
// Requires a cross-aggregate UoWFactory because the plan cap lives on the
// vendor while the item lives in the catalog.
func NewAddCatalogItemCommandHandler(uowFactory UoWFactory) AddCatalogItemCommandHandler {
	return AddCatalogItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog addition.
// The vendor must belong to the calling owner and must have room under its
// plan's catalog limit. New items start available.
func (h *AddCatalogItemCommandHandler) Handle(ctx context.Context, cmd AddCatalogItemCommand) error {
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

	if !vendor.OwnerID().IsEqual(cmd.OwnerID()) {
		return ErrVendorBelongsToAnotherOwner
	}

	catalogRepo := uow.CatalogRepository()
	count, err := catalogRepo.CountForVendor(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if count >= int64(vendor.Plan().CatalogLimit()) {
		return ErrCatalogLimitReached
	}

	item, err := catalog.NewItem(cmd.ItemID(), cmd.VendorID(), cmd.Title(), cmd.Unit(), cmd.PricePaise())
	if err != nil {
		return err
	}

	if err = catalogRepo.Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
