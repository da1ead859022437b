package commands

import (
	"context"
)

// UpdateCatalogItemCommandHandler handles catalog edits.
type UpdateCatalogItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateCatalogItemCommandHandler creates a handler for catalog edits.
// Requires a cross-aggregate UoWFactory because ownership is checked
// through the item's vendor.
func NewUpdateCatalogItemCommandHandler(uowFactory UoWFactory) UpdateCatalogItemCommandHandler {
	return UpdateCatalogItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog edit.
// The item's vendor must belong to the calling owner. Existing orders keep
// their snapshotted lines regardless of the edit.
func (h *UpdateCatalogItemCommandHandler) Handle(ctx context.Context, cmd UpdateCatalogItemCommand) error {
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

	catalogRepo := uow.CatalogRepository()
	item, err := catalogRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	vendor, err := uow.VendorRepository().Get(ctx, item.VendorID())
	if err != nil {
		return err
	}

	if !vendor.OwnerID().IsEqual(cmd.OwnerID()) {
		return ErrVendorBelongsToAnotherOwner
	}

	if err = item.Update(cmd.Title(), cmd.Unit(), cmd.PricePaise()); err != nil {
		return err
	}
	item.SetAvailable(cmd.Available())

	if err = catalogRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
