package commands

import (
	"context"
)

// RemoveCatalogItemCommandHandler handles catalog removals.
type RemoveCatalogItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveCatalogItemCommandHandler creates a handler for catalog removals.
func NewRemoveCatalogItemCommandHandler(uowFactory UoWFactory) RemoveCatalogItemCommandHandler {
	return RemoveCatalogItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog removal.
// The item's vendor must belong to the calling owner.
func (h *RemoveCatalogItemCommandHandler) Handle(ctx context.Context, cmd RemoveCatalogItemCommand) error {
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

	if err = catalogRepo.Remove(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
