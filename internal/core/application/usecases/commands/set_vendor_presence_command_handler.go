package commands

import (
	"context"
)

// SetVendorPresenceCommandHandler persists vendor presence changes.
type SetVendorPresenceCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewSetVendorPresenceCommandHandler creates a handler for presence changes.
func NewSetVendorPresenceCommandHandler(uowFactory VendorUoWFactory) SetVendorPresenceCommandHandler {
	return SetVendorPresenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the presence change.
// The vendor must belong to the calling owner. Going offline does not touch
// open orders; those finish their lifecycle independently.
func (h *SetVendorPresenceCommandHandler) Handle(ctx context.Context, cmd SetVendorPresenceCommand) error {
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

	vendorRepo := uow.VendorRepository()
	aggregate, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if !aggregate.OwnerID().IsEqual(cmd.OwnerID()) {
		return ErrVendorBelongsToAnotherOwner
	}

	aggregate.SetOnline(cmd.Online())
	aggregate.SetOpeningNote(cmd.OpeningNote())

	if err = vendorRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
