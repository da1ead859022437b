package commands

import (
	"context"
	"errors"
	"time"
)

// ErrVendorBelongsToAnotherOwner is returned when an owner-scoped vendor
// command targets a profile owned by a different user.
var ErrVendorBelongsToAnotherOwner = errors.New("vendor belongs to another owner")

// UpdateVendorLocationCommandHandler persists vendor position reports.
type UpdateVendorLocationCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdateVendorLocationCommandHandler creates a handler for location reports.
func NewUpdateVendorLocationCommandHandler(uowFactory VendorUoWFactory) UpdateVendorLocationCommandHandler {
	return UpdateVendorLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location report.
// The vendor must belong to the calling owner. The report timestamp is
// taken here so freshness never depends on device clocks.
func (h *UpdateVendorLocationCommandHandler) Handle(ctx context.Context, cmd UpdateVendorLocationCommand) error {
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

	if err = aggregate.UpdateLocation(cmd.Point(), time.Now().UTC()); err != nil {
		return err
	}

	if err = vendorRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
