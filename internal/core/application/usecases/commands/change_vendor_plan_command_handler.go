package commands

import (
	"context"
)

// ChangeVendorPlanCommandHandler handles back-office plan assignments.
// Downgrading below the current catalog size keeps existing items; only
// further additions are blocked by the lower cap.
type ChangeVendorPlanCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewChangeVendorPlanCommandHandler creates a handler for plan assignments.
func NewChangeVendorPlanCommandHandler(uowFactory VendorUoWFactory) ChangeVendorPlanCommandHandler {
	return ChangeVendorPlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plan assignment.
func (h *ChangeVendorPlanCommandHandler) Handle(ctx context.Context, cmd ChangeVendorPlanCommand) error {
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

	if err = aggregate.ChangePlan(cmd.Plan()); err != nil {
		return err
	}

	if err = vendorRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
