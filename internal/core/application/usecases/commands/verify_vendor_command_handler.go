package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/ports"
)

// VerifyVendorCommandHandler handles back-office vendor approvals.
type VerifyVendorCommandHandler struct {
	uowFactory VendorUoWFactory
	notifier   ports.Notifier
}

// NewVerifyVendorCommandHandler creates a handler for vendor approvals.
func NewVerifyVendorCommandHandler(
	uowFactory VendorUoWFactory,
	notifier ports.Notifier,
) VerifyVendorCommandHandler {
	return VerifyVendorCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the approval.
// Verifying an already verified vendor is a no-op. The vendor is told
// after commit, best effort.
func (h *VerifyVendorCommandHandler) Handle(ctx context.Context, cmd VerifyVendorCommand) error {
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

	aggregate.Verify()

	if err = vendorRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, aggregate.Phone(),
		fmt.Sprintf("%s is verified. You can now go online and take orders.", aggregate.Name()))

	return nil
}
