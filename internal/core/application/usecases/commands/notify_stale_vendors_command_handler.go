package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/ports"
)

// staleLocationCutoff mirrors the freshness window customers see: a vendor
// whose pin is older than this no longer shows "updated today".
const staleLocationCutoff = 24 * time.Hour

// NotifyStaleVendorsCommandHandler reminds online moving stalls to refresh
// their pin. Stale pins make the map lie to customers, which hurts the
// vendor more than anyone. Fixed shops never move, so they are never nagged.
type NotifyStaleVendorsCommandHandler struct {
	uowFactory VendorUoWFactory
	notifier   ports.Notifier
}

// NewNotifyStaleVendorsCommandHandler creates a handler for the reminder sweep.
func NewNotifyStaleVendorsCommandHandler(
	uowFactory VendorUoWFactory,
	notifier ports.Notifier,
) NotifyStaleVendorsCommandHandler {
	return NotifyStaleVendorsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reminder sweep.
// Reads the stale set in one transaction, then sends reminders outside it.
// A failed send skips to the next vendor; the sweep runs again next hour.
func (h *NotifyStaleVendorsCommandHandler) Handle(ctx context.Context, cmd NotifyStaleVendorsCommand) error {
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

	cutoff := time.Now().UTC().Add(-staleLocationCutoff)
	stale, err := uow.VendorRepository().GetStaleOnline(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, v := range stale {
		// Only moving stalls get the reminder; a fixed shop's pin never goes stale.
		if v.Type() != vendor.TypeMovingStall {
			continue
		}
		_ = h.notifier.Send(ctx, v.Phone(),
			"Your location pin is over a day old. Update it so customers can find you.")
	}

	return nil
}
