package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSetVendorPresenceCommandIsNotConstructed = errors.New(
	"SetVendorPresenceCommand must be created via NewSetVendorPresenceCommand constructor",
)

// SetVendorPresenceCommand toggles a vendor's online flag and sets the
// free-text opening note shown to customers. An empty note clears it.
type SetVendorPresenceCommand struct { //nolint:recvcheck //using for validation
	vendorID    kernel.UUID
	ownerID     kernel.UUID
	online      bool
	openingNote string

	guard guard.ConstructorGuard
}

// NewSetVendorPresenceCommand creates a presence change for the vendor
// owned by the given user.
func NewSetVendorPresenceCommand(
	vendorID kernel.UUID,
	ownerID kernel.UUID,
	online bool,
	openingNote string,
) (SetVendorPresenceCommand, error) {
	cmd := SetVendorPresenceCommand{
		online:      online,
		openingNote: openingNote,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return SetVendorPresenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetVendorPresenceCommand) Validate() error {
	return c.guard.Validate(ErrSetVendorPresenceCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor changing presence.
func (c SetVendorPresenceCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// OwnerID returns the identifier of the calling owner.
func (c SetVendorPresenceCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Online reports whether the vendor is open for business.
func (c SetVendorPresenceCommand) Online() bool {
	return c.online
}

// OpeningNote returns the note to show customers, possibly empty.
func (c SetVendorPresenceCommand) OpeningNote() string {
	return c.openingNote
}

func (c *SetVendorPresenceCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *SetVendorPresenceCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = id
	return nil
}
