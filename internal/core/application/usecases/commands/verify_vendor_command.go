package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrVerifyVendorCommandIsNotConstructed = errors.New(
	"VerifyVendorCommand must be created via NewVerifyVendorCommand constructor",
)

// VerifyVendorCommand is the back-office approving a vendor profile.
// Verification is one way; there is no un-verify.
type VerifyVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyVendorCommand creates a verification command.
func NewVerifyVendorCommand(vendorID kernel.UUID) (VerifyVendorCommand, error) {
	cmd := VerifyVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVendorID(vendorID); err != nil {
		return VerifyVendorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyVendorCommand) Validate() error {
	return c.guard.Validate(ErrVerifyVendorCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor being approved.
func (c VerifyVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *VerifyVendorCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}
