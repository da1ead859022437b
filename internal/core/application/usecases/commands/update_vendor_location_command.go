package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateVendorLocationCommandIsNotConstructed = errors.New(
	"UpdateVendorLocationCommand must be created via NewUpdateVendorLocationCommand constructor",
)

// UpdateVendorLocationCommand reports a vendor's current position.
// Each report refreshes the "updated today" marker customers see.
type UpdateVendorLocationCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	ownerID  kernel.UUID
	point    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateVendorLocationCommand creates a location report for the vendor
// owned by the given user.
func NewUpdateVendorLocationCommand(
	vendorID kernel.UUID,
	ownerID kernel.UUID,
	point kernel.GeoPoint,
) (UpdateVendorLocationCommand, error) {
	cmd := UpdateVendorLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setOwnerID(ownerID),
		cmd.setPoint(point),
	); err != nil {
		return UpdateVendorLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVendorLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVendorLocationCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor being positioned.
func (c UpdateVendorLocationCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// OwnerID returns the identifier of the calling owner.
func (c UpdateVendorLocationCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Point returns the reported position.
func (c UpdateVendorLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c *UpdateVendorLocationCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *UpdateVendorLocationCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = id
	return nil
}

func (c *UpdateVendorLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}
