package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddCatalogItemCommandIsNotConstructed = errors.New(
	"AddCatalogItemCommand must be created via NewAddCatalogItemCommand constructor",
)

// AddCatalogItemCommand adds a product to a vendor's catalog.
type AddCatalogItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	vendorID   kernel.UUID
	ownerID    kernel.UUID
	title      string
	unit       string
	pricePaise int64

	guard guard.ConstructorGuard
}

// NewAddCatalogItemCommand creates a catalog addition for the vendor owned
// by the given user. The price is in paise and must not be negative.
func NewAddCatalogItemCommand(
	itemID kernel.UUID,
	vendorID kernel.UUID,
	ownerID kernel.UUID,
	title string,
	unit string,
	pricePaise int64,
) (AddCatalogItemCommand, error) {
	cmd := AddCatalogItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setVendorID(vendorID),
		cmd.setOwnerID(ownerID),
		cmd.setTitle(title),
		cmd.setUnit(unit),
		cmd.setPricePaise(pricePaise),
	); err != nil {
		return AddCatalogItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCatalogItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCatalogItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the item to be created.
func (c AddCatalogItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// VendorID returns the identifier of the owning vendor.
func (c AddCatalogItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// OwnerID returns the identifier of the calling owner.
func (c AddCatalogItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Title returns the product title.
func (c AddCatalogItemCommand) Title() string {
	return c.title
}

// Unit returns the unit of sale, e.g. "kg" or "dozen".
func (c AddCatalogItemCommand) Unit() string {
	return c.unit
}

// PricePaise returns the unit price in paise.
func (c AddCatalogItemCommand) PricePaise() int64 {
	return c.pricePaise
}

func (c *AddCatalogItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *AddCatalogItemCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	c.vendorID = id
	return nil
}

func (c *AddCatalogItemCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = id
	return nil
}

func (c *AddCatalogItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *AddCatalogItemCommand) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	c.unit = unit
	return nil
}

func (c *AddCatalogItemCommand) setPricePaise(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("pricePaise")
	}
	c.pricePaise = price
	return nil
}
