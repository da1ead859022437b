package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCatalogItemCommandIsNotConstructed = errors.New(
	"UpdateCatalogItemCommand must be created via NewUpdateCatalogItemCommand constructor",
)

// UpdateCatalogItemCommand edits a catalog item's listing fields and
// availability. Price edits never affect already placed orders.
type UpdateCatalogItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	ownerID    kernel.UUID
	title      string
	unit       string
	pricePaise int64
	available  bool

	guard guard.ConstructorGuard
}

// NewUpdateCatalogItemCommand creates a catalog edit on behalf of the
// owner of the item's vendor.
func NewUpdateCatalogItemCommand(
	itemID kernel.UUID,
	ownerID kernel.UUID,
	title string,
	unit string,
	pricePaise int64,
	available bool,
) (UpdateCatalogItemCommand, error) {
	cmd := UpdateCatalogItemCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setOwnerID(ownerID),
		cmd.setTitle(title),
		cmd.setUnit(unit),
		cmd.setPricePaise(pricePaise),
	); err != nil {
		return UpdateCatalogItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCatalogItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCatalogItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item being edited.
func (c UpdateCatalogItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// OwnerID returns the identifier of the calling owner.
func (c UpdateCatalogItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Title returns the new product title.
func (c UpdateCatalogItemCommand) Title() string {
	return c.title
}

// Unit returns the new unit of sale.
func (c UpdateCatalogItemCommand) Unit() string {
	return c.unit
}

// PricePaise returns the new unit price in paise.
func (c UpdateCatalogItemCommand) PricePaise() int64 {
	return c.pricePaise
}

// Available reports whether the item should be orderable.
func (c UpdateCatalogItemCommand) Available() bool {
	return c.available
}

func (c *UpdateCatalogItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *UpdateCatalogItemCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = id
	return nil
}

func (c *UpdateCatalogItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *UpdateCatalogItemCommand) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	c.unit = unit
	return nil
}

func (c *UpdateCatalogItemCommand) setPricePaise(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("pricePaise")
	}
	c.pricePaise = price
	return nil
}
