package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveCatalogItemCommandIsNotConstructed = errors.New(
	"RemoveCatalogItemCommand must be created via NewRemoveCatalogItemCommand constructor",
)

// RemoveCatalogItemCommand deletes a catalog item.
// Safe at any time: order lines are snapshots, so history survives.
type RemoveCatalogItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCatalogItemCommand creates a catalog removal on behalf of the
// owner of the item's vendor.
func NewRemoveCatalogItemCommand(itemID kernel.UUID, ownerID kernel.UUID) (RemoveCatalogItemCommand, error) {
	cmd := RemoveCatalogItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return RemoveCatalogItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCatalogItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCatalogItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item being removed.
func (c RemoveCatalogItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// OwnerID returns the identifier of the calling owner.
func (c RemoveCatalogItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *RemoveCatalogItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *RemoveCatalogItemCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = id
	return nil
}
