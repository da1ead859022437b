// Package catalog contains the catalog item entity: a priced, unit-labeled
// product offered by a vendor. Items are mutable; orders protect themselves
// from later edits by snapshotting item fields into order lines.
package catalog

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrTitleIsRequired is returned when attempting to create an item without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrUnitIsRequired is returned when attempting to create an item without a unit label.
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")
)

// Item is a catalog entry belonging to exactly one vendor.
type Item struct {
	id         kernel.UUID
	vendorID   kernel.UUID
	title      string
	unit       string
	pricePaise int64
	available  bool

	isConstructed bool
}

// NewItem creates a catalog item. New items start available.
// Title and unit must be non-empty; the price in paise must not be negative.
func NewItem(id kernel.UUID, vendorID kernel.UUID, title string, unit string, pricePaise int64) (*Item, error) {
	item := &Item{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVendorID(vendorID),
		item.setTitle(title),
		item.setUnit(unit),
		item.setPricePaise(pricePaise),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a catalog item from persistence.
func RestoreItem(
	id kernel.UUID,
	vendorID kernel.UUID,
	title string,
	unit string,
	pricePaise int64,
	available bool,
) (*Item, error) {
	item, err := NewItem(id, vendorID, title, unit, pricePaise)
	if err != nil {
		return nil, err
	}

	item.available = available
	return item, nil
}

// Validate ensures the Item was properly constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// VendorID returns the identifier of the owning vendor.
func (i *Item) VendorID() kernel.UUID {
	return i.vendorID
}

// Title returns the customer-facing item title.
func (i *Item) Title() string {
	return i.title
}

// Unit returns the unit label, e.g. "kg" or "dozen".
func (i *Item) Unit() string {
	return i.unit
}

// PricePaise returns the current unit price in paise.
func (i *Item) PricePaise() int64 {
	return i.pricePaise
}

// IsAvailable reports whether the item can currently be ordered.
func (i *Item) IsAvailable() bool {
	return i.available
}

// Update replaces the item's title, unit, and price.
// Existing orders are unaffected: they hold snapshots, not references.
func (i *Item) Update(title string, unit string, pricePaise int64) error {
	return errors.Join(
		i.setTitle(title),
		i.setUnit(unit),
		i.setPricePaise(pricePaise),
	)
}

// SetAvailable toggles whether the item can be ordered.
func (i *Item) SetAvailable(available bool) {
	i.available = available
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	i.vendorID = id
	return nil
}

func (i *Item) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	i.title = title
	return nil
}

func (i *Item) setUnit(unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}
	i.unit = unit
	return nil
}

func (i *Item) setPricePaise(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("pricePaise")
	}
	i.pricePaise = price
	return nil
}
