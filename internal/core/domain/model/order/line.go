package order

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an immutable snapshot of a catalog item captured at order time.
// It copies the item's title, unit label, and unit price so that later
// catalog edits never retroactively alter historical order totals.
//
// Line is a value object; the zero value is invalid.
type Line struct { //nolint:recvcheck //using for validation
	title          string
	unit           string
	quantity       int
	unitPricePaise int64

	guard guard.ConstructorGuard
}

// NewLine creates an order line snapshot.
// Title and unit must be non-empty, quantity must be positive, and the
// unit price (in paise) must not be negative.
func NewLine(title string, unit string, quantity int, unitPricePaise int64) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setTitle(title),
		line.setUnit(unit),
		line.setQuantity(quantity),
		line.setUnitPricePaise(unitPricePaise),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Title returns the item title as it was at order time.
func (l Line) Title() string {
	return l.title
}

// Unit returns the unit label as it was at order time, e.g. "kg" or "dozen".
func (l Line) Unit() string {
	return l.unit
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPricePaise returns the unit price in paise as it was at order time.
func (l Line) UnitPricePaise() int64 {
	return l.unitPricePaise
}

// SubtotalPaise returns quantity times unit price in paise.
func (l Line) SubtotalPaise() int64 {
	return int64(l.quantity) * l.unitPricePaise
}

func (l *Line) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Line) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	l.unit = unit
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPricePaise(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("unitPricePaise")
	}
	l.unitPricePaise = price
	return nil
}
