package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// PlaceOrderItem names a catalog item and the quantity being ordered.
// Prices are not part of the command; the handler snapshots them from
// the catalog at order time.
type PlaceOrderItem struct {
	ItemID   kernel.UUID
	Quantity int
}

// PlaceOrderCommand represents a customer checkout with one vendor.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	customerPhone string
	vendorID      kernel.UUID
	paymentMode   order.PaymentMode
	items         []PlaceOrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command.
// All identifiers must be valid, the payment mode must be defined, the
// customer phone must be present, and at least one item with a positive
// quantity is required.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerPhone string,
	vendorID kernel.UUID,
	paymentMode order.PaymentMode,
	items []PlaceOrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setCustomerPhone(customerPhone),
		cmd.setVendorID(vendorID),
		cmd.setPaymentMode(paymentMode),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to be created.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerPhone returns the customer's contact phone.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// VendorID returns the identifier of the vendor being ordered from.
func (c PlaceOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// PaymentMode returns the settlement mode chosen at checkout.
func (c PlaceOrderCommand) PaymentMode() order.PaymentMode {
	return c.paymentMode
}

// Items returns the requested catalog items and quantities.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	items := make([]PlaceOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	c.customerPhone = phone
	return nil
}

func (c *PlaceOrderCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	c.vendorID = id
	return nil
}

func (c *PlaceOrderCommand) setPaymentMode(mode order.PaymentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	c.paymentMode = mode
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("itemID", err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.items = make([]PlaceOrderItem, len(items))
	copy(c.items, items)
	return nil
}
