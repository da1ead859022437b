package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order along its lifecycle.
// Admin callers act on any order; vendor callers are scoped to their own
// vendor so the handler rejects orders that belong to someone else.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	next          order.Status
	scopeVendorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates an unscoped status change, for
// back-office callers.
func NewChangeOrderStatusCommand(orderID kernel.UUID, next order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// NewChangeOrderStatusCommandForVendor creates a status change scoped to a
// vendor. The handler refuses orders placed with any other vendor.
func NewChangeOrderStatusCommandForVendor(
	orderID kernel.UUID,
	next order.Status,
	vendorID kernel.UUID,
) (ChangeOrderStatusCommand, error) {
	cmd, err := NewChangeOrderStatusCommand(orderID, next)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	if err := vendorID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	cmd.scopeVendorID = &vendorID

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the proposed status.
func (c ChangeOrderStatusCommand) Next() order.Status {
	return c.next
}

// ScopeVendorID returns the vendor the command is scoped to, or nil for
// unscoped back-office calls.
func (c ChangeOrderStatusCommand) ScopeVendorID() *kernel.UUID {
	return c.scopeVendorID
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
