package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when attempting to create an order without line snapshots.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")
)

// Order represents a single customer transaction with one vendor.
// It is the aggregate root managing the order lifecycle from checkout
// through vendor acceptance and preparation to pickup or cancellation.
//
// Invariants:
//   - Belongs to exactly one customer and exactly one vendor
//   - Owns at least one line snapshot; lines are immutable copies taken
//     at order time, so catalog price edits never change historical totals
//   - Status transitions follow the table in Status
//   - Orders are never deleted, only terminally transitioned
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	customerPhone string
	vendorID      kernel.UUID
	paymentMode   PaymentMode
	lines         []Line
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates an order in Placed status from a customer checkout.
// All identifiers must be valid, the payment mode must be defined, and
// at least one valid line snapshot is required. The customer phone is
// snapshotted for pickup notifications, like the lines are for prices.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerPhone string,
	vendorID kernel.UUID,
	paymentMode PaymentMode,
	lines []Line,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerPhone(customerPhone),
		o.setVendorID(vendorID),
		o.setPaymentMode(paymentMode),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without running the
// Placed-state initialization. The stored status must be valid.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerPhone string,
	vendorID kernel.UUID,
	paymentMode PaymentMode,
	lines []Line,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerPhone(customerPhone),
		o.setVendorID(vendorID),
		o.setPaymentMode(paymentMode),
		o.setLines(lines),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerPhone returns the contact phone snapshotted at checkout.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// VendorID returns the identifier of the vendor the order was placed with.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// PaymentMode returns the settlement mode chosen at checkout.
func (o *Order) PaymentMode() PaymentMode {
	return o.paymentMode
}

// Lines returns a copy of the order's line snapshots.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout timestamp in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalPaise sums all line subtotals in paise.
func (o *Order) TotalPaise() int64 {
	var total int64
	for _, line := range o.lines {
		total += line.SubtotalPaise()
	}
	return total
}

// Accept confirms the order. Allowed only from Placed.
func (o *Order) Accept() error {
	return o.transitionTo(Accepted)
}

// StartPreparing marks the order as being prepared. Allowed only from Accepted.
func (o *Order) StartPreparing() error {
	return o.transitionTo(Preparing)
}

// MarkReady marks the order as ready for pickup. Allowed only from Preparing.
func (o *Order) MarkReady() error {
	return o.transitionTo(Ready)
}

// Complete marks the order as picked up. Allowed only from Ready. Terminal.
func (o *Order) Complete() error {
	return o.transitionTo(Completed)
}

// Cancel calls the order off. Allowed only from Placed or Accepted;
// once preparation has begun the cancellation edge does not exist. Terminal.
func (o *Order) Cancel() error {
	return o.transitionTo(Cancelled)
}

// ChangeStatus transitions the order to the proposed status if the
// transition table allows it. Vendor and admin actions route through here.
func (o *Order) ChangeStatus(next Status) error {
	return o.transitionTo(next)
}

func (o *Order) transitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	o.vendorID = id
	return nil
}

func (o *Order) setPaymentMode(mode PaymentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.paymentMode = mode
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
