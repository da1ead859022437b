package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates an order history query.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderQueryResponse is one order in a listing, with its line snapshots.
// Status and payment mode carry their wire names, e.g. "placed" and "upi".
type OrderQueryResponse struct {
	OrderID     kernel.UUID
	CustomerID  kernel.UUID
	VendorID    kernel.UUID
	Status      string
	PaymentMode string
	TotalPaise  int64
	CreatedAt   time.Time
	Lines       []OrderLineQueryResponse
}

// OrderLineQueryResponse is one immutable line snapshot within an order.
type OrderLineQueryResponse struct {
	Title          string
	Unit           string
	Quantity       int
	UnitPricePaise int64
	SubtotalPaise  int64
}
