package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery retrieves the orders placed with a vendor, newest
// first. Drives the vendor's incoming order screen.
type GetVendorOrdersQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a vendor order listing query.
func NewGetVendorOrdersQuery(vendorID kernel.UUID) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}

	return GetVendorOrdersQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the identifier of the vendor whose orders are listed.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}
