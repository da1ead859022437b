package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorCatalogQueryIsNotConstructed = errors.New(
	"GetVendorCatalogQuery must be created via NewGetVendorCatalogQuery constructor",
)

// GetVendorCatalogQuery retrieves a vendor's catalog.
// Customers see only available items; the vendor dashboard asks for
// everything, including items currently marked unavailable.
type GetVendorCatalogQuery struct { //nolint:recvcheck //using for validation
	vendorID           kernel.UUID
	includeUnavailable bool

	guard guard.ConstructorGuard
}

// NewGetVendorCatalogQuery creates a catalog listing query.
func NewGetVendorCatalogQuery(vendorID kernel.UUID, includeUnavailable bool) (GetVendorCatalogQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorCatalogQuery{}, err
	}

	return GetVendorCatalogQuery{
		vendorID:           vendorID,
		includeUnavailable: includeUnavailable,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorCatalogQueryIsNotConstructed)
}

// VendorID returns the identifier of the vendor whose catalog is listed.
func (q GetVendorCatalogQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// IncludeUnavailable reports whether unavailable items are included.
func (q GetVendorCatalogQuery) IncludeUnavailable() bool {
	return q.includeUnavailable
}

// GetVendorCatalogQueryResponse is one catalog item in the listing.
type GetVendorCatalogQueryResponse struct {
	ItemID     kernel.UUID
	Title      string
	Unit       string
	PricePaise int64
	Available  bool
}
