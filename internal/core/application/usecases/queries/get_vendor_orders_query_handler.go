package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler retrieves a vendor's incoming orders.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order listings.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the vendor order listing, newest orders first.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db, "o.vendor_id = ?", query.VendorID().Bytes())
}
