package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorCatalogQueryHandler retrieves catalog listings from the database.
type GetVendorCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorCatalogQueryHandler creates a handler for catalog listings.
func NewGetVendorCatalogQueryHandler(db *gorm.DB) GetVendorCatalogQueryHandler {
	return GetVendorCatalogQueryHandler{db: db}
}

// Handle executes the catalog listing.
// Items are sorted by title for stable output.
func (h GetVendorCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetVendorCatalogQuery,
) ([]GetVendorCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, title, unit, price_paise, available
		FROM items
		WHERE vendor_id = ?
	`
	if !query.IncludeUnavailable() {
		sql += " AND available"
	}
	sql += " ORDER BY title, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetVendorCatalogQueryResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			title      string
			unit       string
			pricePaise int64
			available  bool
		)

		if err = rows.Scan(&id, &title, &unit, &pricePaise, &available); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, GetVendorCatalogQueryResponse{
			ItemID:     itemID,
			Title:      title,
			Unit:       unit,
			PricePaise: pricePaise,
			Available:  available,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
