package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for catalog items.
type CatalogRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, item *catalog.Item) error

	// Update persists changes to an existing catalog item.
	Update(ctx context.Context, item *catalog.Item) error

	// Remove deletes a catalog item. Orders are unaffected: their lines
	// are snapshots, not references.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a catalog item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)

	// GetAllForVendor retrieves all items belonging to a vendor.
	GetAllForVendor(ctx context.Context, vendorID kernel.UUID) ([]*catalog.Item, error)

	// CountForVendor returns the number of items a vendor currently lists.
	// Used to enforce plan catalog limits.
	CountForVendor(ctx context.Context, vendorID kernel.UUID) (int64, error)
}
