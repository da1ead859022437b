package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor aggregate to storage.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor aggregate.
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetByPhone retrieves a vendor by its verified phone number.
	// Used during onboarding to reject duplicate registrations.
	GetByPhone(ctx context.Context, phone string) (*vendor.Vendor, error)

	// GetAllDiscoverable retrieves all vendors that have a reported
	// position. This is the bounded projection the discovery pipeline
	// filters in memory.
	GetAllDiscoverable(ctx context.Context) ([]*vendor.Vendor, error)

	// GetStaleOnline retrieves online moving stalls whose last location
	// report is older than the cutoff. Fixed shops are excluded. Used by
	// the reminder job.
	GetStaleOnline(ctx context.Context, cutoff time.Time) ([]*vendor.Vendor, error)
}
