package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscoverVendorsQueryHandler produces the customer-facing vendor feed.
// Loads the discoverable projection from the database and runs the
// in-memory proximity pipeline over it. Only verified vendors are visible
// to customers.
type DiscoverVendorsQueryHandler struct {
	db        *gorm.DB
	discovery services.VendorDiscovery
}

// NewDiscoverVendorsQueryHandler creates a handler for discovery searches.
func NewDiscoverVendorsQueryHandler(db *gorm.DB) DiscoverVendorsQueryHandler {
	return DiscoverVendorsQueryHandler{
		db:        db,
		discovery: services.NewVendorDiscovery(),
	}
}

// Handle executes the discovery search.
// Results are sorted nearest first; an absent origin yields an empty slice.
func (h DiscoverVendorsQueryHandler) Handle(
	ctx context.Context,
	query DiscoverVendorsQuery,
) ([]DiscoverVendorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.loadDiscoverable(ctx)
	if err != nil {
		return nil, err
	}

	discovered := h.discovery.Discover(candidates, services.DiscoveryCriteria{
		Origin:     query.Origin(),
		RadiusKm:   query.RadiusKm(),
		Category:   query.Category(),
		OnlineOnly: query.OnlineOnly(),
		QueryText:  query.QueryText(),
	})

	responses := make([]DiscoverVendorsQueryResponse, 0, len(discovered))
	for _, d := range discovered {
		location := d.Vendor.Location()
		responses = append(responses, DiscoverVendorsQueryResponse{
			VendorID:     d.Vendor.ID(),
			Name:         d.Vendor.Name(),
			Category:     d.Vendor.Category(),
			VendorType:   d.Vendor.Type().String(),
			Online:       d.Vendor.IsOnline(),
			OpeningNote:  d.Vendor.OpeningNote(),
			Latitude:     location.Latitude(),
			Longitude:    location.Longitude(),
			DistanceKm:   d.DistanceKm,
			UpdatedToday: d.UpdatedToday,
		})
	}

	return responses, nil
}

func (h DiscoverVendorsQueryHandler) loadDiscoverable(ctx context.Context) ([]*vendor.Vendor, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			category,
			vendor_type,
			phone,
			opening_note,
			online,
			location_lat,
			location_lng,
			location_updated_at,
			plan
		FROM vendors
		WHERE verified AND location_lat IS NOT NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]*vendor.Vendor, 0)

	for rows.Next() {
		var (
			id, ownerID        uuid.UUID
			name, category     string
			vendorType         int
			phone, openingNote string
			online             bool
			lat, lng           *float64
			locationUpdatedAt  time.Time
			plan               int
		)

		if err = rows.Scan(
			&id, &ownerID, &name, &category, &vendorType,
			&phone, &openingNote, &online, &lat, &lng,
			&locationUpdatedAt, &plan,
		); err != nil {
			return nil, err
		}

		vendorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		vendorOwnerID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}

		var location *kernel.GeoPoint
		if lat != nil && lng != nil {
			point, pointErr := kernel.NewGeoPoint(*lat, *lng)
			if pointErr != nil {
				return nil, pointErr
			}
			location = &point
		}

		restored, restoreErr := vendor.RestoreVendor(
			vendorID, vendorOwnerID, name, category,
			vendor.Type(vendorType), phone, openingNote, online,
			location, locationUpdatedAt, true, vendor.Plan(plan),
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		vendors = append(vendors, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}
