package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPendingVerificationsQueryHandler retrieves the back-office
// verification queue.
type GetPendingVerificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingVerificationsQueryHandler creates a handler for the
// verification queue.
func NewGetPendingVerificationsQueryHandler(db *gorm.DB) GetPendingVerificationsQueryHandler {
	return GetPendingVerificationsQueryHandler{db: db}
}

// Handle executes the queue listing. Oldest registrations come first so
// nobody waits forever.
func (h GetPendingVerificationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingVerificationsQuery,
) ([]VendorProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

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
			verified,
			plan
		FROM vendors
		WHERE NOT verified
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]VendorProfileResponse, 0)

	for rows.Next() {
		profile, scanErr := scanVendorProfile(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
