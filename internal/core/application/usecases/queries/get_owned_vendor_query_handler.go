package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOwnedVendorQueryHandler resolves vendor profiles by owner.
type GetOwnedVendorQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnedVendorQueryHandler creates a handler for owned-vendor lookups.
func NewGetOwnedVendorQueryHandler(db *gorm.DB) GetOwnedVendorQueryHandler {
	return GetOwnedVendorQueryHandler{db: db}
}

// Handle executes the lookup. A user without a vendor profile yields an
// object-not-found error.
func (h GetOwnedVendorQueryHandler) Handle(
	ctx context.Context,
	query GetOwnedVendorQuery,
) (VendorProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return VendorProfileResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE owner_id = ?
	`, query.OwnerID().Bytes()).Row()

	profile, err := scanVendorProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VendorProfileResponse{}, errs.NewObjectNotFoundError("vendor", query.OwnerID().String())
		}
		return VendorProfileResponse{}, err
	}

	return profile, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanVendorProfile maps one vendors row to the profile response. Shared
// with the pending-verification listing.
func scanVendorProfile(row rowScanner) (VendorProfileResponse, error) {
	var (
		id, ownerID        uuid.UUID
		name, category     string
		vendorType         int
		phone, openingNote string
		online             bool
		lat, lng           *float64
		locationUpdatedAt  time.Time
		verified           bool
		plan               int
	)

	if err := row.Scan(
		&id, &ownerID, &name, &category, &vendorType,
		&phone, &openingNote, &online, &lat, &lng,
		&locationUpdatedAt, &verified, &plan,
	); err != nil {
		return VendorProfileResponse{}, err
	}

	vendorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return VendorProfileResponse{}, err
	}
	vendorOwnerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return VendorProfileResponse{}, err
	}

	return VendorProfileResponse{
		VendorID:          vendorID,
		OwnerID:           vendorOwnerID,
		Name:              name,
		Category:          category,
		VendorType:        vendor.Type(vendorType).String(),
		Phone:             phone,
		OpeningNote:       openingNote,
		Online:            online,
		Latitude:          lat,
		Longitude:         lng,
		LocationUpdatedAt: locationUpdatedAt,
		Verified:          verified,
		Plan:              vendor.Plan(plan).String(),
	}, nil
}
