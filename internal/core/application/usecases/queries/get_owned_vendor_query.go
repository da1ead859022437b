package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOwnedVendorQueryIsNotConstructed = errors.New(
	"GetOwnedVendorQuery must be created via NewGetOwnedVendorQuery constructor",
)

// GetOwnedVendorQuery resolves the vendor profile belonging to a user.
// The vendor app identifies callers by their user account, not by vendor
// ID, so every dashboard screen starts here.
type GetOwnedVendorQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnedVendorQuery creates an owned-vendor lookup.
func NewGetOwnedVendorQuery(ownerID kernel.UUID) (GetOwnedVendorQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOwnedVendorQuery{}, err
	}

	return GetOwnedVendorQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnedVendorQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnedVendorQueryIsNotConstructed)
}

// OwnerID returns the identifier of the owning user.
func (q GetOwnedVendorQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// VendorProfileResponse is the full vendor profile as stored, including
// fields hidden from customers such as the phone and verification state.
type VendorProfileResponse struct {
	VendorID          kernel.UUID
	OwnerID           kernel.UUID
	Name              string
	Category          string
	VendorType        string
	Phone             string
	OpeningNote       string
	Online            bool
	Latitude          *float64
	Longitude         *float64
	LocationUpdatedAt time.Time
	Verified          bool
	Plan              string
}
