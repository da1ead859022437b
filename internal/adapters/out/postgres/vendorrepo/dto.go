// Package vendorrepo provides data transfer objects and mapping functions
// for vendor persistence. Implements the repository pattern for the vendor
// aggregate, converting between domain entities and database rows.
package vendorrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
// The optional position is stored as a pair of nullable columns; a NULL
// latitude means the vendor has never reported a location.
type VendorDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Category          string    `gorm:"type:varchar(255);not null;index"`
	VendorType        int       `gorm:"type:int;not null"`
	Phone             string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	OpeningNote       string    `gorm:"type:text;not null;default:''"`
	Online            bool      `gorm:"not null;index"`
	LocationLat       *float64  `gorm:"column:location_lat"`
	LocationLng       *float64  `gorm:"column:location_lng"`
	LocationUpdatedAt time.Time
	Verified          bool `gorm:"not null;index"`
	Plan              int  `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "vendors".
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor aggregate to its database representation.
func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	var lat, lng *float64
	if location := aggregate.Location(); location != nil {
		latVal := location.Latitude()
		lngVal := location.Longitude()
		lat = &latVal
		lng = &lngVal
	}

	return VendorDTO{
		ID:                aggregate.ID().Bytes(),
		OwnerID:           aggregate.OwnerID().Bytes(),
		Name:              aggregate.Name(),
		Category:          aggregate.Category(),
		VendorType:        int(aggregate.Type()),
		Phone:             aggregate.Phone(),
		OpeningNote:       aggregate.OpeningNote(),
		Online:            aggregate.IsOnline(),
		LocationLat:       lat,
		LocationLng:       lng,
		LocationUpdatedAt: aggregate.LocationUpdatedAt(),
		Verified:          aggregate.IsVerified(),
		Plan:              int(aggregate.Plan()),
	}
}

// toDomain converts a database DTO to a vendor aggregate using RestoreVendor.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return vendor.RestoreVendor(
		id,
		ownerID,
		dto.Name,
		dto.Category,
		vendor.Type(dto.VendorType),
		dto.Phone,
		dto.OpeningNote,
		dto.Online,
		location,
		dto.LocationUpdatedAt,
		dto.Verified,
		vendor.Plan(dto.Plan),
	)
}
