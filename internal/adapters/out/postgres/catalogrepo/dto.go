// Package catalogrepo provides data transfer objects and mapping functions
// for catalog item persistence.
package catalogrepo

import (
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Unit       string    `gorm:"type:varchar(64);not null"`
	PricePaise int64     `gorm:"type:bigint;not null"`
	Available  bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts a catalog item to its database representation.
func fromDomain(item *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:         item.ID().Bytes(),
		VendorID:   item.VendorID().Bytes(),
		Title:      item.Title(),
		Unit:       item.Unit(),
		PricePaise: item.PricePaise(),
		Available:  item.IsAvailable(),
	}
}

// toDomain converts a database DTO to a catalog item using RestoreItem.
func toDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreItem(id, vendorID, dto.Title, dto.Unit, dto.PricePaise, dto.Available)
}
