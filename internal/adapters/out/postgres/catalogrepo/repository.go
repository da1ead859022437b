package catalogrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item to the database.
func (r *GormCatalogRepository) Add(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing catalog item to the database.
func (r *GormCatalogRepository) Update(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Remove deletes a catalog item. Order lines are unaffected; they are
// snapshots, not references.
func (r *GormCatalogRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}

	return nil
}

// Get retrieves a catalog item by ID.
func (r *GormCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForVendor retrieves all items belonging to a vendor.
func (r *GormCatalogRepository) GetAllForVendor(ctx context.Context, vendorID kernel.UUID) ([]*catalog.Item, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Order("title, id").
		Find(&dtos, "vendor_id = ?", vendorID.Bytes()).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// CountForVendor returns the number of items a vendor currently lists.
func (r *GormCatalogRepository) CountForVendor(ctx context.Context, vendorID kernel.UUID) (int64, error) {
	if err := vendorID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("vendor_id = ?", vendorID.Bytes()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
