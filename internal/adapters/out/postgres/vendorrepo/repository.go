package vendorrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor to the database.
func (r *GormVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vendor to the database.
// Uses Save rather than Updates so cleared fields (going offline, clearing
// the opening note) are written too.
func (r *GormVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vendor by ID.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPhone retrieves a vendor by its verified phone number.
func (r *GormVendorRepository) GetByPhone(ctx context.Context, phone string) (*vendor.Vendor, error) {
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", phone)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDiscoverable retrieves all vendors with a reported position.
func (r *GormVendorRepository) GetAllDiscoverable(ctx context.Context) ([]*vendor.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "location_lat IS NOT NULL").Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStaleOnline retrieves online moving stalls whose last location report
// is older than the cutoff. Fixed shops keep their pin and are excluded.
// Stalls that never reported a position count as stale, since their zero
// timestamp predates any cutoff.
func (r *GormVendorRepository) GetStaleOnline(ctx context.Context, cutoff time.Time) ([]*vendor.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "online AND vendor_type = ? AND location_updated_at < ?",
			int(vendor.TypeMovingStall), cutoff).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []VendorDTO) ([]*vendor.Vendor, error) {
	vendors := make([]*vendor.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}

	return vendors, nil
}
