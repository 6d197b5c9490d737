package bindingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormBindingRepository implements BindingRepository using GORM.
type GormBindingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormBindingRepository creates a new GORM binding repository.
func NewGormBindingRepository(db *gorm.DB, tracker aggregateTracker) *GormBindingRepository {
	return &GormBindingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new binding to the database.
func (r *GormBindingRepository) Add(ctx context.Context, aggregate *binding.Binding) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("serial").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a binding by ID.
func (r *GormBindingRepository) Get(ctx context.Context, id kernel.UUID) (*binding.Binding, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BindingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipping", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBaseProduct retrieves a product's bindings in insertion order.
func (r *GormBindingRepository) GetByBaseProduct(ctx context.Context, baseProductID int64) ([]*binding.Binding, error) {
	var dtos []BindingDTO
	err := r.db.WithContext(ctx).
		Where("base_product_id = ?", baseProductID).
		Order("serial ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	bindings := make([]*binding.Binding, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}

	return bindings, nil
}

// DeleteByBaseProduct removes every binding of a product. Removing bindings
// of an unknown product is a no-op, matching upsert semantics.
func (r *GormBindingRepository) DeleteByBaseProduct(ctx context.Context, baseProductID int64) error {
	return r.db.WithContext(ctx).Delete(&BindingDTO{}, "base_product_id = ?", baseProductID).Error
}

// DeleteByCompanyPackage removes every binding referencing an offering.
func (r *GormBindingRepository) DeleteByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) error {
	if err := companyPackageID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&BindingDTO{}, "company_package_id = ?", companyPackageID.Bytes()).Error
}
