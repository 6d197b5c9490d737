package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *catalog.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := packageFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing package to the database.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *catalog.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := packageFromDomain(aggregate)
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

// Delete removes a package by ID.
func (r *GormPackageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PackageDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", id.String())
	}

	return nil
}

// Get retrieves a package by ID.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return packageToDomain(dto)
}

// GetAll retrieves every package ordered by name.
func (r *GormPackageRepository) GetAll(ctx context.Context) ([]*catalog.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*catalog.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := packageToDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}
