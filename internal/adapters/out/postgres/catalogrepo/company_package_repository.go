package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// GormCompanyPackageRepository implements CompanyPackageRepository using
// GORM. Covers both the offerings table and the restrictions table; the two
// always change together inside a unit of work.
type GormCompanyPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCompanyPackageRepository creates a new GORM offering repository.
func NewGormCompanyPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyPackageRepository {
	return &GormCompanyPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offering to the database.
func (r *GormCompanyPackageRepository) Add(ctx context.Context, aggregate *catalog.CompanyPackage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := companyPackageFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an offering by ID.
func (r *GormCompanyPackageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CompanyPackageDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("companyPackage", id.String())
	}

	return nil
}

// Get retrieves an offering by ID.
func (r *GormCompanyPackageRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.CompanyPackage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyPackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("companyPackage", id.String())
		}
		return nil, err
	}

	return companyPackageToDomain(dto)
}

// GetAll retrieves every offering ordered by id.
func (r *GormCompanyPackageRepository) GetAll(ctx context.Context) ([]*catalog.CompanyPackage, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Order("id ASC"))
}

// GetByCompany retrieves the offerings sold by a company.
func (r *GormCompanyPackageRepository) GetByCompany(ctx context.Context, companyID kernel.UUID) ([]*catalog.CompanyPackage, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, r.db.WithContext(ctx).Where("company_id = ?", companyID.Bytes()).Order("id ASC"))
}

// GetByPackage retrieves the offerings of a package tier.
func (r *GormCompanyPackageRepository) GetByPackage(ctx context.Context, packageID kernel.UUID) ([]*catalog.CompanyPackage, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, r.db.WithContext(ctx).Where("package_id = ?", packageID.Bytes()).Order("id ASC"))
}

// AddRestriction saves a restriction for an offering.
func (r *GormCompanyPackageRepository) AddRestriction(ctx context.Context, restriction *catalog.Restriction) error {
	if err := restriction.Validate(); err != nil {
		return err
	}

	dto := restrictionFromDomain(restriction)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRestriction retrieves the restriction keyed by composite offering name.
func (r *GormCompanyPackageRepository) GetRestriction(ctx context.Context, name string) (*catalog.Restriction, error) {
	var dto RestrictionDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restriction", name)
		}
		return nil, err
	}

	return restrictionToDomain(dto)
}

// DeleteRestriction removes the restriction keyed by composite name.
// Deleting an absent restriction is not an error: an offering without one is
// simply unrestricted.
func (r *GormCompanyPackageRepository) DeleteRestriction(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Delete(&RestrictionDTO{}, "name = ?", name).Error
}

func (r *GormCompanyPackageRepository) findAll(_ context.Context, tx *gorm.DB) ([]*catalog.CompanyPackage, error) {
	var dtos []CompanyPackageDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	offerings := make([]*catalog.CompanyPackage, 0, len(dtos))
	for _, dto := range dtos {
		cp, err := companyPackageToDomain(dto)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, cp)
	}

	return offerings, nil
}
