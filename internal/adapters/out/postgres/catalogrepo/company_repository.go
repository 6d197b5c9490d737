package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCompanyRepository implements CompanyRepository using GORM.
type GormCompanyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new company to the database.
func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *catalog.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := companyFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing company to the database.
func (r *GormCompanyRepository) Update(ctx context.Context, aggregate *catalog.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := companyFromDomain(aggregate)
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

// Delete removes a company by ID.
func (r *GormCompanyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CompanyDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("company", id.String())
	}

	return nil
}

// Get retrieves a company by ID.
func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, err
	}

	return companyToDomain(dto)
}

// GetAll retrieves every company ordered by label.
func (r *GormCompanyRepository) GetAll(ctx context.Context) ([]*catalog.Company, error) {
	var dtos []CompanyDTO
	if err := r.db.WithContext(ctx).Order("label ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	companies := make([]*catalog.Company, 0, len(dtos))
	for _, dto := range dtos {
		c, err := companyToDomain(dto)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, nil
}
