package raterepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
	"shipping/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRateRepository implements RateRepository using GORM.
type GormRateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRateRepository creates a new GORM rate repository.
func NewGormRateRepository(db *gorm.DB, tracker aggregateTracker) *GormRateRepository {
	return &GormRateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Replace swaps the whole tier list of a lane: the existing lane row (and
// its tier rows, via cascade) is removed and the entry inserted fresh.
// Callers run this inside a unit of work so the swap is atomic.
func (r *GormRateRepository) Replace(ctx context.Context, aggregate *rate.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)
	if err := tx.Delete(
		&RateEntryDTO{},
		"company_package_id = ? AND delivery_from = ?",
		aggregate.CompanyPackageID().Bytes(),
		string(aggregate.DeliveryFrom()),
	).Error; err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := tx.Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByLane retrieves the rate table for one lane.
func (r *GormRateRepository) GetByLane(
	ctx context.Context,
	companyPackageID kernel.UUID,
	deliveryFrom kernel.Alpha3,
) (*rate.Entry, error) {
	if err := companyPackageID.Validate(); err != nil {
		return nil, err
	}

	var dto RateEntryDTO
	err := r.db.WithContext(ctx).
		Preload("Tiers", orderTiers).
		First(&dto, "company_package_id = ? AND delivery_from = ?", companyPackageID.Bytes(), string(deliveryFrom)).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rate", companyPackageID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCompanyPackage retrieves every lane of an offering.
func (r *GormRateRepository) GetByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) ([]*rate.Entry, error) {
	if err := companyPackageID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "company_package_id = ?", companyPackageID.Bytes())
}

// GetAll retrieves every lane.
func (r *GormRateRepository) GetAll(ctx context.Context) ([]*rate.Entry, error) {
	return r.findAll(ctx)
}

func (r *GormRateRepository) findAll(ctx context.Context, conds ...any) ([]*rate.Entry, error) {
	var dtos []RateEntryDTO
	if err := r.db.WithContext(ctx).Preload("Tiers", orderTiers).Find(&dtos, conds...).Error; err != nil {
		return nil, err
	}

	entries := make([]*rate.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// DeleteByCompanyPackage removes every lane of an offering.
func (r *GormRateRepository) DeleteByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) error {
	if err := companyPackageID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RateEntryDTO{}, "company_package_id = ?", companyPackageID.Bytes()).Error
}

func orderTiers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
