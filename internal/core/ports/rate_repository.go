package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
)

// RateRepository defines the persistence contract for lane rate tables.
// Tiers are stored pre-sorted ascending; readers never re-sort.
type RateRepository interface {
	// Replace swaps the whole tier list of a lane atomically: existing rows
	// for (company package, origin) are removed and the entry's tiers
	// inserted in their ascending order.
	Replace(ctx context.Context, aggregate *rate.Entry) error

	// GetByLane retrieves the rate table for one lane.
	GetByLane(ctx context.Context, companyPackageID kernel.UUID, deliveryFrom kernel.Alpha3) (*rate.Entry, error)

	// GetByCompanyPackage retrieves every lane of an offering.
	GetByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) ([]*rate.Entry, error)

	// GetAll retrieves every lane. Used by the rate-table audit job.
	GetAll(ctx context.Context) ([]*rate.Entry, error)

	// DeleteByCompanyPackage removes every lane of an offering. Called when
	// the offering itself is deleted.
	DeleteByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) error
}
