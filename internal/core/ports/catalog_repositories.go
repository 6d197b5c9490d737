package ports

import (
	"context"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for shipping companies.
type CompanyRepository interface {
	// Add persists a new company.
	Add(ctx context.Context, aggregate *catalog.Company) error

	// Update persists changes to an existing company.
	Update(ctx context.Context, aggregate *catalog.Company) error

	// Delete removes a company by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a company by id.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Company, error)

	// GetAll retrieves every company.
	GetAll(ctx context.Context) ([]*catalog.Company, error)
}

// PackageRepository defines the persistence contract for package tiers.
type PackageRepository interface {
	// Add persists a new package.
	Add(ctx context.Context, aggregate *catalog.Package) error

	// Update persists changes to an existing package.
	Update(ctx context.Context, aggregate *catalog.Package) error

	// Delete removes a package by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a package by id.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error)

	// GetAll retrieves every package.
	GetAll(ctx context.Context) ([]*catalog.Package, error)
}

// CompanyPackageRepository defines the persistence contract for offerings
// and their restrictions. Restrictions are keyed by the offering's composite
// name and live in the same bounded context, so one repository covers both.
type CompanyPackageRepository interface {
	// Add persists a new offering.
	Add(ctx context.Context, aggregate *catalog.CompanyPackage) error

	// Delete removes an offering by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an offering by id.
	Get(ctx context.Context, id kernel.UUID) (*catalog.CompanyPackage, error)

	// GetAll retrieves every offering.
	GetAll(ctx context.Context) ([]*catalog.CompanyPackage, error)

	// GetByCompany retrieves the offerings sold by a company.
	GetByCompany(ctx context.Context, companyID kernel.UUID) ([]*catalog.CompanyPackage, error)

	// GetByPackage retrieves the offerings of a package tier.
	GetByPackage(ctx context.Context, packageID kernel.UUID) ([]*catalog.CompanyPackage, error)

	// AddRestriction persists a restriction for an offering.
	AddRestriction(ctx context.Context, restriction *catalog.Restriction) error

	// GetRestriction retrieves the restriction keyed by composite offering
	// name. Returns ObjectNotFound when the offering is unrestricted.
	GetRestriction(ctx context.Context, name string) (*catalog.Restriction, error)

	// DeleteRestriction removes the restriction keyed by composite name.
	DeleteRestriction(ctx context.Context, name string) error
}
