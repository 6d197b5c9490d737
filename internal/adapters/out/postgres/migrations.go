package postgres

import (
	"gorm.io/gorm"

	"shipping/internal/adapters/out/postgres/bindingrepo"
	"shipping/internal/adapters/out/postgres/catalogrepo"
	"shipping/internal/adapters/out/postgres/countryrepo"
	"shipping/internal/adapters/out/postgres/raterepo"
	"shipping/internal/adapters/out/postgres/rolerepo"
)

// Migrate creates or updates every table the service persists to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&countryrepo.CountryDTO{},
		&catalogrepo.CompanyDTO{},
		&catalogrepo.PackageDTO{},
		&catalogrepo.CompanyPackageDTO{},
		&catalogrepo.RestrictionDTO{},
		&raterepo.RateEntryDTO{},
		&raterepo.RateTierDTO{},
		&bindingrepo.BindingDTO{},
		&rolerepo.RoleDTO{},
	)
}
