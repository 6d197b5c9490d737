// Package catalogrepo provides data transfer objects and mapping functions
// for catalog persistence: companies, package tiers, company-package
// offerings and their restrictions. Country-code lists live in Postgres
// text[] columns.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
)

// CompanyDTO represents the database structure for persisting companies.
type CompanyDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"type:varchar(255);not null"`
	Label          string         `gorm:"type:varchar(255);not null"`
	Logo           string         `gorm:"type:varchar(255);not null;default:''"`
	Currency       string         `gorm:"type:varchar(3);not null"`
	DeliveriesFrom pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

// PackageDTO represents the database structure for persisting package tiers.
type PackageDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	MaxSize      float64        `gorm:"type:double precision;not null"`
	MaxWeight    float64        `gorm:"type:double precision;not null"`
	DeliveriesTo pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// CompanyPackageDTO represents the database structure for persisting
// offerings. (company_id, package_id) deliberately carries no unique index.
type CompanyPackageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;index"`
	Currency  string    `gorm:"type:varchar(3);not null"`
}

// TableName specifies the database table name for offering entities.
func (CompanyPackageDTO) TableName() string {
	return "companies_packages"
}

// RestrictionDTO represents the database structure for persisting offering
// restrictions, keyed by the offering's composite name.
type RestrictionDTO struct {
	Name         string         `gorm:"type:varchar(255);primaryKey"`
	MaxSize      float64        `gorm:"type:double precision;not null"`
	MaxWeight    float64        `gorm:"type:double precision;not null"`
	DeliveriesTo pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for restriction entities.
func (RestrictionDTO) TableName() string {
	return "restrictions"
}

func companyFromDomain(c *catalog.Company) CompanyDTO {
	return CompanyDTO{
		ID:             c.ID().Bytes(),
		Name:           c.Name(),
		Label:          c.Label(),
		Logo:           c.Logo(),
		Currency:       string(c.Currency()),
		DeliveriesFrom: alpha3sToStrings(c.DeliveriesFrom()),
	}
}

func companyToDomain(dto CompanyDTO) (*catalog.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	deliveriesFrom, err := stringsToAlpha3s(dto.DeliveriesFrom)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCompany(id, dto.Name, dto.Label, dto.Logo, currency, deliveriesFrom)
}

func packageFromDomain(p *catalog.Package) PackageDTO {
	return PackageDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		MaxSize:      p.MaxSize(),
		MaxWeight:    p.MaxWeight(),
		DeliveriesTo: alpha3sToStrings(p.DeliveriesTo()),
	}
}

func packageToDomain(dto PackageDTO) (*catalog.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveriesTo, err := stringsToAlpha3s(dto.DeliveriesTo)
	if err != nil {
		return nil, err
	}

	return catalog.RestorePackage(id, dto.Name, dto.MaxSize, dto.MaxWeight, deliveriesTo)
}

func companyPackageFromDomain(cp *catalog.CompanyPackage) CompanyPackageDTO {
	return CompanyPackageDTO{
		ID:        cp.ID().Bytes(),
		CompanyID: cp.CompanyID().Bytes(),
		PackageID: cp.PackageID().Bytes(),
		Currency:  string(cp.Currency()),
	}
}

func companyPackageToDomain(dto CompanyPackageDTO) (*catalog.CompanyPackage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCompanyPackage(id, companyID, packageID, currency)
}

func restrictionFromDomain(r *catalog.Restriction) RestrictionDTO {
	return RestrictionDTO{
		Name:         r.Name(),
		MaxSize:      r.MaxSize(),
		MaxWeight:    r.MaxWeight(),
		DeliveriesTo: alpha3sToStrings(r.DeliveriesTo()),
	}
}

func restrictionToDomain(dto RestrictionDTO) (*catalog.Restriction, error) {
	deliveriesTo, err := stringsToAlpha3s(dto.DeliveriesTo)
	if err != nil {
		return nil, err
	}

	return catalog.NewRestriction(dto.Name, dto.MaxSize, dto.MaxWeight, deliveriesTo)
}

func alpha3sToStrings(codes []kernel.Alpha3) pq.StringArray {
	out := make(pq.StringArray, 0, len(codes))
	for _, code := range codes {
		out = append(out, string(code))
	}
	return out
}

func stringsToAlpha3s(values pq.StringArray) ([]kernel.Alpha3, error) {
	out := make([]kernel.Alpha3, 0, len(values))
	for _, v := range values {
		code, err := kernel.NewAlpha3(v)
		if err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, nil
}
