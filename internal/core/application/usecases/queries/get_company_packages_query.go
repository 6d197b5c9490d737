package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetCompanyPackagesQueryIsNotConstructed = errors.New(
	"GetCompanyPackagesQuery must be created via a NewGetCompanyPackagesBy... constructor",
)

// companyPackageFilter narrows the offering listing to one side of the pair.
type companyPackageFilter int

const (
	filterByCompany companyPackageFilter = iota
	filterByPackage
)

// GetCompanyPackagesQuery retrieves the offerings attached to a company or
// to a package tier.
type GetCompanyPackagesQuery struct {
	actor  *int64
	filter companyPackageFilter
	id     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyPackagesByCompanyQuery creates a query for a company's offerings.
func NewGetCompanyPackagesByCompanyQuery(actor *int64, companyID kernel.UUID) (GetCompanyPackagesQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyPackagesQuery{}, err
	}

	return GetCompanyPackagesQuery{
		actor:  actor,
		filter: filterByCompany,
		id:     companyID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetCompanyPackagesByPackageQuery creates a query for a package tier's offerings.
func NewGetCompanyPackagesByPackageQuery(actor *int64, packageID kernel.UUID) (GetCompanyPackagesQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetCompanyPackagesQuery{}, err
	}

	return GetCompanyPackagesQuery{
		actor:  actor,
		filter: filterByPackage,
		id:     packageID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetCompanyPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyPackagesQueryIsNotConstructed)
}

// GetCompanyPackagesQueryHandler lists offerings joined with company and
// package names, sorted ascending by offering id.
type GetCompanyPackagesQueryHandler struct {
	auth Authorizer
	db   *gorm.DB
}

// NewGetCompanyPackagesQueryHandler creates a handler for offering listings.
func NewGetCompanyPackagesQueryHandler(auth Authorizer, db *gorm.DB) GetCompanyPackagesQueryHandler {
	return GetCompanyPackagesQueryHandler{
		auth: auth,
		db:   db,
	}
}

// Handle executes the offering listing.
func (h GetCompanyPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyPackagesQuery,
) ([]CompanyPackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceCompanyPackage, access.ActionRead, nil); err != nil {
		return nil, err
	}

	column := "cp.company_id"
	if query.filter == filterByPackage {
		column = "cp.package_id"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cp.id,
			cp.company_id,
			cp.package_id,
			cp.currency,
			c.name AS company_name,
			p.name AS package_name
		FROM companies_packages cp
		JOIN companies c ON c.id = cp.company_id
		JOIN packages p ON p.id = cp.package_id
		WHERE `+column+` = ?
		ORDER BY cp.id
	`, query.id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offerings := make([]CompanyPackageResponse, 0)
	for rows.Next() {
		var (
			resp        CompanyPackageResponse
			id          uuid.UUID
			companyID   uuid.UUID
			packageID   uuid.UUID
			companyName string
			packageName string
		)

		err = rows.Scan(&id, &companyID, &packageID, &resp.Currency, &companyName, &packageName)
		if err != nil {
			return nil, err
		}

		resp, err = buildCompanyPackageResponse(resp, id, companyID, packageID, companyName, packageName)
		if err != nil {
			return nil, err
		}

		offerings = append(offerings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}
