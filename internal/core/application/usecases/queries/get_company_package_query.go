package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetCompanyPackageQueryIsNotConstructed = errors.New(
	"GetCompanyPackageQuery must be created via NewGetCompanyPackageQuery constructor",
)

// GetCompanyPackageQuery retrieves one offering by id.
type GetCompanyPackageQuery struct {
	actor            *int64
	companyPackageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyPackageQuery creates a query for one offering.
func NewGetCompanyPackageQuery(actor *int64, companyPackageID kernel.UUID) (GetCompanyPackageQuery, error) {
	if err := companyPackageID.Validate(); err != nil {
		return GetCompanyPackageQuery{}, err
	}

	return GetCompanyPackageQuery{
		actor:            actor,
		companyPackageID: companyPackageID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyPackageQueryIsNotConstructed)
}

// CompanyPackageResponse represents one offering in the read model. Name is
// the composite "{company}-{package}" display name.
type CompanyPackageResponse struct {
	ID        kernel.UUID `json:"id"`
	CompanyID kernel.UUID `json:"company_id"`
	PackageID kernel.UUID `json:"package_id"`
	Name      string      `json:"name"`
	Currency  string      `json:"currency"`
}

// GetCompanyPackageQueryHandler retrieves one offering joined with its
// company and package names.
type GetCompanyPackageQueryHandler struct {
	auth Authorizer
	db   *gorm.DB
}

// NewGetCompanyPackageQueryHandler creates a handler for offering retrieval.
func NewGetCompanyPackageQueryHandler(auth Authorizer, db *gorm.DB) GetCompanyPackageQueryHandler {
	return GetCompanyPackageQueryHandler{
		auth: auth,
		db:   db,
	}
}

// Handle executes the offering retrieval.
func (h GetCompanyPackageQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyPackageQuery,
) (CompanyPackageResponse, error) {
	if err := query.Validate(); err != nil {
		return CompanyPackageResponse{}, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceCompanyPackage, access.ActionRead, nil); err != nil {
		return CompanyPackageResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE cp.id = ?
	`, query.companyPackageID.Bytes()).Row()

	resp, err := scanCompanyPackageRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CompanyPackageResponse{}, errs.NewObjectNotFoundError("companyPackage", query.companyPackageID.String())
		}
		return CompanyPackageResponse{}, err
	}

	return resp, nil
}

// scanCompanyPackageRow maps one joined offering row to the read model.
func scanCompanyPackageRow(row *sql.Row) (CompanyPackageResponse, error) {
	var (
		resp        CompanyPackageResponse
		id          uuid.UUID
		companyID   uuid.UUID
		packageID   uuid.UUID
		companyName string
		packageName string
	)

	if err := row.Scan(&id, &companyID, &packageID, &resp.Currency, &companyName, &packageName); err != nil {
		return CompanyPackageResponse{}, err
	}

	return buildCompanyPackageResponse(resp, id, companyID, packageID, companyName, packageName)
}

// buildCompanyPackageResponse finishes id conversion and name composition.
func buildCompanyPackageResponse(
	resp CompanyPackageResponse,
	id, companyID, packageID uuid.UUID,
	companyName, packageName string,
) (CompanyPackageResponse, error) {
	offeringID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CompanyPackageResponse{}, err
	}

	cID, err := kernel.UUIDFromBytes(companyID[:])
	if err != nil {
		return CompanyPackageResponse{}, err
	}

	pID, err := kernel.UUIDFromBytes(packageID[:])
	if err != nil {
		return CompanyPackageResponse{}, err
	}

	resp.ID = offeringID
	resp.CompanyID = cID
	resp.PackageID = pID
	resp.Name = catalog.CompositeName(companyName, packageName)
	return resp, nil
}
