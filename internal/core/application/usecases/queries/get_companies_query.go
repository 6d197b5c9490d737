package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetCompaniesQueryIsNotConstructed = errors.New(
	"GetCompaniesQuery must be created via NewGetCompaniesQuery constructor",
)

// GetCompaniesQuery retrieves every registered shipping company.
type GetCompaniesQuery struct {
	actor *int64

	guard guard.ConstructorGuard
}

// NewGetCompaniesQuery creates a query for the company list.
func NewGetCompaniesQuery(actor *int64) GetCompaniesQuery {
	return GetCompaniesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCompaniesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompaniesQueryIsNotConstructed)
}

// CompanyResponse represents one company in the read model.
type CompanyResponse struct {
	ID             kernel.UUID `json:"id"`
	Name           string      `json:"name"`
	Label          string      `json:"label"`
	Logo           string      `json:"logo"`
	Currency       string      `json:"currency"`
	DeliveriesFrom []string    `json:"deliveries_from"`
}

// GetCompaniesQueryHandler retrieves company read models directly from the
// database, sorted by label.
type GetCompaniesQueryHandler struct {
	auth Authorizer
	db   *gorm.DB
}

// NewGetCompaniesQueryHandler creates a handler for company listing.
func NewGetCompaniesQueryHandler(auth Authorizer, db *gorm.DB) GetCompaniesQueryHandler {
	return GetCompaniesQueryHandler{
		auth: auth,
		db:   db,
	}
}

// Handle executes the company listing.
func (h GetCompaniesQueryHandler) Handle(ctx context.Context, query GetCompaniesQuery) ([]CompanyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceCompany, access.ActionRead, nil); err != nil {
		return nil, err
	}

	companies := make([]CompanyResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			label,
			logo,
			currency,
			deliveries_from
		FROM companies
		ORDER BY label
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			company        CompanyResponse
			id             uuid.UUID
			deliveriesFrom pq.StringArray
		)

		err = rows.Scan(
			&id,
			&company.Name,
			&company.Label,
			&company.Logo,
			&company.Currency,
			&deliveriesFrom,
		)
		if err != nil {
			return nil, err
		}

		companyID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		company.ID = companyID
		company.DeliveriesFrom = deliveriesFrom

		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}
