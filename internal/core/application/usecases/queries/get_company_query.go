package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetCompanyQueryIsNotConstructed = errors.New(
	"GetCompanyQuery must be created via NewGetCompanyQuery constructor",
)

// GetCompanyQuery retrieves one company by id.
type GetCompanyQuery struct {
	actor     *int64
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyQuery creates a query for one company.
func NewGetCompanyQuery(actor *int64, companyID kernel.UUID) (GetCompanyQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyQuery{}, err
	}

	return GetCompanyQuery{
		actor:     actor,
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyQueryIsNotConstructed)
}

// GetCompanyQueryHandler retrieves one company through the repository.
type GetCompanyQueryHandler struct {
	auth      Authorizer
	companies ports.CompanyRepository
}

// NewGetCompanyQueryHandler creates a handler for single-company retrieval.
func NewGetCompanyQueryHandler(auth Authorizer, companies ports.CompanyRepository) GetCompanyQueryHandler {
	return GetCompanyQueryHandler{
		auth:      auth,
		companies: companies,
	}
}

// Handle executes the company retrieval.
func (h GetCompanyQueryHandler) Handle(ctx context.Context, query GetCompanyQuery) (CompanyResponse, error) {
	if err := query.Validate(); err != nil {
		return CompanyResponse{}, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceCompany, access.ActionRead, nil); err != nil {
		return CompanyResponse{}, err
	}

	company, err := h.companies.Get(ctx, query.companyID)
	if err != nil {
		return CompanyResponse{}, err
	}

	deliveriesFrom := make([]string, 0, len(company.DeliveriesFrom()))
	for _, code := range company.DeliveriesFrom() {
		deliveriesFrom = append(deliveriesFrom, string(code))
	}

	return CompanyResponse{
		ID:             company.ID(),
		Name:           company.Name(),
		Label:          company.Label(),
		Logo:           company.Logo(),
		Currency:       string(company.Currency()),
		DeliveriesFrom: deliveriesFrom,
	}, nil
}
