package queries

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetShippingRatesQueryIsNotConstructed = errors.New(
	"GetShippingRatesQuery must be created via NewGetShippingRatesQuery constructor",
)

// GetShippingRatesQuery retrieves every rate lane of an offering.
type GetShippingRatesQuery struct {
	actor            *int64
	companyPackageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShippingRatesQuery creates a query for an offering's rate tables.
func NewGetShippingRatesQuery(actor *int64, companyPackageID kernel.UUID) (GetShippingRatesQuery, error) {
	if err := companyPackageID.Validate(); err != nil {
		return GetShippingRatesQuery{}, err
	}

	return GetShippingRatesQuery{
		actor:            actor,
		companyPackageID: companyPackageID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingRatesQueryIsNotConstructed)
}

// TierResponse is one rate table row.
type TierResponse struct {
	Weight float64         `json:"weight"`
	Volume float64         `json:"volume"`
	Price  decimal.Decimal `json:"price"`
}

// RateEntryResponse is one origin lane of an offering with its tiers in
// ascending breakpoint order.
type RateEntryResponse struct {
	ID           kernel.UUID    `json:"id"`
	DeliveryFrom string         `json:"delivery_from"`
	Tiers        []TierResponse `json:"tiers"`
}

// GetShippingRatesQueryHandler retrieves rate lanes through the repository.
type GetShippingRatesQueryHandler struct {
	auth  Authorizer
	rates ports.RateRepository
}

// NewGetShippingRatesQueryHandler creates a handler for rate table retrieval.
func NewGetShippingRatesQueryHandler(auth Authorizer, rates ports.RateRepository) GetShippingRatesQueryHandler {
	return GetShippingRatesQueryHandler{
		auth:  auth,
		rates: rates,
	}
}

// Handle executes the rate table retrieval.
func (h GetShippingRatesQueryHandler) Handle(
	ctx context.Context,
	query GetShippingRatesQuery,
) ([]RateEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceRate, access.ActionRead, nil); err != nil {
		return nil, err
	}

	entries, err := h.rates.GetByCompanyPackage(ctx, query.companyPackageID)
	if err != nil {
		return nil, err
	}

	responses := make([]RateEntryResponse, 0, len(entries))
	for _, entry := range entries {
		tiers := make([]TierResponse, 0, len(entry.Tiers()))
		for _, tier := range entry.Tiers() {
			tiers = append(tiers, TierResponse{
				Weight: tier.Weight(),
				Volume: tier.Volume(),
				Price:  tier.Price(),
			})
		}

		responses = append(responses, RateEntryResponse{
			ID:           entry.ID(),
			DeliveryFrom: string(entry.DeliveryFrom()),
			Tiers:        tiers,
		})
	}

	return responses, nil
}
