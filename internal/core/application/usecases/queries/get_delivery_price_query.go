package queries

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetDeliveryPriceQueryIsNotConstructed = errors.New(
	"GetDeliveryPriceQuery must be created via NewGetDeliveryPriceQuery constructor",
)

// GetDeliveryPriceQuery computes the shipping price of a parcel on one
// offering's lane.
type GetDeliveryPriceQuery struct {
	actor            *int64
	companyPackageID kernel.UUID
	deliveryFrom     kernel.Alpha3
	deliveryTo       kernel.Alpha3
	dimensions       kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewGetDeliveryPriceQuery creates a price query.
func NewGetDeliveryPriceQuery(
	actor *int64,
	companyPackageID kernel.UUID,
	deliveryFrom kernel.Alpha3,
	deliveryTo kernel.Alpha3,
	volume float64,
	weight float64,
) (GetDeliveryPriceQuery, error) {
	if err := companyPackageID.Validate(); err != nil {
		return GetDeliveryPriceQuery{}, err
	}

	dimensions, err := kernel.NewDimensions(volume, weight)
	if err != nil {
		return GetDeliveryPriceQuery{}, err
	}

	return GetDeliveryPriceQuery{
		actor:            actor,
		companyPackageID: companyPackageID,
		deliveryFrom:     deliveryFrom,
		deliveryTo:       deliveryTo,
		dimensions:       dimensions,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPriceQueryIsNotConstructed)
}

// DeliveryPriceResponse is the resolved price in the offering's currency.
type DeliveryPriceResponse struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// GetDeliveryPriceQueryHandler validates the destination against the
// offering's restriction allow-list, then resolves the tier for the parcel
// on the (offering, origin) lane.
type GetDeliveryPriceQueryHandler struct {
	auth      Authorizer
	offers    OfferAssembler
	offerings ports.CompanyPackageRepository
	rates     ports.RateRepository
}

// NewGetDeliveryPriceQueryHandler creates a handler for price resolution.
func NewGetDeliveryPriceQueryHandler(
	auth Authorizer,
	offers OfferAssembler,
	offerings ports.CompanyPackageRepository,
	rates ports.RateRepository,
) GetDeliveryPriceQueryHandler {
	return GetDeliveryPriceQueryHandler{
		auth:      auth,
		offers:    offers,
		offerings: offerings,
		rates:     rates,
	}
}

// Handle executes the price resolution.
func (h GetDeliveryPriceQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPriceQuery,
) (DeliveryPriceResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryPriceResponse{}, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceRate, access.ActionRead, nil); err != nil {
		return DeliveryPriceResponse{}, err
	}

	cp, err := h.offerings.Get(ctx, query.companyPackageID)
	if err != nil {
		return DeliveryPriceResponse{}, err
	}

	offer, err := h.offers.offerFor(ctx, cp)
	if err != nil {
		return DeliveryPriceResponse{}, err
	}

	if !offer.AdmitsDestination(query.deliveryTo) {
		return DeliveryPriceResponse{}, errs.NewObjectNotFoundError("deliveryTo", query.deliveryTo)
	}

	entry, err := h.rates.GetByLane(ctx, query.companyPackageID, query.deliveryFrom)
	if err != nil {
		return DeliveryPriceResponse{}, err
	}

	price, err := entry.ResolvePrice(query.dimensions.Weight(), query.dimensions.Volume())
	if err != nil {
		return DeliveryPriceResponse{}, err
	}

	return DeliveryPriceResponse{
		Price:    price,
		Currency: string(cp.Currency()),
	}, nil
}
