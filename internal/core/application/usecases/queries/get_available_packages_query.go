package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetAvailablePackagesQueryIsNotConstructed = errors.New(
	"GetAvailablePackagesQuery must be created via NewGetAvailablePackagesQuery constructor",
)

// GetAvailablePackagesQuery answers generic discovery: which offerings could
// carry a parcel of the given size and weight from the origin country. No
// destination is involved and no prices are computed.
type GetAvailablePackagesQuery struct {
	actor        *int64
	deliveryFrom kernel.Alpha3
	dimensions   kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewGetAvailablePackagesQuery creates a discovery query.
func NewGetAvailablePackagesQuery(
	actor *int64,
	deliveryFrom kernel.Alpha3,
	size float64,
	weight float64,
) (GetAvailablePackagesQuery, error) {
	dimensions, err := kernel.NewDimensions(size, weight)
	if err != nil {
		return GetAvailablePackagesQuery{}, err
	}

	return GetAvailablePackagesQuery{
		actor:        actor,
		deliveryFrom: deliveryFrom,
		dimensions:   dimensions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePackagesQueryIsNotConstructed)
}

// GetAvailablePackagesQueryHandler hydrates every offering and filters by
// capacity and origin. The result is sorted ascending by offering id.
type GetAvailablePackagesQueryHandler struct {
	auth      Authorizer
	offers    OfferAssembler
	offerings ports.CompanyPackageRepository
	resolver  services.AvailabilityResolver
}

// NewGetAvailablePackagesQueryHandler creates a handler for discovery.
func NewGetAvailablePackagesQueryHandler(
	auth Authorizer,
	offers OfferAssembler,
	offerings ports.CompanyPackageRepository,
	resolver services.AvailabilityResolver,
) GetAvailablePackagesQueryHandler {
	return GetAvailablePackagesQueryHandler{
		auth:      auth,
		offers:    offers,
		offerings: offerings,
		resolver:  resolver,
	}
}

// Handle executes the discovery.
func (h GetAvailablePackagesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePackagesQuery,
) ([]AvailablePackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceAvailability, access.ActionRead, nil); err != nil {
		return nil, err
	}

	all, err := h.offerings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	offers := make([]services.Offer, 0, len(all))
	for _, cp := range all {
		offer, offerErr := h.offers.offerFor(ctx, cp)
		if offerErr != nil {
			return nil, offerErr
		}
		offers = append(offers, offer)
	}

	eligible := h.resolver.FilterByCapacity(
		offers,
		query.deliveryFrom,
		query.dimensions.Volume(),
		query.dimensions.Weight(),
	)

	responses := make([]AvailablePackageResponse, 0, len(eligible))
	for _, offer := range eligible {
		responses = append(responses, availablePackageFromOffer(offer))
	}

	return responses, nil
}
