package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetAvailablePackageByShippingIDV2QueryIsNotConstructed = errors.New(
	"GetAvailablePackageByShippingIDV2Query must be created via NewGetAvailablePackageByShippingIDV2Query constructor",
)

// GetAvailablePackageByShippingIDV2Query re-checks and re-prices one known
// binding under the full eligibility predicate. Used when the caller already
// holds a binding reference, typically from a legacy lookup, and wants a
// deterministic confirmation.
type GetAvailablePackageByShippingIDV2Query struct {
	actor        *int64
	shippingID   kernel.UUID
	deliveryFrom kernel.Alpha3
	deliveryTo   kernel.Alpha3
	dimensions   kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewGetAvailablePackageByShippingIDV2Query creates a re-pricing query.
func NewGetAvailablePackageByShippingIDV2Query(
	actor *int64,
	shippingID kernel.UUID,
	deliveryFrom kernel.Alpha3,
	deliveryTo kernel.Alpha3,
	volume float64,
	weight float64,
) (GetAvailablePackageByShippingIDV2Query, error) {
	if err := shippingID.Validate(); err != nil {
		return GetAvailablePackageByShippingIDV2Query{}, err
	}

	dimensions, err := kernel.NewDimensions(volume, weight)
	if err != nil {
		return GetAvailablePackageByShippingIDV2Query{}, err
	}

	return GetAvailablePackageByShippingIDV2Query{
		actor:        actor,
		shippingID:   shippingID,
		deliveryFrom: deliveryFrom,
		deliveryTo:   deliveryTo,
		dimensions:   dimensions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePackageByShippingIDV2Query) Validate() error {
	return q.guard.Validate(ErrGetAvailablePackageByShippingIDV2QueryIsNotConstructed)
}

// GetAvailablePackageByShippingIDV2QueryHandler runs the unique-match
// resolution against the single known binding and prices the result.
type GetAvailablePackageByShippingIDV2QueryHandler struct {
	auth       Authorizer
	bindings   ports.BindingRepository
	candidates CandidateAssembler
	rates      ports.RateRepository
	resolver   services.AvailabilityResolver
}

// NewGetAvailablePackageByShippingIDV2QueryHandler creates a handler for the
// re-pricing confirmation.
func NewGetAvailablePackageByShippingIDV2QueryHandler(
	auth Authorizer,
	bindings ports.BindingRepository,
	candidates CandidateAssembler,
	rates ports.RateRepository,
	resolver services.AvailabilityResolver,
) GetAvailablePackageByShippingIDV2QueryHandler {
	return GetAvailablePackageByShippingIDV2QueryHandler{
		auth:       auth,
		bindings:   bindings,
		candidates: candidates,
		rates:      rates,
		resolver:   resolver,
	}
}

// Handle executes the re-pricing confirmation.
func (h GetAvailablePackageByShippingIDV2QueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePackageByShippingIDV2Query,
) (AvailablePackageResponse, error) {
	if err := query.Validate(); err != nil {
		return AvailablePackageResponse{}, err
	}

	err := h.auth.Authorize(ctx, query.actor, access.ResourceAvailability, access.ActionRead, nil)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	b, err := h.bindings.Get(ctx, query.shippingID)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	candidates, err := h.candidates.candidatesFor(ctx, []*binding.Binding{b})
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	matched, err := h.resolver.ResolveUnique(
		candidates,
		query.deliveryFrom,
		query.deliveryTo,
		query.dimensions.Volume(),
		query.dimensions.Weight(),
	)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	entry, err := h.rates.GetByLane(ctx, matched.Offer.CompanyPackage.ID(), query.deliveryFrom)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	price, err := entry.ResolvePrice(query.dimensions.Weight(), query.dimensions.Volume())
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	resp := availablePackageFromCandidate(matched)
	resp.Price = &price
	return resp, nil
}
