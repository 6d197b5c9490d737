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

var ErrFindAvailableShippingV2QueryIsNotConstructed = errors.New(
	"FindAvailableShippingV2Query must be created via NewFindAvailableShippingV2Query constructor",
)

// FindAvailableShippingV2Query is the deterministic availability lookup: the
// caller pins origin, destination and parcel dimensions, so at most one
// binding of the product can qualify.
type FindAvailableShippingV2Query struct {
	actor         *int64
	baseProductID int64
	deliveryFrom  kernel.Alpha3
	deliveryTo    kernel.Alpha3
	dimensions    kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewFindAvailableShippingV2Query creates a deterministic availability query.
func NewFindAvailableShippingV2Query(
	actor *int64,
	baseProductID int64,
	deliveryFrom kernel.Alpha3,
	deliveryTo kernel.Alpha3,
	volume float64,
	weight float64,
) (FindAvailableShippingV2Query, error) {
	if baseProductID <= 0 {
		return FindAvailableShippingV2Query{}, ErrBaseProductIDIsInvalid
	}

	dimensions, err := kernel.NewDimensions(volume, weight)
	if err != nil {
		return FindAvailableShippingV2Query{}, err
	}

	return FindAvailableShippingV2Query{
		actor:         actor,
		baseProductID: baseProductID,
		deliveryFrom:  deliveryFrom,
		deliveryTo:    deliveryTo,
		dimensions:    dimensions,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindAvailableShippingV2Query) Validate() error {
	return q.guard.Validate(ErrFindAvailableShippingV2QueryIsNotConstructed)
}

// FindAvailableShippingV2QueryHandler applies the full eligibility predicate
// to the product's bindings and requires a unique survivor. Zero survivors is
// not-found, more than one is reported as an ambiguous match and never
// silently narrowed. The unique result is priced on the (offering, origin)
// lane.
type FindAvailableShippingV2QueryHandler struct {
	auth       Authorizer
	bindings   ports.BindingRepository
	candidates CandidateAssembler
	rates      ports.RateRepository
	resolver   services.AvailabilityResolver
}

// NewFindAvailableShippingV2QueryHandler creates a handler for the
// deterministic lookup.
func NewFindAvailableShippingV2QueryHandler(
	auth Authorizer,
	bindings ports.BindingRepository,
	candidates CandidateAssembler,
	rates ports.RateRepository,
	resolver services.AvailabilityResolver,
) FindAvailableShippingV2QueryHandler {
	return FindAvailableShippingV2QueryHandler{
		auth:       auth,
		bindings:   bindings,
		candidates: candidates,
		rates:      rates,
		resolver:   resolver,
	}
}

// Handle executes the deterministic availability lookup.
func (h FindAvailableShippingV2QueryHandler) Handle(
	ctx context.Context,
	query FindAvailableShippingV2Query,
) (AvailablePackageResponse, error) {
	if err := query.Validate(); err != nil {
		return AvailablePackageResponse{}, err
	}

	err := h.auth.Authorize(ctx, query.actor, access.ResourceAvailability, access.ActionRead, nil)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	bindings, err := h.bindings.GetByBaseProduct(ctx, query.baseProductID)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	candidates, err := h.candidates.candidatesFor(ctx, bindings)
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

	return h.priceCandidate(ctx, matched, query.deliveryFrom, query.dimensions)
}

// priceCandidate prices a resolved candidate on its (offering, origin) lane.
func (h FindAvailableShippingV2QueryHandler) priceCandidate(
	ctx context.Context,
	matched services.Candidate,
	deliveryFrom kernel.Alpha3,
	dimensions kernel.Dimensions,
) (AvailablePackageResponse, error) {
	entry, err := h.rates.GetByLane(ctx, matched.Offer.CompanyPackage.ID(), deliveryFrom)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	price, err := entry.ResolvePrice(dimensions.Weight(), dimensions.Volume())
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	resp := availablePackageFromCandidate(matched)
	resp.Price = &price
	return resp, nil
}
