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

var ErrFindAvailableShippingQueryIsNotConstructed = errors.New(
	"FindAvailableShippingQuery must be created via NewFindAvailableShippingQuery constructor",
)

// FindAvailableShippingQuery is the legacy availability lookup for a product:
// destination only, no origin, no explicit parcel dimensions.
type FindAvailableShippingQuery struct {
	actor         *int64
	baseProductID int64
	userCountry   kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewFindAvailableShippingQuery creates a legacy availability query.
func NewFindAvailableShippingQuery(
	actor *int64,
	baseProductID int64,
	userCountry kernel.Alpha3,
) (FindAvailableShippingQuery, error) {
	if baseProductID <= 0 {
		return FindAvailableShippingQuery{}, ErrBaseProductIDIsInvalid
	}

	return FindAvailableShippingQuery{
		actor:         actor,
		baseProductID: baseProductID,
		userCountry:   userCountry,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindAvailableShippingQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableShippingQueryIsNotConstructed)
}

// FindAvailableShippingQueryHandler scans the product's bindings in insertion
// order and returns the first whose offering admits the destination and whose
// declared measurements fit the ceilings.
//
// When several bindings qualify the answer depends on row order, so two
// structurally equal datasets can answer differently. Callers needing a
// deterministic answer use the v2 lookup; this behavior is kept as-is for
// existing consumers.
type FindAvailableShippingQueryHandler struct {
	auth       Authorizer
	bindings   ports.BindingRepository
	candidates CandidateAssembler
	resolver   services.AvailabilityResolver
}

// NewFindAvailableShippingQueryHandler creates a handler for the legacy lookup.
func NewFindAvailableShippingQueryHandler(
	auth Authorizer,
	bindings ports.BindingRepository,
	candidates CandidateAssembler,
	resolver services.AvailabilityResolver,
) FindAvailableShippingQueryHandler {
	return FindAvailableShippingQueryHandler{
		auth:       auth,
		bindings:   bindings,
		candidates: candidates,
		resolver:   resolver,
	}
}

// Handle executes the legacy availability lookup.
func (h FindAvailableShippingQueryHandler) Handle(
	ctx context.Context,
	query FindAvailableShippingQuery,
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

	matched, err := h.resolver.FindFirstMatch(candidates, query.userCountry)
	if err != nil {
		return AvailablePackageResponse{}, err
	}

	return availablePackageFromCandidate(matched), nil
}
