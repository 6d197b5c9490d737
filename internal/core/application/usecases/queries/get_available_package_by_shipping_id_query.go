package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetAvailablePackageByShippingIDQueryIsNotConstructed = errors.New(
	"GetAvailablePackageByShippingIDQuery must be created via NewGetAvailablePackageByShippingIDQuery constructor",
)

// GetAvailablePackageByShippingIDQuery retrieves the availability projection
// of one known binding without re-checking eligibility.
type GetAvailablePackageByShippingIDQuery struct {
	actor      *int64
	shippingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailablePackageByShippingIDQuery creates a binding projection query.
func NewGetAvailablePackageByShippingIDQuery(
	actor *int64,
	shippingID kernel.UUID,
) (GetAvailablePackageByShippingIDQuery, error) {
	if err := shippingID.Validate(); err != nil {
		return GetAvailablePackageByShippingIDQuery{}, err
	}

	return GetAvailablePackageByShippingIDQuery{
		actor:      actor,
		shippingID: shippingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePackageByShippingIDQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePackageByShippingIDQueryIsNotConstructed)
}

// GetAvailablePackageByShippingIDQueryHandler projects one binding to the
// availability read model.
type GetAvailablePackageByShippingIDQueryHandler struct {
	auth       Authorizer
	bindings   ports.BindingRepository
	candidates CandidateAssembler
}

// NewGetAvailablePackageByShippingIDQueryHandler creates a handler for the
// binding projection.
func NewGetAvailablePackageByShippingIDQueryHandler(
	auth Authorizer,
	bindings ports.BindingRepository,
	candidates CandidateAssembler,
) GetAvailablePackageByShippingIDQueryHandler {
	return GetAvailablePackageByShippingIDQueryHandler{
		auth:       auth,
		bindings:   bindings,
		candidates: candidates,
	}
}

// Handle executes the binding projection.
func (h GetAvailablePackageByShippingIDQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePackageByShippingIDQuery,
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

	return availablePackageFromCandidate(candidates[0]), nil
}
