package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetAvailablePackageQueryIsNotConstructed = errors.New(
	"GetAvailablePackageQuery must be created via NewGetAvailablePackageQuery constructor",
)

// GetAvailablePackageQuery is the legacy pair lookup: the first binding of a
// product that references the given offering.
//
// Deprecated: the (product, offering) pair does not identify a single binding
// when a product is bound to the same offering more than once, so the answer
// depends on row order. Use the shipping-id lookups instead.
type GetAvailablePackageQuery struct {
	actor            *int64
	baseProductID    int64
	companyPackageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailablePackageQuery creates a legacy pair lookup query.
func NewGetAvailablePackageQuery(
	actor *int64,
	baseProductID int64,
	companyPackageID kernel.UUID,
) (GetAvailablePackageQuery, error) {
	if baseProductID <= 0 {
		return GetAvailablePackageQuery{}, ErrBaseProductIDIsInvalid
	}
	if err := companyPackageID.Validate(); err != nil {
		return GetAvailablePackageQuery{}, err
	}

	return GetAvailablePackageQuery{
		actor:            actor,
		baseProductID:    baseProductID,
		companyPackageID: companyPackageID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePackageQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePackageQueryIsNotConstructed)
}

// GetAvailablePackageQueryHandler returns the first matching binding of the
// pair in insertion order.
type GetAvailablePackageQueryHandler struct {
	auth       Authorizer
	bindings   ports.BindingRepository
	candidates CandidateAssembler
}

// NewGetAvailablePackageQueryHandler creates a handler for the pair lookup.
func NewGetAvailablePackageQueryHandler(
	auth Authorizer,
	bindings ports.BindingRepository,
	candidates CandidateAssembler,
) GetAvailablePackageQueryHandler {
	return GetAvailablePackageQueryHandler{
		auth:       auth,
		bindings:   bindings,
		candidates: candidates,
	}
}

// Handle executes the pair lookup.
func (h GetAvailablePackageQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePackageQuery,
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

	for _, b := range bindings {
		if b.CompanyPackageID() != query.companyPackageID {
			continue
		}

		candidates, candErr := h.candidates.candidatesFor(ctx, []*binding.Binding{b})
		if candErr != nil {
			return AvailablePackageResponse{}, candErr
		}

		return availablePackageFromCandidate(candidates[0]), nil
	}

	return AvailablePackageResponse{}, errs.NewObjectNotFoundError("companyPackage", query.companyPackageID.String())
}
