package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/country"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetCountriesFlattenQueryIsNotConstructed = errors.New(
	"GetCountriesFlattenQuery must be created via NewGetCountriesFlattenQuery constructor",
)

// GetCountriesFlattenQuery retrieves the geography directory flattened in
// pre-order: every parent strictly before its children.
type GetCountriesFlattenQuery struct {
	actor *int64

	guard guard.ConstructorGuard
}

// NewGetCountriesFlattenQuery creates a query for the flattened directory.
func NewGetCountriesFlattenQuery(actor *int64) GetCountriesFlattenQuery {
	return GetCountriesFlattenQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCountriesFlattenQuery) Validate() error {
	return q.guard.Validate(ErrGetCountriesFlattenQueryIsNotConstructed)
}

// GetCountriesFlattenQueryHandler assembles the tree and flattens it back,
// so the output order is the tree's pre-order rather than storage order.
type GetCountriesFlattenQueryHandler struct {
	auth      Authorizer
	countries ports.CountryRepository
}

// NewGetCountriesFlattenQueryHandler creates a handler for flattened retrieval.
func NewGetCountriesFlattenQueryHandler(auth Authorizer, countries ports.CountryRepository) GetCountriesFlattenQueryHandler {
	return GetCountriesFlattenQueryHandler{
		auth:      auth,
		countries: countries,
	}
}

// Handle executes the flattened retrieval.
func (h GetCountriesFlattenQueryHandler) Handle(
	ctx context.Context,
	query GetCountriesFlattenQuery,
) ([]CountryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceCountry, access.ActionRead, nil); err != nil {
		return nil, err
	}

	nodes, err := h.countries.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	root, err := country.BuildTree(nodes)
	if err != nil {
		return nil, err
	}

	flat := country.Flatten(root)
	responses := make([]CountryResponse, 0, len(flat))
	for _, node := range flat {
		resp := countryToResponse(node)
		resp.Children = nil
		responses = append(responses, resp)
	}

	return responses, nil
}
