package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/country"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetCountriesTreeQueryIsNotConstructed = errors.New(
	"GetCountriesTreeQuery must be created via NewGetCountriesTreeQuery constructor",
)

// GetCountriesTreeQuery retrieves the whole geography directory as a nested
// tree rooted at the single level-0 node.
type GetCountriesTreeQuery struct {
	actor *int64

	guard guard.ConstructorGuard
}

// NewGetCountriesTreeQuery creates a query for the nested country tree.
func NewGetCountriesTreeQuery(actor *int64) GetCountriesTreeQuery {
	return GetCountriesTreeQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCountriesTreeQuery) Validate() error {
	return q.guard.Validate(ErrGetCountriesTreeQueryIsNotConstructed)
}

// GetCountriesTreeQueryHandler assembles the nested country tree from the
// flat stored list.
type GetCountriesTreeQueryHandler struct {
	auth      Authorizer
	countries ports.CountryRepository
}

// NewGetCountriesTreeQueryHandler creates a handler for tree retrieval.
func NewGetCountriesTreeQueryHandler(auth Authorizer, countries ports.CountryRepository) GetCountriesTreeQueryHandler {
	return GetCountriesTreeQueryHandler{
		auth:      auth,
		countries: countries,
	}
}

// Handle executes the tree retrieval.
func (h GetCountriesTreeQueryHandler) Handle(ctx context.Context, query GetCountriesTreeQuery) (CountryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountryResponse{}, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceCountry, access.ActionRead, nil); err != nil {
		return CountryResponse{}, err
	}

	nodes, err := h.countries.GetAll(ctx)
	if err != nil {
		return CountryResponse{}, err
	}

	root, err := country.BuildTree(nodes)
	if err != nil {
		return CountryResponse{}, err
	}

	return countryToResponse(root), nil
}
