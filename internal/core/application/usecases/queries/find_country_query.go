package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/country"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrFindCountryQueryIsNotConstructed = errors.New(
	"FindCountryQuery must be created via NewFindCountryQuery constructor",
)

// FindCountryQuery resolves a country by one of its lookup keys: label,
// two- or three-letter code, or numeric code.
type FindCountryQuery struct {
	actor  *int64
	search country.Search

	guard guard.ConstructorGuard
}

// NewFindCountryQuery creates a country lookup query.
func NewFindCountryQuery(actor *int64, search country.Search) FindCountryQuery {
	return FindCountryQuery{
		actor:  actor,
		search: search,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q FindCountryQuery) Validate() error {
	return q.guard.Validate(ErrFindCountryQueryIsNotConstructed)
}

// CountryResponse represents one country node in the read model.
type CountryResponse struct {
	Label       string            `json:"label"`
	Alpha2      string            `json:"alpha2"`
	Alpha3      string            `json:"alpha3"`
	Numeric     int               `json:"numeric"`
	Level       int               `json:"level"`
	ParentLabel *string           `json:"parent_label,omitempty"`
	Children    []CountryResponse `json:"children,omitempty"`
}

// countryToResponse converts a country node, including attached children.
func countryToResponse(c *country.Country) CountryResponse {
	children := c.Children()
	resp := CountryResponse{
		Label:       c.Label(),
		Alpha2:      string(c.Alpha2()),
		Alpha3:      string(c.Alpha3()),
		Numeric:     c.Numeric(),
		Level:       c.Level(),
		ParentLabel: c.ParentLabel(),
	}

	for _, child := range children {
		resp.Children = append(resp.Children, countryToResponse(child))
	}

	return resp
}

// FindCountryQueryHandler retrieves one country from the directory.
type FindCountryQueryHandler struct {
	auth      Authorizer
	countries ports.CountryRepository
}

// NewFindCountryQueryHandler creates a handler for country lookups.
func NewFindCountryQueryHandler(auth Authorizer, countries ports.CountryRepository) FindCountryQueryHandler {
	return FindCountryQueryHandler{
		auth:      auth,
		countries: countries,
	}
}

// Handle executes the country lookup.
func (h FindCountryQueryHandler) Handle(ctx context.Context, query FindCountryQuery) (CountryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountryResponse{}, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceCountry, access.ActionRead, nil); err != nil {
		return CountryResponse{}, err
	}

	node, err := h.countries.Get(ctx, query.search)
	if err != nil {
		return CountryResponse{}, err
	}

	return countryToResponse(node), nil
}
