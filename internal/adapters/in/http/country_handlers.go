package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/country"
)

// CreateCountry handles POST /countries.
func (s *Server) CreateCountry(ctx echo.Context) error {
	var req CreateCountryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreateCountryCommand(
		actorID(ctx),
		req.Label,
		req.Alpha2,
		req.Alpha3,
		req.Numeric,
		req.Level,
		req.ParentLabel,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.CreateCountry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCountriesTree handles GET /countries.
func (s *Server) GetCountriesTree(ctx echo.Context) error {
	query := queries.NewGetCountriesTreeQuery(actorID(ctx))

	tree, err := s.handlers.CountriesTree.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tree)
}

// GetCountriesFlatten handles GET /countries/flatten.
func (s *Server) GetCountriesFlatten(ctx echo.Context) error {
	query := queries.NewGetCountriesFlattenQuery(actorID(ctx))

	countries, err := s.handlers.CountriesFlatten.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, countries)
}

// GetCountryByAlpha2 handles GET /countries/alpha2/:code.
func (s *Server) GetCountryByAlpha2(ctx echo.Context) error {
	return s.findCountry(ctx, country.NewSearchByAlpha2(ctx.Param("code")))
}

// GetCountryByAlpha3 handles GET /countries/alpha3/:code.
func (s *Server) GetCountryByAlpha3(ctx echo.Context) error {
	return s.findCountry(ctx, country.NewSearchByAlpha3(ctx.Param("code")))
}

// GetCountryByNumeric handles GET /countries/numeric/:code.
func (s *Server) GetCountryByNumeric(ctx echo.Context) error {
	numeric, err := strconv.Atoi(ctx.Param("code"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	return s.findCountry(ctx, country.NewSearchByNumeric(numeric))
}

func (s *Server) findCountry(ctx echo.Context, search country.Search) error {
	query := queries.NewFindCountryQuery(actorID(ctx), search)

	found, err := s.handlers.FindCountry.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}
