// Package http exposes the application's use cases over an echo HTTP API.
// Handlers translate requests into commands and queries, never touching the
// domain directly; errors come back through a single status mapper.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
)

// Handlers bundles every command and query handler the server routes to.
type Handlers struct {
	CreateCountry        commands.CreateCountryCommandHandler
	CreateCompany        commands.CreateCompanyCommandHandler
	UpdateCompany        commands.UpdateCompanyCommandHandler
	DeleteCompany        commands.DeleteCompanyCommandHandler
	CreatePackage        commands.CreatePackageCommandHandler
	UpdatePackage        commands.UpdatePackageCommandHandler
	DeletePackage        commands.DeletePackageCommandHandler
	CreateCompanyPackage commands.CreateCompanyPackageCommandHandler
	DeleteCompanyPackage commands.DeleteCompanyPackageCommandHandler
	ReplaceShippingRates commands.ReplaceShippingRatesCommandHandler
	UpsertShipping       commands.UpsertShippingCommandHandler
	DeleteShipping       commands.DeleteShippingCommandHandler
	CreateRole           commands.CreateRoleCommandHandler
	DeleteRole           commands.DeleteRoleCommandHandler

	FindCountry            queries.FindCountryQueryHandler
	CountriesTree          queries.GetCountriesTreeQueryHandler
	CountriesFlatten       queries.GetCountriesFlattenQueryHandler
	Companies              queries.GetCompaniesQueryHandler
	Company                queries.GetCompanyQueryHandler
	Packages               queries.GetPackagesQueryHandler
	Package                queries.GetPackageQueryHandler
	CompanyPackages        queries.GetCompanyPackagesQueryHandler
	CompanyPackage         queries.GetCompanyPackageQueryHandler
	ShippingRates          queries.GetShippingRatesQueryHandler
	DeliveryPrice          queries.GetDeliveryPriceQueryHandler
	AvailablePackages      queries.GetAvailablePackagesQueryHandler
	FindShipping           queries.FindAvailableShippingQueryHandler
	AvailablePackage       queries.GetAvailablePackageQueryHandler
	AvailableByShipping    queries.GetAvailablePackageByShippingIDQueryHandler
	FindShippingV2         queries.FindAvailableShippingV2QueryHandler
	AvailableByShippingV2  queries.GetAvailablePackageByShippingIDV2QueryHandler
	Shipping               queries.GetShippingQueryHandler
	Roles                  queries.GetRolesQueryHandler
}

// Server wires HTTP routes to the application's use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, logger: logger}
}

// RegisterRoutes attaches every route to the echo instance. The legacy
// availability lookups and their deterministic v2 counterparts are mounted
// side by side; existing consumers stay on v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/countries", s.CreateCountry)
	e.GET("/countries", s.GetCountriesTree)
	e.GET("/countries/flatten", s.GetCountriesFlatten)
	e.GET("/countries/alpha2/:code", s.GetCountryByAlpha2)
	e.GET("/countries/alpha3/:code", s.GetCountryByAlpha3)
	e.GET("/countries/numeric/:code", s.GetCountryByNumeric)

	e.GET("/companies", s.GetCompanies)
	e.POST("/companies", s.CreateCompany)
	e.GET("/companies/:id", s.GetCompany)
	e.PUT("/companies/:id", s.UpdateCompany)
	e.DELETE("/companies/:id", s.DeleteCompany)

	e.GET("/packages", s.GetPackages)
	e.POST("/packages", s.CreatePackage)
	e.GET("/packages/:id", s.GetPackage)
	e.PUT("/packages/:id", s.UpdatePackage)
	e.DELETE("/packages/:id", s.DeletePackage)

	e.GET("/companies_packages", s.GetCompanyPackages)
	e.POST("/companies_packages", s.CreateCompanyPackage)
	e.GET("/companies_packages/:id", s.GetCompanyPackage)
	e.DELETE("/companies_packages/:id", s.DeleteCompanyPackage)
	e.GET("/companies_packages/:id/rates", s.GetShippingRates)
	e.PUT("/companies_packages/:id/rates", s.ReplaceShippingRates)
	e.GET("/companies_packages/:id/price", s.GetDeliveryPrice)

	e.GET("/available_packages", s.GetAvailablePackages)
	e.GET("/available_packages_for_user/shipping/:shipping_id", s.GetAvailablePackageByShippingID)
	e.GET("/available_packages_for_user/:base_product_id", s.FindAvailableShipping)
	e.GET("/available_packages_for_user/:base_product_id/:company_package_id", s.GetAvailablePackage)
	e.GET("/v2/available_packages_for_user/shipping/:shipping_id", s.GetAvailablePackageByShippingIDV2)
	e.GET("/v2/available_packages_for_user/:base_product_id", s.FindAvailableShippingV2)

	e.GET("/products/:id", s.GetShipping)
	e.PUT("/products/:id", s.UpsertShipping)
	e.DELETE("/products/:id", s.DeleteShipping)

	e.GET("/roles", s.GetRoles)
	e.POST("/roles", s.CreateRole)
	e.DELETE("/roles", s.DeleteRole)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// actorID extracts the acting user from the Authorization header. The header
// carries a bare numeric user id; anything else is treated as anonymous and
// left to the authorization rules to reject.
func actorID(ctx echo.Context) *int64 {
	raw := ctx.Request().Header.Get("Authorization")
	if raw == "" {
		return nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}

	return &id
}

// pathUUID parses a uuid path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// pathInt64 parses a positive integer path parameter.
func pathInt64(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

// queryFloat64 parses a float query parameter.
func queryFloat64(ctx echo.Context, name string) (float64, error) {
	return strconv.ParseFloat(ctx.QueryParam(name), 64)
}
