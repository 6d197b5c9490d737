package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// GetCompanies handles GET /companies.
func (s *Server) GetCompanies(ctx echo.Context) error {
	query := queries.NewGetCompaniesQuery(actorID(ctx))

	companies, err := s.handlers.Companies.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, companies)
}

// GetCompany handles GET /companies/:id.
func (s *Server) GetCompany(ctx echo.Context) error {
	companyID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetCompanyQuery(actorID(ctx), companyID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	company, err := s.handlers.Company.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, company)
}

// CreateCompany handles POST /companies.
func (s *Server) CreateCompany(ctx echo.Context) error {
	var req CompanyRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreateCompanyCommand(
		actorID(ctx),
		req.Name,
		req.Label,
		req.Logo,
		req.Currency,
		req.DeliveriesFrom,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.CreateCompany.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCompany handles PUT /companies/:id.
func (s *Server) UpdateCompany(ctx echo.Context) error {
	companyID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req CompanyRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateCompanyCommand(
		actorID(ctx),
		companyID,
		req.Name,
		req.Label,
		req.Logo,
		req.Currency,
		req.DeliveriesFrom,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.UpdateCompany.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteCompany handles DELETE /companies/:id.
func (s *Server) DeleteCompany(ctx echo.Context) error {
	companyID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteCompanyCommand(actorID(ctx), companyID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.DeleteCompany.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPackages handles GET /packages.
func (s *Server) GetPackages(ctx echo.Context) error {
	query := queries.NewGetPackagesQuery(actorID(ctx))

	packages, err := s.handlers.Packages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packages)
}

// GetPackage handles GET /packages/:id.
func (s *Server) GetPackage(ctx echo.Context) error {
	packageID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetPackageQuery(actorID(ctx), packageID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	pkg, err := s.handlers.Package.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pkg)
}

// CreatePackage handles POST /packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var req PackageRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreatePackageCommand(
		actorID(ctx),
		req.Name,
		req.MaxSize,
		req.MaxWeight,
		req.DeliveriesTo,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.CreatePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdatePackage handles PUT /packages/:id.
func (s *Server) UpdatePackage(ctx echo.Context) error {
	packageID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req PackageRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdatePackageCommand(
		actorID(ctx),
		packageID,
		req.Name,
		req.MaxSize,
		req.MaxWeight,
		req.DeliveriesTo,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.UpdatePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeletePackage handles DELETE /packages/:id.
func (s *Server) DeletePackage(ctx echo.Context) error {
	packageID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeletePackageCommand(actorID(ctx), packageID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.DeletePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCompanyPackages handles GET /companies_packages. Exactly one of the
// company_id and package_id query parameters selects the listing side.
func (s *Server) GetCompanyPackages(ctx echo.Context) error {
	companyID := ctx.QueryParam("company_id")
	packageID := ctx.QueryParam("package_id")

	var (
		query queries.GetCompanyPackagesQuery
		err   error
	)

	switch {
	case companyID != "" && packageID == "":
		var id kernel.UUID
		if id, err = kernel.UUIDFromString(companyID); err == nil {
			query, err = queries.NewGetCompanyPackagesByCompanyQuery(actorID(ctx), id)
		}
	case packageID != "" && companyID == "":
		var id kernel.UUID
		if id, err = kernel.UUIDFromString(packageID); err == nil {
			query, err = queries.NewGetCompanyPackagesByPackageQuery(actorID(ctx), id)
		}
	default:
		err = errs.NewValueIsRequiredError("company_id or package_id")
	}

	if err != nil {
		return respondBadRequest(ctx, err)
	}

	offerings, err := s.handlers.CompanyPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, offerings)
}

// GetCompanyPackage handles GET /companies_packages/:id.
func (s *Server) GetCompanyPackage(ctx echo.Context) error {
	offeringID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetCompanyPackageQuery(actorID(ctx), offeringID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	offering, err := s.handlers.CompanyPackage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, offering)
}

// CreateCompanyPackage handles POST /companies_packages.
func (s *Server) CreateCompanyPackage(ctx echo.Context) error {
	var req CreateCompanyPackageRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	packageID, err := kernel.UUIDFromString(req.PackageID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var restriction *commands.RestrictionSpec
	if req.Restriction != nil {
		restriction = &commands.RestrictionSpec{
			MaxSize:      req.Restriction.MaxSize,
			MaxWeight:    req.Restriction.MaxWeight,
			DeliveriesTo: req.Restriction.DeliveriesTo,
		}
	}

	cmd, err := commands.NewCreateCompanyPackageCommand(actorID(ctx), companyID, packageID, restriction)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.CreateCompanyPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteCompanyPackage handles DELETE /companies_packages/:id.
func (s *Server) DeleteCompanyPackage(ctx echo.Context) error {
	offeringID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteCompanyPackageCommand(actorID(ctx), offeringID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.DeleteCompanyPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
