package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/catalog"
)

// CreateCompanyPackageCommandHandler handles the business logic for offering
// registration. Both referenced entities are read inside the transaction and
// the offering inherits the company's billing currency. When an initial
// restriction is supplied it is stored in the same transaction so a partial
// offering can never become visible.
type CreateCompanyPackageCommandHandler struct {
	auth       Authorizer
	uowFactory CatalogUoWFactory
}

// NewCreateCompanyPackageCommandHandler creates a handler for offering registration.
func NewCreateCompanyPackageCommandHandler(auth Authorizer, uowFactory CatalogUoWFactory) CreateCompanyPackageCommandHandler {
	return CreateCompanyPackageCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the offering creation command.
func (h *CreateCompanyPackageCommandHandler) Handle(ctx context.Context, cmd CreateCompanyPackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceCompanyPackage, access.ActionCreate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	company, err := uow.CompanyRepository().Get(ctx, cmd.CompanyID())
	if err != nil {
		return err
	}

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	offering, err := catalog.NewCompanyPackage(company.ID(), pkg.ID(), company.Currency())
	if err != nil {
		return err
	}

	companyPackageRepo := uow.CompanyPackageRepository()
	if err = companyPackageRepo.Add(ctx, offering); err != nil {
		return err
	}

	if spec := cmd.Restriction(); spec != nil {
		deliveriesTo, specErr := toAlpha3s(spec.DeliveriesTo)
		if specErr != nil {
			return specErr
		}

		restriction, specErr := catalog.NewRestriction(
			catalog.CompositeName(company.Name(), pkg.Name()),
			spec.MaxSize,
			spec.MaxWeight,
			deliveriesTo,
		)
		if specErr != nil {
			return specErr
		}

		if specErr = companyPackageRepo.AddRestriction(ctx, restriction); specErr != nil {
			return specErr
		}
	}

	return uow.Commit(ctx)
}
