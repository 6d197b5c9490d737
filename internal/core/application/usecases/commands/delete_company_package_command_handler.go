package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/pkg/errs"
)

// DeleteCompanyPackageCommandHandler handles the business logic for offering
// removal. The offering, its restriction, its rate lanes and the product
// bindings referencing it all disappear in one transaction — a binding
// pointing at a retired offering would make the legacy resolver fail on
// every call for that product.
type DeleteCompanyPackageCommandHandler struct {
	auth       Authorizer
	uowFactory CatalogUoWFactory
}

// NewDeleteCompanyPackageCommandHandler creates a handler for offering removal.
func NewDeleteCompanyPackageCommandHandler(auth Authorizer, uowFactory CatalogUoWFactory) DeleteCompanyPackageCommandHandler {
	return DeleteCompanyPackageCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the offering removal command.
func (h *DeleteCompanyPackageCommandHandler) Handle(ctx context.Context, cmd DeleteCompanyPackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceCompanyPackage, access.ActionDelete, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	companyPackageRepo := uow.CompanyPackageRepository()
	offering, err := companyPackageRepo.Get(ctx, cmd.CompanyPackageID())
	if err != nil {
		return err
	}

	name, err := h.compositeName(ctx, uow, offering)
	if err != nil {
		return err
	}
	if name != "" {
		if err = companyPackageRepo.DeleteRestriction(ctx, name); err != nil {
			return err
		}
	}

	if err = uow.RateRepository().DeleteByCompanyPackage(ctx, offering.ID()); err != nil {
		return err
	}

	if err = uow.BindingRepository().DeleteByCompanyPackage(ctx, offering.ID()); err != nil {
		return err
	}

	if err = companyPackageRepo.Delete(ctx, offering.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// compositeName reconstructs the restriction key from the referenced company
// and package. A dangling reference means no restriction can exist under the
// name; it reports empty rather than failing the whole removal.
func (h *DeleteCompanyPackageCommandHandler) compositeName(
	ctx context.Context,
	uow CatalogUoW,
	offering *catalog.CompanyPackage,
) (string, error) {
	var notFound *errs.ObjectNotFoundError

	company, err := uow.CompanyRepository().Get(ctx, offering.CompanyID())
	if err != nil {
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", err
	}

	pkg, err := uow.PackageRepository().Get(ctx, offering.PackageID())
	if err != nil {
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", err
	}

	return catalog.CompositeName(company.Name(), pkg.Name()), nil
}
