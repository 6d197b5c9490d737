package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// UpdatePackageCommandHandler handles the business logic for package tier
// updates.
type UpdatePackageCommandHandler struct {
	auth       Authorizer
	uowFactory PackageUoWFactory
}

// NewUpdatePackageCommandHandler creates a handler for package updates.
func NewUpdatePackageCommandHandler(auth Authorizer, uowFactory PackageUoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the package update command.
func (h *UpdatePackageCommandHandler) Handle(ctx context.Context, cmd UpdatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourcePackage, access.ActionUpdate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = pkg.Update(cmd.Name(), cmd.MaxSize(), cmd.MaxWeight(), cmd.DeliveriesTo()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
