package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// DeletePackageCommandHandler handles the business logic for package tier
// removal.
type DeletePackageCommandHandler struct {
	auth       Authorizer
	uowFactory PackageUoWFactory
}

// NewDeletePackageCommandHandler creates a handler for package removal.
func NewDeletePackageCommandHandler(auth Authorizer, uowFactory PackageUoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the package removal command.
func (h *DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourcePackage, access.ActionDelete, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PackageRepository().Delete(ctx, cmd.PackageID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
