package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/catalog"
)

// CreatePackageCommandHandler handles the business logic for package tier
// registration.
type CreatePackageCommandHandler struct {
	auth       Authorizer
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package registration.
func NewCreatePackageCommandHandler(auth Authorizer, uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the package creation command.
func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourcePackage, access.ActionCreate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := catalog.NewPackage(cmd.Name(), cmd.MaxSize(), cmd.MaxWeight(), cmd.DeliveriesTo())
	if err != nil {
		return err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
