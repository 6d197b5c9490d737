package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// CreateRoleCommandHandler handles the business logic for role grants.
type CreateRoleCommandHandler struct {
	auth       Authorizer
	uowFactory RoleUoWFactory
}

// NewCreateRoleCommandHandler creates a handler for role grants.
func NewCreateRoleCommandHandler(auth Authorizer, uowFactory RoleUoWFactory) CreateRoleCommandHandler {
	return CreateRoleCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the role grant command.
func (h *CreateRoleCommandHandler) Handle(ctx context.Context, cmd CreateRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceRole, access.ActionCreate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	role, err := access.NewRole(cmd.UserID(), cmd.Name(), cmd.Data())
	if err != nil {
		return err
	}

	if err = uow.RoleRepository().Add(ctx, role); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
