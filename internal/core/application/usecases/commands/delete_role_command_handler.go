package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// DeleteRoleCommandHandler handles the business logic for role revocation.
type DeleteRoleCommandHandler struct {
	auth       Authorizer
	uowFactory RoleUoWFactory
}

// NewDeleteRoleCommandHandler creates a handler for role revocation.
func NewDeleteRoleCommandHandler(auth Authorizer, uowFactory RoleUoWFactory) DeleteRoleCommandHandler {
	return DeleteRoleCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the role revocation command.
func (h *DeleteRoleCommandHandler) Handle(ctx context.Context, cmd DeleteRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceRole, access.ActionDelete, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RoleRepository().Delete(ctx, cmd.UserID(), cmd.Name()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
